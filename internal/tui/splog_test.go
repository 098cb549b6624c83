package tui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitfails/gitfails/internal/tui"
)

func TestSplogFileLogging(t *testing.T) {
	t.Run("writes timestamped records to the log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "logs", "gitfails.log")

		splog, err := tui.NewSplogWithFile(logPath)
		require.NoError(t, err)

		splog.Info("constructed %s", "two-feature-branches")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "constructed two-feature-branches")
		require.Contains(t, string(data), "level=INFO")
	})

	t.Run("file handler records debug messages regardless of DEBUG", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "gitfails.log")

		splog, err := tui.NewSplogWithFile(logPath)
		require.NoError(t, err)

		splog.Debug("cloned origin into %s", "/tmp/clone")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "cloned origin into /tmp/clone")
	})

	t.Run("console-only splog needs no file", func(t *testing.T) {
		splog := tui.NewSplog()
		splog.Info("no file handler attached")
		require.NoError(t, splog.Close())
	})
}
