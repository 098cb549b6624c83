package scenario_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gferrors "github.com/gitfails/gitfails/internal/errors"
	"github.com/gitfails/gitfails/internal/git"
	"github.com/gitfails/gitfails/internal/scenario"
)

func TestNew(t *testing.T) {
	t.Run("creates every registered kind", func(t *testing.T) {
		for _, kind := range scenario.Kinds() {
			sc, err := scenario.New(kind, scenario.Options{Dir: t.TempDir()})
			require.NoError(t, err)
			require.Equal(t, string(kind), sc.Name())
			require.NotEmpty(t, sc.Description())
		}
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := scenario.New("no-such-scenario", scenario.Options{Dir: t.TempDir()})
		require.ErrorContains(t, err, "unknown scenario kind")
	})
}

func TestOverwrite(t *testing.T) {
	t.Run("clears a pre-existing directory before constructing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		require.NoError(t, os.MkdirAll(dir, 0750))
		marker := filepath.Join(dir, "leftover.txt")
		require.NoError(t, os.WriteFile(marker, []byte("stale"), 0600))

		sc, err := scenario.New(scenario.KindTwoFeatureBranches, scenario.Options{Dir: dir, Overwrite: true})
		require.NoError(t, err)

		// the wipe happens at construction of the scenario value
		_, statErr := os.Stat(marker)
		require.True(t, os.IsNotExist(statErr))

		require.NoError(t, sc.Construct(context.Background()))
		require.True(t, git.IsRepository(filepath.Join(dir, "repo")))
	})

	t.Run("without overwrite a rerun builds against existing state", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")

		sc, err := scenario.New(scenario.KindTwoFeatureBranches, scenario.Options{Dir: dir})
		require.NoError(t, err)
		require.NoError(t, sc.Construct(context.Background()))

		// the rerun does not silently no-op: it replays the script on top of
		// the existing repository and fails on the first conflicting commit
		rerun, err := scenario.New(scenario.KindTwoFeatureBranches, scenario.Options{Dir: dir})
		require.NoError(t, err)
		err = rerun.Construct(context.Background())
		require.ErrorIs(t, err, gferrors.ErrCommit)

		// prior state is preserved
		require.True(t, git.IsRepository(filepath.Join(dir, "repo")))
	})

	t.Run("overwrite rerun rebuilds from scratch", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")

		sc, err := scenario.New(scenario.KindTwoFeatureBranches, scenario.Options{Dir: dir})
		require.NoError(t, err)
		require.NoError(t, sc.Construct(context.Background()))

		rerun, err := scenario.New(scenario.KindTwoFeatureBranches, scenario.Options{Dir: dir, Overwrite: true})
		require.NoError(t, err)
		require.NoError(t, rerun.Construct(context.Background()))
	})
}
