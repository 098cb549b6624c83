package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitfails/gitfails/internal/git"
	"github.com/gitfails/gitfails/testhelpers"
)

func TestInit(t *testing.T) {
	t.Run("creates a repository with main as the default branch", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "repo")

		repo, err := git.Init(dir)
		require.NoError(t, err)
		require.Equal(t, dir, repo.Path())
		require.True(t, git.IsRepository(dir))

		err = repo.CreateFileAndCommit("Developer 1", "file1.txt", "Initial content", "Initial commit", false)
		require.NoError(t, err)

		branch, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})

	t.Run("opens an existing repository instead of failing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "repo")

		first, err := git.Init(dir)
		require.NoError(t, err)
		err = first.CreateFileAndCommit("Developer 1", "file1.txt", "Initial content", "Initial commit", false)
		require.NoError(t, err)

		second, err := git.Init(dir)
		require.NoError(t, err)

		count, err := second.CommitCount("main")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})
}

func TestOpen(t *testing.T) {
	t.Run("opens a repository created by Init", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "repo")

		_, err := git.Init(dir)
		require.NoError(t, err)

		repo, err := git.Open(dir)
		require.NoError(t, err)
		require.Equal(t, dir, repo.Path())
	})

	t.Run("fails on a plain directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := git.Open(dir)
		require.Error(t, err)
		require.False(t, git.IsRepository(dir))
	})
}

func TestClone(t *testing.T) {
	t.Run("copies history and tracks the source as origin", func(t *testing.T) {
		tmp := t.TempDir()

		src, err := git.Init(filepath.Join(tmp, "src"))
		require.NoError(t, err)
		err = src.CreateFileAndCommit("Developer 1", "file1.txt", "Initial content", "Initial commit", false)
		require.NoError(t, err)

		clone, err := src.Clone(context.Background(), filepath.Join(tmp, "clone"))
		require.NoError(t, err)
		require.True(t, git.IsRepository(clone.Path()))

		srcRev, err := src.Revision("main")
		require.NoError(t, err)
		cloneRev, err := clone.Revision("main")
		require.NoError(t, err)
		require.Equal(t, srcRev, cloneRev)

		helper := testhelpers.NewGitRepo(clone.Path())
		remote, err := helper.RunGitCommandAndGetOutput("remote", "get-url", "origin")
		require.NoError(t, err)
		require.Equal(t, src.Path(), remote)
	})
}
