package git_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitfails/gitfails/internal/git"
)

func TestCreateBranchAndCheckout(t *testing.T) {
	t.Run("creates a new branch at the current commit", func(t *testing.T) {
		repo, err := git.Init(filepath.Join(t.TempDir(), "repo"))
		require.NoError(t, err)
		err = repo.CreateFileAndCommit("Developer 1", "file1.txt", "Initial content", "Initial commit", false)
		require.NoError(t, err)

		mainRev, err := repo.Revision("main")
		require.NoError(t, err)

		require.NoError(t, repo.CreateBranchAndCheckout("A"))

		branch, err := repo.CurrentBranch()
		require.NoError(t, err)
		require.Equal(t, "A", branch)

		branchRev, err := repo.Revision("A")
		require.NoError(t, err)
		require.Equal(t, mainRev, branchRev)
	})

	t.Run("checks out an existing branch without moving it", func(t *testing.T) {
		repo, err := git.Init(filepath.Join(t.TempDir(), "repo"))
		require.NoError(t, err)
		err = repo.CreateFileAndCommit("Developer 1", "file1.txt", "Initial content", "Initial commit", false)
		require.NoError(t, err)

		require.NoError(t, repo.CreateBranchAndCheckout("A"))
		err = repo.CreateFileAndCommit("Developer 1", "file2.txt", "Content from branch A", "Commit on branch A", false)
		require.NoError(t, err)
		branchRev, err := repo.Revision("A")
		require.NoError(t, err)

		require.NoError(t, repo.CreateBranchAndCheckout("main"))
		require.NoError(t, repo.CreateBranchAndCheckout("A"))

		rev, err := repo.Revision("A")
		require.NoError(t, err)
		require.Equal(t, branchRev, rev)
	})

	t.Run("starts a new branch from the remote-tracking ref when one exists", func(t *testing.T) {
		tmp := t.TempDir()
		ctx := context.Background()

		origin, err := git.Init(filepath.Join(tmp, "origin"))
		require.NoError(t, err)
		err = origin.CreateFileAndCommit("maintainers", "file1.txt", "Initial content", "Initial commit", false)
		require.NoError(t, err)

		// dev exists only on the remote
		publisher, err := origin.Clone(ctx, filepath.Join(tmp, "publisher"))
		require.NoError(t, err)
		require.NoError(t, publisher.CreateBranchAndCheckout("dev"))
		err = publisher.CreateFileAndCommit("bad-dev", "file2.txt", "some new feature", "add new feature", false)
		require.NoError(t, err)
		require.NoError(t, publisher.Push(ctx, "dev", false))

		consumer, err := origin.Clone(ctx, filepath.Join(tmp, "consumer"))
		require.NoError(t, err)
		require.NoError(t, consumer.Fetch(ctx))
		require.NoError(t, consumer.CreateBranchAndCheckout("dev"))

		devRev, err := consumer.Revision("dev")
		require.NoError(t, err)
		remoteRev, err := consumer.Revision("origin/dev")
		require.NoError(t, err)
		require.Equal(t, remoteRev, devRev)
	})
}

func TestBranchNames(t *testing.T) {
	repo, err := git.Init(filepath.Join(t.TempDir(), "repo"))
	require.NoError(t, err)
	err = repo.CreateFileAndCommit("Developer 1", "file1.txt", "Initial content", "Initial commit", false)
	require.NoError(t, err)

	require.NoError(t, repo.CreateBranchAndCheckout("A"))
	require.NoError(t, repo.CreateBranchAndCheckout("main"))
	require.NoError(t, repo.CreateBranchAndCheckout("B"))

	names, err := repo.BranchNames()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"main", "A", "B"}, names)
}
