package scenario_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitfails/gitfails/internal/git"
	"github.com/gitfails/gitfails/internal/scenario"
	"github.com/gitfails/gitfails/testhelpers"
)

func TestTwoFeatureBranches(t *testing.T) {
	dir := t.TempDir()

	sc, err := scenario.New(scenario.KindTwoFeatureBranches, scenario.Options{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, sc.Construct(context.Background()))

	repoDir := filepath.Join(dir, "repo")
	require.True(t, git.IsRepository(repoDir))
	repo := testhelpers.NewGitRepo(repoDir)

	t.Run("ends checked out on main", func(t *testing.T) {
		branch, err := repo.CurrentBranchName()
		require.NoError(t, err)
		require.Equal(t, "main", branch)
	})

	t.Run("has the two sibling feature branches", func(t *testing.T) {
		branches, err := repo.GetLocalBranches()
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"main", "A", "B"}, branches)
	})

	t.Run("each feature branch adds exactly one commit off main", func(t *testing.T) {
		for branch, file := range map[string]string{"A": "file2.txt", "B": "file3.txt"} {
			fromMain, err := repo.RunGitCommandAndGetOutput("rev-list", "--count", "main.."+branch)
			require.NoError(t, err)
			require.Equal(t, "1", fromMain)

			files, err := repo.ListTreeFiles(branch)
			require.NoError(t, err)
			require.Contains(t, files, file)

			mainFiles, err := repo.ListTreeFiles("main")
			require.NoError(t, err)
			require.NotContains(t, mainFiles, file)
		}
	})

	t.Run("main holds only the initial commit", func(t *testing.T) {
		messages, err := repo.ListCommitMessages("main")
		require.NoError(t, err)
		require.Equal(t, []string{"Initial commit"}, messages)
	})
}
