package scenario

import (
	"context"
	"path/filepath"

	"github.com/gitfails/gitfails/internal/git"
)

// TwoFeatureBranches builds one repository with a main branch and two sibling
// feature branches A and B, each carrying one commit that introduces a
// distinct file, ending checked out on main.
//
// It models the question of what happens to commits borrowed onto a feature
// branch via rebase or cherry-pick once the source branch is later merged:
// suppose a commit on A is needed to make progress on B, so B is rebased on A
// or the commit is cherry-picked over. When B is eventually merged to main,
// what happens to the commits originally on A that were added on B?
type TwoFeatureBranches struct {
	base
}

// NewTwoFeatureBranches creates the scenario
func NewTwoFeatureBranches(opts Options) (*TwoFeatureBranches, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &TwoFeatureBranches{base: b}, nil
}

// Name returns the scenario kind name
func (s *TwoFeatureBranches) Name() string {
	return string(KindTwoFeatureBranches)
}

// Description returns a short summary for listings
func (s *TwoFeatureBranches) Description() string {
	return "One repository with a main branch and two sibling feature branches A and B"
}

// Construct builds the scenario under the target directory
func (s *TwoFeatureBranches) Construct(ctx context.Context) error {
	author := "Developer 1"

	repo, err := git.Init(filepath.Join(s.dir, "repo"))
	if err != nil {
		return err
	}
	s.log.Debug("initialized repository at %s", repo.Path())

	// a file on the main branch
	err = repo.CreateFileAndCommit(author, "file1.txt", "Initial content", "Initial commit", false)
	if err != nil {
		return err
	}

	// branch A with one commit
	if err := repo.CreateBranchAndCheckout("A"); err != nil {
		return err
	}
	err = repo.CreateFileAndCommit(author, "file2.txt", "Content from branch A", "Commit on branch A", false)
	if err != nil {
		return err
	}

	// back to main, then branch B with one commit
	if err := repo.CreateBranchAndCheckout("main"); err != nil {
		return err
	}
	if err := repo.CreateBranchAndCheckout("B"); err != nil {
		return err
	}
	err = repo.CreateFileAndCommit(author, "file3.txt", "Content from branch B", "Commit on branch B", false)
	if err != nil {
		return err
	}

	// end on the main branch
	if err := repo.CreateBranchAndCheckout("main"); err != nil {
		return err
	}

	s.log.Info("constructed %s under %s", s.Name(), s.dir)
	return nil
}
