package scenario

import (
	"context"
	"path/filepath"

	"github.com/gitfails/gitfails/internal/git"
)

// ForcePushSharedBranch builds a remote origin repository and two clones,
// bad_dev and good_dev, that both work on a shared dev branch. bad_dev
// rebases dev onto an updated main and force-pushes it while good_dev holds
// an unpushed commit on the same branch, leaving good_dev's local dev
// diverged from the rewritten origin/dev.
//
// It models how the second developer reconciles their local branch after a
// collaborator's rebase and force-push.
type ForcePushSharedBranch struct {
	base
}

// NewForcePushSharedBranch creates the scenario
func NewForcePushSharedBranch(opts Options) (*ForcePushSharedBranch, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &ForcePushSharedBranch{base: b}, nil
}

// Name returns the scenario kind name
func (s *ForcePushSharedBranch) Name() string {
	return string(KindForcePushSharedBranch)
}

// Description returns a short summary for listings
func (s *ForcePushSharedBranch) Description() string {
	return "An origin and two clones whose shared dev branch diverges after a rebase and force-push"
}

// Construct builds the scenario under the target directory
func (s *ForcePushSharedBranch) Construct(ctx context.Context) error {
	// the remote everyone works against
	origin, err := git.Init(filepath.Join(s.dir, "origin"))
	if err != nil {
		return err
	}
	err = origin.CreateFileAndCommit("maintainers", "file1.txt", "Initial content", "Initial commit", false)
	if err != nil {
		return err
	}
	err = origin.CreateFileAndCommit("maintainers", "file1.txt", "Modified content", "Second commit", true)
	if err != nil {
		return err
	}

	// two developers clone the origin
	badDev, err := origin.Clone(ctx, filepath.Join(s.dir, "bad_dev"))
	if err != nil {
		return err
	}
	goodDev, err := origin.Clone(ctx, filepath.Join(s.dir, "good_dev"))
	if err != nil {
		return err
	}
	s.log.Debug("cloned origin into %s and %s", badDev.Path(), goodDev.Path())

	// the bad dev starts a dev branch, commits a feature, and pushes it
	if err := badDev.CreateBranchAndCheckout("dev"); err != nil {
		return err
	}
	err = badDev.CreateFileAndCommit("bad-dev", "file2.txt", "some new feature", "add new feature", false)
	if err != nil {
		return err
	}
	if err := badDev.Push(ctx, "dev", false); err != nil {
		return err
	}

	// meanwhile main moves forward on the origin (e.g. merged PRs)
	err = origin.CreateFileAndCommit("maintainers", "file1.txt", "Modified content again", "Third commit", true)
	if err != nil {
		return err
	}

	// both developers update their local main
	if err := goodDev.CreateBranchAndCheckout("main"); err != nil {
		return err
	}
	if err := goodDev.Pull(ctx, "main"); err != nil {
		return err
	}
	if err := badDev.CreateBranchAndCheckout("main"); err != nil {
		return err
	}
	if err := badDev.Pull(ctx, "main"); err != nil {
		return err
	}

	// the good dev picks up the dev branch and modifies the feature
	if err := goodDev.Fetch(ctx); err != nil {
		return err
	}
	if err := goodDev.CreateBranchAndCheckout("dev"); err != nil {
		return err
	}
	err = goodDev.CreateFileAndCommit("good-dev", "file2.txt", "some modified new feature", "modified new feature", true)
	if err != nil {
		return err
	}

	// the bad dev rebases dev onto the updated main and force-pushes
	if err := badDev.CreateBranchAndCheckout("dev"); err != nil {
		return err
	}
	if err := badDev.Rebase(ctx, "main"); err != nil {
		return err
	}
	if err := badDev.Push(ctx, "dev", true); err != nil {
		return err
	}

	// the good dev fetches and checks out dev, which has now diverged from
	// the rewritten origin/dev
	if err := goodDev.Fetch(ctx); err != nil {
		return err
	}
	if err := goodDev.CreateBranchAndCheckout("dev"); err != nil {
		return err
	}

	s.log.Info("constructed %s under %s", s.Name(), s.dir)
	return nil
}
