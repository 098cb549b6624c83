package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	gferrors "github.com/gitfails/gitfails/internal/errors"
)

// defaultRemote is the remote name a clone tracks its source under
const defaultRemote = "origin"

// Push pushes branch to origin. With force set, a non-fast-forward update of
// the remote ref is allowed (the force-push in the shared-branch scenario).
func (r *Repository) Push(ctx context.Context, branch string, force bool) error {
	refSpec := fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch)
	if force {
		refSpec = "+" + refSpec
	}

	err := r.PushContext(ctx, &gogit.PushOptions{
		RemoteName: defaultRemote,
		RefSpecs:   []config.RefSpec{config.RefSpec(refSpec)},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return gferrors.NewRemoteTransferError("push", defaultRemote, err)
	}
	return nil
}

// Pull fetches branch from origin and fast-forwards the worktree to it
func (r *Repository) Pull(ctx context.Context, branch string) error {
	worktree, err := r.Worktree()
	if err != nil {
		return gferrors.NewRemoteTransferError("pull", defaultRemote, err)
	}

	err = worktree.PullContext(ctx, &gogit.PullOptions{
		RemoteName:    defaultRemote,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return gferrors.NewRemoteTransferError("pull", defaultRemote, err)
	}
	return nil
}

// Fetch updates all remote-tracking refs from origin. The clone refspec is
// forced, so a rewritten remote branch still updates its tracking ref.
func (r *Repository) Fetch(ctx context.Context) error {
	err := r.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: defaultRemote,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return gferrors.NewRemoteTransferError("fetch", defaultRemote, err)
	}
	return nil
}
