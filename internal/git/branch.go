package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gferrors "github.com/gitfails/gitfails/internal/errors"
)

// CreateBranchAndCheckout checks out name, creating the branch if it does not
// exist. A new branch starts at the remote-tracking origin/<name> when one is
// present, otherwise at the current commit. On return the branch exists and
// is checked out.
func (r *Repository) CreateBranchAndCheckout(name string) error {
	worktree, err := r.Worktree()
	if err != nil {
		return gferrors.NewBranchError(name, err)
	}

	branchRef := plumbing.NewBranchReferenceName(name)

	if _, err := r.Reference(branchRef, true); err == nil {
		if err := worktree.Checkout(&gogit.CheckoutOptions{Branch: branchRef}); err != nil {
			return gferrors.NewBranchError(name, err)
		}
		return nil
	}

	opts := &gogit.CheckoutOptions{
		Branch: branchRef,
		Create: true,
	}
	// Same do-what-I-mean as `git checkout`: a branch that only exists on the
	// remote starts at the remote-tracking ref instead of HEAD.
	remoteRef := plumbing.NewRemoteReferenceName(defaultRemote, name)
	if ref, err := r.Reference(remoteRef, true); err == nil {
		opts.Hash = ref.Hash()
	}

	if err := worktree.Checkout(opts); err != nil {
		return gferrors.NewBranchError(name, err)
	}
	return nil
}

// CurrentBranch returns the name of the currently checked out branch
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}

// BranchNames returns all local branch names
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	return names, nil
}
