package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	gferrors "github.com/gitfails/gitfails/internal/errors"
)

// Rebase rebases the currently checked out branch onto the given branch.
// go-git has no rebase support, so this shells out to the git CLI in the
// repository worktree. A halted rebase surfaces as a RebaseConflictError.
func (r *Repository) Rebase(ctx context.Context, onto string) error {
	_, err := r.runner.Run(ctx, "rebase", onto)
	if err == nil {
		return nil
	}

	if r.rebaseInProgress() {
		branch, branchErr := r.CurrentBranch()
		if branchErr != nil {
			branch = "HEAD"
		}
		var cmdErr *gferrors.GitCommandError
		message := ""
		if errors.As(err, &cmdErr) {
			message = cmdErr.Stderr
		}
		return gferrors.NewRebaseConflictError(branch, message)
	}
	return err
}

// rebaseInProgress checks for the state directories git leaves behind while
// a rebase is stopped on a conflict
func (r *Repository) rebaseInProgress() bool {
	for _, dir := range []string{"rebase-merge", "rebase-apply"} {
		if _, err := os.Stat(filepath.Join(r.path, ".git", dir)); err == nil {
			return true
		}
	}
	return false
}
