// Package errors provides sentinel errors and custom error types for gitfails.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the backend failure classes
var (
	// ErrRepositoryCreation indicates that a repository could not be initialized
	ErrRepositoryCreation = errors.New("repository creation failed")

	// ErrCommit indicates that staging or committing a change failed
	ErrCommit = errors.New("commit failed")

	// ErrBranch indicates that a branch could not be created or checked out
	ErrBranch = errors.New("branch operation failed")

	// ErrRemoteTransfer indicates that a clone, push, fetch, or pull failed
	ErrRemoteTransfer = errors.New("remote transfer failed")

	// ErrRebaseConflict indicates that a rebase halted on conflicting changes
	ErrRebaseConflict = errors.New("rebase conflict")
)

// RepositoryCreationError represents a failure to initialize or open a repository
type RepositoryCreationError struct {
	Path string
	Err  error
}

func (e *RepositoryCreationError) Error() string {
	return fmt.Sprintf("failed to create repository at %s: %v", e.Path, e.Err)
}

func (e *RepositoryCreationError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRepositoryCreation
func (e *RepositoryCreationError) Is(target error) bool {
	return target == ErrRepositoryCreation
}

// NewRepositoryCreationError creates a new RepositoryCreationError
func NewRepositoryCreationError(path string, err error) *RepositoryCreationError {
	return &RepositoryCreationError{Path: path, Err: err}
}

// CommitError represents a failure to stage or commit a change
type CommitError struct {
	Path     string
	Filename string
	Err      error
}

func (e *CommitError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("failed to commit %s in %s: %v", e.Filename, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to commit in %s: %v", e.Path, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommit
func (e *CommitError) Is(target error) bool {
	return target == ErrCommit
}

// NewCommitError creates a new CommitError
func NewCommitError(path, filename string, err error) *CommitError {
	return &CommitError{Path: path, Filename: filename, Err: err}
}

// BranchError represents a failure to create or check out a branch
type BranchError struct {
	BranchName string
	Err        error
}

func (e *BranchError) Error() string {
	return fmt.Sprintf("branch operation on %s failed: %v", e.BranchName, e.Err)
}

func (e *BranchError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrBranch
func (e *BranchError) Is(target error) bool {
	return target == ErrBranch
}

// NewBranchError creates a new BranchError
func NewBranchError(branchName string, err error) *BranchError {
	return &BranchError{BranchName: branchName, Err: err}
}

// RemoteTransferError represents a clone, push, fetch, or pull failure
type RemoteTransferError struct {
	Op     string
	Remote string
	Err    error
}

func (e *RemoteTransferError) Error() string {
	if e.Remote != "" {
		return fmt.Sprintf("%s from %s failed: %v", e.Op, e.Remote, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RemoteTransferError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrRemoteTransfer
func (e *RemoteTransferError) Is(target error) bool {
	return target == ErrRemoteTransfer
}

// NewRemoteTransferError creates a new RemoteTransferError
func NewRemoteTransferError(op, remote string, err error) *RemoteTransferError {
	return &RemoteTransferError{Op: op, Remote: remote, Err: err}
}

// RebaseConflictError represents an error when a rebase encounters a conflict
type RebaseConflictError struct {
	BranchName string
	Message    string
}

func (e *RebaseConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rebase conflict on branch %s: %s", e.BranchName, e.Message)
	}
	return fmt.Sprintf("rebase conflict on branch %s", e.BranchName)
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(branchName string, message string) *RebaseConflictError {
	return &RebaseConflictError{
		BranchName: branchName,
		Message:    message,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
