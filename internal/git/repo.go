package git

import (
	"context"
	"errors"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gferrors "github.com/gitfails/gitfails/internal/errors"
)

// Identity used for local repository config so that operations which need a
// committer (e.g. rebase via the git CLI) work without global configuration.
const (
	defaultUserName  = "gitfails"
	defaultUserEmail = "gitfails@example.com"
)

// Repository wraps a go-git repository rooted at a worktree path
type Repository struct {
	*gogit.Repository
	path   string
	runner *CommandRunner
}

// Path returns the root directory of the repository worktree
func (r *Repository) Path() string {
	return r.path
}

// Init initializes a new repository at path with main as the default branch.
// If path already holds a repository, it is opened instead, so repeated runs
// against the same directory build on existing history.
func Init(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, gferrors.NewRepositoryCreationError(path, err)
	}

	repo, err := gogit.PlainInitWithOptions(absPath, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.Main,
		},
	})
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		repo, err = gogit.PlainOpen(absPath)
	}
	if err != nil {
		return nil, gferrors.NewRepositoryCreationError(absPath, err)
	}

	r := &Repository{
		Repository: repo,
		path:       absPath,
		runner:     NewCommandRunner(absPath),
	}
	if err := r.setDefaultIdentity(); err != nil {
		return nil, gferrors.NewRepositoryCreationError(absPath, err)
	}
	return r, nil
}

// Open opens an existing repository at path
func Open(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, err
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
		runner:     NewCommandRunner(absPath),
	}, nil
}

// IsRepository reports whether path holds a valid repository
func IsRepository(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// Clone produces a new repository at destination whose history is a copy of
// this one, with an origin remote pointing back at the source.
func (r *Repository) Clone(ctx context.Context, destination string) (*Repository, error) {
	absDest, err := filepath.Abs(destination)
	if err != nil {
		return nil, gferrors.NewRemoteTransferError("clone", r.path, err)
	}

	repo, err := gogit.PlainCloneContext(ctx, absDest, false, &gogit.CloneOptions{
		URL: r.path,
	})
	if err != nil {
		return nil, gferrors.NewRemoteTransferError("clone", r.path, err)
	}

	clone := &Repository{
		Repository: repo,
		path:       absDest,
		runner:     NewCommandRunner(absDest),
	}
	if err := clone.setDefaultIdentity(); err != nil {
		return nil, gferrors.NewRemoteTransferError("clone", r.path, err)
	}
	return clone, nil
}

// setDefaultIdentity writes a user section into the repository-local config
func (r *Repository) setDefaultIdentity() error {
	cfg, err := r.Config()
	if err != nil {
		return err
	}
	cfg.User.Name = defaultUserName
	cfg.User.Email = defaultUserEmail
	return r.SetConfig(cfg)
}
