package git

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	gferrors "github.com/gitfails/gitfails/internal/errors"
)

// CreateFileAndCommit writes content to filename inside the worktree, stages
// it, and commits with the given author identity and message. When overwrite
// is false, a pre-existing file fails the operation instead of being replaced.
func (r *Repository) CreateFileAndCommit(author, filename, content, message string, overwrite bool) error {
	filePath := filepath.Join(r.path, filename)

	if !overwrite {
		if _, err := os.Stat(filePath); err == nil {
			return gferrors.NewCommitError(r.path, filename, fmt.Errorf("file already exists"))
		}
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return gferrors.NewCommitError(r.path, filename, err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return gferrors.NewCommitError(r.path, filename, err)
	}

	worktree, err := r.Worktree()
	if err != nil {
		return gferrors.NewCommitError(r.path, filename, err)
	}
	if _, err := worktree.Add(filename); err != nil {
		return gferrors.NewCommitError(r.path, filename, err)
	}

	_, err = worktree.Commit(message, &gogit.CommitOptions{
		Author: signature(author),
	})
	if err != nil {
		return gferrors.NewCommitError(r.path, filename, err)
	}
	return nil
}

// signature builds a commit signature for an author display name.
// The original tool only carries author names, so the email is derived.
func signature(author string) *object.Signature {
	local := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(author), " ", "-"))
	if local == "" {
		local = defaultUserName
	}
	return &object.Signature{
		Name:  author,
		Email: local + "@example.com",
		When:  time.Now(),
	}
}

// Revision returns the SHA that rev (branch name, remote ref, HEAD, ...) resolves to
func (r *Repository) Revision(rev string) (string, error) {
	hash, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", rev, err)
	}
	return hash.String(), nil
}

// CommitCount returns the number of commits reachable from rev
func (r *Repository) CommitCount(rev string) (int, error) {
	hash, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return 0, fmt.Errorf("failed to resolve %s: %w", rev, err)
	}

	iter, err := r.Log(&gogit.LogOptions{From: *hash})
	if err != nil {
		return 0, fmt.Errorf("failed to read log from %s: %w", rev, err)
	}

	count := 0
	err = iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to iterate commits: %w", err)
	}
	return count, nil
}

// CommitRecord describes one commit for replay purposes: its message, author
// display name, and the files it introduced or changed with their contents.
type CommitRecord struct {
	Message string
	Author  string
	Files   map[string]string
}

// RecentCommits returns the n most recent commits on HEAD, oldest first
func (r *Repository) RecentCommits(n int) ([]CommitRecord, error) {
	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := r.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	var records []CommitRecord
	for len(records) < n {
		commit, err := iter.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate commits: %w", err)
		}

		files, err := commitFiles(commit)
		if err != nil {
			return nil, err
		}

		records = append(records, CommitRecord{
			Message: strings.TrimSpace(commit.Message),
			Author:  commit.Author.Name,
			Files:   files,
		})
	}

	// Log walks newest first; replay wants oldest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// commitFiles returns the files a commit changed relative to its first
// parent, mapped to their contents at that commit. A root commit yields the
// full tree.
func commitFiles(commit *object.Commit) (map[string]string, error) {
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree for %s: %w", commit.Hash, err)
	}

	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent of %s: %w", commit.Hash, err)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, fmt.Errorf("failed to get parent tree of %s: %w", commit.Hash, err)
		}
	}

	changes, err := object.DiffTree(parentTree, tree)
	if err != nil {
		return nil, fmt.Errorf("failed to diff trees for %s: %w", commit.Hash, err)
	}

	files := make(map[string]string)
	for _, change := range changes {
		name := change.To.Name
		if name == "" {
			// Deletion; nothing to replay
			continue
		}
		file, err := tree.File(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s at %s: %w", name, commit.Hash, err)
		}
		content, err := file.Contents()
		if err != nil {
			return nil, fmt.Errorf("failed to read contents of %s: %w", name, err)
		}
		files[name] = content
	}
	return files, nil
}
