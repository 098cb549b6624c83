package scenario

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gitfails/gitfails/internal/git"
)

// divergeCommits is the number of commits each side adds after the fork point
const divergeCommits = 3

// DivergedCommitHistories builds an upstream repository and a fork of it
// whose commit histories diverge: the upstream gains three new commits, the
// fork gains three differently-named commits plus a replay of the upstream's
// new commits (same filenames, content, and messages, but new hashes).
//
// It models a fork whose content converges with the upstream despite a
// divergent commit graph, for later diff and merge analysis: if the fork
// includes all of the upstream's changes, a content diff is empty even though
// the histories share no recent commits.
type DivergedCommitHistories struct {
	base
}

// NewDivergedCommitHistories creates the scenario
func NewDivergedCommitHistories(opts Options) (*DivergedCommitHistories, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}
	return &DivergedCommitHistories{base: b}, nil
}

// Name returns the scenario kind name
func (s *DivergedCommitHistories) Name() string {
	return string(KindDivergedCommitHistories)
}

// Description returns a short summary for listings
func (s *DivergedCommitHistories) Description() string {
	return "An upstream and a fork whose content converges despite divergent commit graphs"
}

// Construct builds the scenario under the target directory
func (s *DivergedCommitHistories) Construct(ctx context.Context) error {
	upstream, err := git.Init(filepath.Join(s.dir, "upstream"))
	if err != nil {
		return err
	}
	if err := addCommits(upstream, "original-dev", divergeCommits, "some_file"); err != nil {
		return err
	}

	fork, err := upstream.Clone(ctx, filepath.Join(s.dir, "fork"))
	if err != nil {
		return err
	}
	s.log.Debug("cloned upstream into %s", fork.Path())

	// diverging commits on the upstream
	if err := addCommits(upstream, "external-dev", divergeCommits, "some_new_file"); err != nil {
		return err
	}

	// diverging commits on the fork, then a replay of the upstream's new
	// commits so the fork's content catches up without sharing history
	if err := addCommits(fork, "fork-dev", divergeCommits, "fork_diverge"); err != nil {
		return err
	}
	if err := replayRecentCommits(fork, upstream, "fork-dev", divergeCommits); err != nil {
		return err
	}

	s.log.Info("constructed %s under %s", s.Name(), s.dir)
	return nil
}

// addCommits commits n files named <prefix>_<i>.txt, one commit each
func addCommits(repo *git.Repository, author string, n int, prefix string) error {
	for i := 0; i < n; i++ {
		filename := fmt.Sprintf("%s_%d.txt", prefix, i)
		content := fmt.Sprintf("Content for %s, created by %s", filename, author)
		message := fmt.Sprintf("Commit %d by %s", i, author)
		if err := repo.CreateFileAndCommit(author, filename, content, message, false); err != nil {
			return err
		}
	}
	return nil
}

// replayRecentCommits re-commits the n most recent commits of src onto dst,
// oldest first, keeping filenames, contents, and messages. The new commits
// get fresh hashes and the given author identity.
func replayRecentCommits(dst, src *git.Repository, author string, n int) error {
	records, err := src.RecentCommits(n)
	if err != nil {
		return err
	}

	for _, record := range records {
		for filename, content := range record.Files {
			err := dst.CreateFileAndCommit(author, filename, content, record.Message, true)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
