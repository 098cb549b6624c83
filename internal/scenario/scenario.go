// Package scenario defines the canned repository histories that gitfails can
// construct. Each scenario is a fixed script of repository operations that
// materializes one or more related repositories under a target directory.
package scenario

import (
	"context"
	"fmt"
	"os"

	"github.com/gitfails/gitfails/internal/tui"
)

// Scenario is a replayable procedure that builds a repository topology under
// a working directory. Construct performs the scenario's fixed sequence of
// repository operations; on any failure it aborts immediately and the error
// propagates unchanged, leaving whatever partial state exists on disk.
type Scenario interface {
	Name() string
	Description() string
	Construct(ctx context.Context) error
}

// Kind identifies a scenario type
type Kind string

const (
	// KindTwoFeatureBranches builds one repository with two sibling feature branches
	KindTwoFeatureBranches Kind = "two-feature-branches"

	// KindForcePushSharedBranch builds an origin and two clones whose shared
	// dev branch diverges after a rebase and force-push
	KindForcePushSharedBranch Kind = "force-push-shared-branch"

	// KindDivergedCommitHistories builds an upstream and a fork whose content
	// converges despite divergent commit graphs
	KindDivergedCommitHistories Kind = "diverged-commit-histories"
)

// Kinds returns the registered scenario kinds in display order
func Kinds() []Kind {
	return []Kind{
		KindTwoFeatureBranches,
		KindForcePushSharedBranch,
		KindDivergedCommitHistories,
	}
}

// Options configures a scenario. Dir is the directory the scenario builds
// under; with Overwrite set, an existing Dir is deleted before any repository
// is created. Log is optional.
type Options struct {
	Dir       string
	Overwrite bool
	Log       *tui.Splog
}

// New creates the scenario for kind
func New(kind Kind, opts Options) (Scenario, error) {
	switch kind {
	case KindTwoFeatureBranches:
		return NewTwoFeatureBranches(opts)
	case KindForcePushSharedBranch:
		return NewForcePushSharedBranch(opts)
	case KindDivergedCommitHistories:
		return NewDivergedCommitHistories(opts)
	default:
		return nil, fmt.Errorf("unknown scenario kind: %s", kind)
	}
}

// base carries the state shared by all scenarios: the target directory and
// a logger. The overwrite wipe happens here, at construction time, so a
// scenario value never observes the prior directory contents.
type base struct {
	dir string
	log *tui.Splog
}

func newBase(opts Options) (base, error) {
	log := opts.Log
	if log == nil {
		log = tui.NewSplog()
	}

	if opts.Overwrite {
		if _, err := os.Stat(opts.Dir); err == nil {
			if err := os.RemoveAll(opts.Dir); err != nil {
				return base{}, fmt.Errorf("failed to clear %s: %w", opts.Dir, err)
			}
		}
	}

	return base{dir: opts.Dir, log: log}, nil
}
