// Package cli wires the gitfails commands together with cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitfails",
		Short: "Gitfails constructs example git repositories that illustrate tricky merge and rebase situations",
		Long: `Gitfails constructs example git repositories that illustrate tricky merge
and rebase situations: sibling feature branches, a force-pushed shared branch,
and a fork whose content converges with its upstream despite a divergent
commit history. Each scenario builds a directory tree of related repositories
you can then poke at with git itself.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.AddCommand(newConstructCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}
