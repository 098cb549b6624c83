package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitfails/gitfails/internal/scenario"
	"github.com/gitfails/gitfails/internal/tui"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range scenario.Kinds() {
				sc, err := scenario.New(kind, scenario.Options{Dir: "."})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n    %s\n", tui.ColorCyan(sc.Name()), sc.Description())
			}
			return nil
		},
	}
}
