package cli

import (
	"fmt"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/gitfails/gitfails/internal/scenario"
	"github.com/gitfails/gitfails/internal/tui"
)

// newConstructCmd creates the construct command
func newConstructCmd() *cobra.Command {
	var (
		dir       string
		overwrite bool
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "construct [scenario]",
		Short: "Build a scenario's repositories under a directory",
		Long: `Build a scenario's repositories under a directory.

If no scenario is given and the terminal is interactive, you are prompted to
pick one. The scenario directory defaults to ./<scenario-name>. With
--overwrite, an existing directory is deleted first; without it, a rerun
builds on top of whatever is already there and fails on conflicting commits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := pickKind(args)
			if err != nil {
				return err
			}

			if dir == "" {
				dir = filepath.Join(".", string(kind))
			}

			splog, err := tui.NewSplogWithFile(logFile)
			if err != nil {
				return err
			}
			defer splog.Close()

			sc, err := scenario.New(kind, scenario.Options{
				Dir:       dir,
				Overwrite: overwrite,
				Log:       splog,
			})
			if err != nil {
				return err
			}

			return sc.Construct(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to build the scenario under (defaults to ./<scenario-name>)")
	cmd.Flags().BoolVarP(&overwrite, "overwrite", "f", false, "Delete the target directory before constructing")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Also write debug logs to this file")

	return cmd
}

// pickKind resolves the scenario kind from the argument, or prompts when the
// terminal is interactive
func pickKind(args []string) (scenario.Kind, error) {
	if len(args) > 0 {
		kind := scenario.Kind(args[0])
		for _, known := range scenario.Kinds() {
			if kind == known {
				return kind, nil
			}
		}
		return "", fmt.Errorf("unknown scenario %q, run 'gitfails list' to see the available scenarios", args[0])
	}

	if !tui.IsTTY() {
		return "", fmt.Errorf("a scenario argument is required in non-interactive mode")
	}

	options := make([]string, 0, len(scenario.Kinds()))
	for _, kind := range scenario.Kinds() {
		options = append(options, string(kind))
	}

	var choice string
	prompt := &survey.Select{
		Message: "Which scenario should be constructed?",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return scenario.Kind(choice), nil
}
