package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/esconfig/internal/store"
)

// RemoveOptions holds flags for the remove command.
type RemoveOptions struct {
	*RootOptions
	SessionFiles
	Name string
}

// RemoveResult is the output of a successful remove.
type RemoveResult struct {
	Name       string `json:"name" yaml:"name"`
	Removed    bool   `json:"removed" yaml:"removed"`
	InputFile  string `json:"input_file" yaml:"input_file"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

func (r RemoveResult) String() string {
	return fmt.Sprintf("Removed system %s from %s", r.Name, r.InputFile)
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RemoveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "remove <inputfile> <outputfile>",
		Short: "Remove a system",
		Long: `Remove the named system from a system list.

Removing a system that is not in the list is not an error; the output file
is still written.

Examples:
  esconfig remove es_systems.cfg es_systems.cfg --name snes`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InputFile, opts.OutputFile = args[0], args[1]
			return runRemove(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "name of the system")
	addDontStopFlag(cmd, &opts.SessionFiles)

	return cmd
}

func runRemove(opts *RemoveOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	if missing := missingFlags(cmd.Flags().Changed, []string{"name"}); len(missing) > 0 {
		return reportMissingArguments(formatter, "System name is missing as argument.", missing)
	}

	var removed bool
	err := editSystemList(opts.RootOptions, cmd, opts.SessionFiles, func(s *store.Store) {
		removed = s.Remove(opts.Name)
	})
	if err != nil {
		return reportStoreError(formatter, err)
	}

	return formatter.Success(RemoveResult{
		Name:       opts.Name,
		Removed:    removed,
		InputFile:  opts.InputFile,
		OutputFile: opts.OutputFile,
	})
}
