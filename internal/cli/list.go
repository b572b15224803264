package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/roach88/esconfig/internal/store"
)

// ListResult is the output of the list command.
type ListResult struct {
	InputFile string         `json:"input_file" yaml:"input_file"`
	Systems   []store.Record `json:"systems" yaml:"systems"`
}

// String renders the systems as a table.
func (r ListResult) String() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "FULLNAME", "PATH", "EXTENSION", "COMMAND", "PLATFORM", "THEME")
	for _, s := range r.Systems {
		t.Row(s.Name, s.FullName, s.Path, s.Extension, s.Command, s.Platform, s.Theme)
	}
	return t.String()
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <inputfile>",
		Short: "List the systems in a system list",
		Long: `List the systems in a system list in file order.

The file is only read; a missing file is an error.

Examples:
  esconfig list es_systems.cfg
  esconfig list es_systems.cfg --format yaml`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, inputFile string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	s := store.New(opts.fs(), store.WithLogger(opts.newLogger(cmd.ErrOrStderr())))
	if err := s.Load(inputFile, false); err != nil {
		return reportStoreError(formatter, err)
	}

	systems := s.Records()
	if systems == nil {
		systems = []store.Record{}
	}
	return formatter.Success(ListResult{InputFile: inputFile, Systems: systems})
}
