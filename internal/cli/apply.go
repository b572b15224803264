package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/esconfig/internal/manifest"
	"github.com/roach88/esconfig/internal/store"
)

// ApplyOptions holds flags for the apply command.
type ApplyOptions struct {
	*RootOptions
	SessionFiles
	ManifestFile string
}

// ApplyResult is the output of a successful apply.
type ApplyResult struct {
	manifest.Summary `yaml:",inline"`
	OutputFile       string `json:"output_file" yaml:"output_file"`
}

func (r ApplyResult) String() string {
	return fmt.Sprintf("Successfully saved to file %s (%d added, %d replaced, %d removed)",
		r.OutputFile, len(r.Added), len(r.Replaced), len(r.Removed))
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApplyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "apply <manifest> <inputfile> <outputfile>",
		Short: "Apply a YAML manifest of system changes",
		Long: `Apply a YAML manifest to a system list in a single load and save.

Systems listed under "systems" are added or replaced in order, then names
listed under "remove" are removed.

Examples:
  esconfig apply systems.yaml es_systems.cfg es_systems.cfg --dontstop`,
		Args:          exactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ManifestFile, opts.InputFile, opts.OutputFile = args[0], args[1], args[2]
			return runApply(opts, cmd)
		},
	}

	addDontStopFlag(cmd, &opts.SessionFiles)

	return cmd
}

func runApply(opts *ApplyOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	m, err := manifest.Load(opts.fs(), opts.ManifestFile)
	if err != nil {
		_ = formatter.Error(ErrCodeManifest, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeManifest, err)
	}

	var sum manifest.Summary
	err = editSystemList(opts.RootOptions, cmd, opts.SessionFiles, func(s *store.Store) {
		sum = m.Apply(s)
	})
	if err != nil {
		return reportStoreError(formatter, err)
	}

	return formatter.Success(ApplyResult{Summary: sum, OutputFile: opts.OutputFile})
}
