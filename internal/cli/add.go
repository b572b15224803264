package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/esconfig/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	SessionFiles
	Record store.Record
}

// AddResult is the output of a successful add.
type AddResult struct {
	Name       string `json:"name" yaml:"name"`
	Replaced   bool   `json:"replaced" yaml:"replaced"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

func (r AddResult) String() string {
	return fmt.Sprintf("Successfully saved to file %s", r.OutputFile)
}

// recordFlags are the flags that make up a full system record.
var recordFlags = []string{"fullname", "name", "directory", "extension", "command", "platform", "theme"}

// NewAddCommand creates the add command. "set" is an alias.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "add <inputfile> <outputfile>",
		Aliases: []string{"set"},
		Short:   "Add or replace a system",
		Long: `Add a system to a system list, or replace the system with the same name.

All seven system flags are required. A replaced system keeps its position
in the list.

Examples:
  esconfig add es_systems.cfg es_systems.cfg \
    --fullname "Super Nintendo" --name snes --directory /roms/snes \
    --extension ".sfc .smc" --command "retroarch %ROM%" \
    --platform snes --theme snes
  esconfig set in.cfg out.cfg --dontstop -f PC -n pc -d /roms/pc -e .sh -c %ROM% -p pc -t pc`,
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InputFile, opts.OutputFile = args[0], args[1]
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Record.FullName, "fullname", "f", "", "full name of the system")
	cmd.Flags().StringVarP(&opts.Record.Name, "name", "n", "", "name of the system")
	cmd.Flags().StringVarP(&opts.Record.Path, "directory", "d", "", "path of the ROMs of the system")
	cmd.Flags().StringVarP(&opts.Record.Extension, "extension", "e", "", "extensions of the ROMs")
	cmd.Flags().StringVarP(&opts.Record.Command, "command", "c", "", "command to start the emulator with a ROM")
	cmd.Flags().StringVarP(&opts.Record.Platform, "platform", "p", "", "platform name for EmulationStation")
	cmd.Flags().StringVarP(&opts.Record.Theme, "theme", "t", "", "theme name for EmulationStation")
	addDontStopFlag(cmd, &opts.SessionFiles)

	return cmd
}

func runAdd(opts *AddOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}

	if missing := missingFlags(cmd.Flags().Changed, recordFlags); len(missing) > 0 {
		return reportMissingArguments(formatter, "System arguments are incomplete.", missing)
	}

	var replaced bool
	err := editSystemList(opts.RootOptions, cmd, opts.SessionFiles, func(s *store.Store) {
		replaced = s.Upsert(opts.Record)
	})
	if err != nil {
		return reportStoreError(formatter, err)
	}

	return formatter.Success(AddResult{
		Name:       opts.Record.Name,
		Replaced:   replaced,
		OutputFile: opts.OutputFile,
	})
}
