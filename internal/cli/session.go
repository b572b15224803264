package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/esconfig/internal/store"
)

// SessionFiles holds the positional files and --dontstop flag shared by
// the commands that edit a system list.
type SessionFiles struct {
	InputFile  string
	OutputFile string
	DontStop   bool // create an empty input file instead of failing
}

// addDontStopFlag registers --dontstop on cmd.
func addDontStopFlag(cmd *cobra.Command, files *SessionFiles) {
	cmd.Flags().BoolVar(&files.DontStop, "dontstop", false,
		"do not stop if the input file does not exist; continue with an empty system list")
}

// editSystemList loads the input file, applies edit and saves the result
// to the output file. Nothing is written if loading fails.
func editSystemList(opts *RootOptions, cmd *cobra.Command, files SessionFiles, edit func(*store.Store)) error {
	logger := opts.newLogger(cmd.ErrOrStderr())
	s := store.New(opts.fs(), store.WithLogger(logger))

	if err := s.Load(files.InputFile, files.DontStop); err != nil {
		return err
	}

	edit(s)

	if err := s.Save(files.OutputFile); err != nil {
		return err
	}
	logger.Debug("system list edited",
		"input", files.InputFile,
		"output", files.OutputFile,
		"systems", s.Len(),
	)
	return nil
}
