package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/esconfig/internal/store"
)

// Error codes reported in CLIError.Code.
const (
	ErrCodeGeneric          = "E001" // Generic/unknown error
	ErrCodeNotFound         = "E002" // Input file not found
	ErrCodeParseFailed      = "E003" // System list could not be parsed
	ErrCodePathFailed       = "E004" // Directory creation, backup, read or write failed
	ErrCodeMissingArguments = "E005" // Required flags missing for the mode
	ErrCodeManifest         = "E006" // Manifest unreadable or invalid
)

// ErrMissingArguments is returned when required flags for a mode are
// absent. It is detected before any file is touched.
var ErrMissingArguments = errors.New("missing arguments")

// missingFlags returns the names of flags in required that were not set
// on the command line. An explicitly empty value counts as set.
func missingFlags(isSet func(string) bool, required []string) []string {
	var missing []string
	for _, name := range required {
		if !isSet(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// reportMissingArguments outputs a missing arguments error listing the
// absent flags.
func reportMissingArguments(formatter *OutputFormatter, message string, missing []string) error {
	flags := make([]string, len(missing))
	for i, name := range missing {
		flags[i] = "--" + name
	}
	_ = formatter.Error(ErrCodeMissingArguments, message, map[string]any{"missing": flags})
	return WrapExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeMissingArguments, strings.Join(flags, ", ")), ErrMissingArguments)
}

// reportStoreError maps a store error to an error code and message,
// outputs it and returns the ExitError for the command.
func reportStoreError(formatter *OutputFormatter, err error) error {
	code, message := classifyStoreError(err)
	_ = formatter.Error(code, message, nil)
	return WrapExitError(ExitFailure, code, err)
}

func classifyStoreError(err error) (string, string) {
	var parseErr *store.ParseError
	var pathErr *store.PathError

	switch {
	case errors.Is(err, store.ErrFileNotFound):
		return ErrCodeNotFound, fmt.Sprintf("Cannot find input file: %v", err)
	case errors.As(err, &parseErr):
		return ErrCodeParseFailed, fmt.Sprintf("Cannot parse %s: %v", parseErr.Path, parseErr.Err)
	case errors.As(err, &pathErr) && pathErr.Op == store.OpMkdir:
		return ErrCodePathFailed, fmt.Sprintf("Cannot create directory %s: %v", pathErr.Path, pathErr.Err)
	case errors.As(err, &pathErr):
		return ErrCodePathFailed, pathErr.Error()
	default:
		return ErrCodeGeneric, err.Error()
	}
}
