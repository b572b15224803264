// Command esconfig adds, sets or removes systems in EmulationStation
// system configuration files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/esconfig/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Domain failures were already reported by the command's formatter.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) || exitErr.Code == cli.ExitCommandError {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
