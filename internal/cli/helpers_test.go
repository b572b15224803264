package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/roach88/esconfig/internal/testutil"
)

const nesList = `<?xml version="1.0"?>
<systemList>
  <system>
    <fullname>Nintendo Entertainment System</fullname>
    <name>nes</name>
    <path>/roms/nes</path>
    <extension>.nes</extension>
    <command>retroarch -L fceumm %ROM%</command>
    <platform>nes</platform>
    <theme>nes</theme>
  </system>
</systemList>
`

var snesFlags = []string{
	"--fullname", "Super Nintendo",
	"--name", "snes",
	"--directory", "/roms/snes",
	"--extension", ".sfc .smc",
	"--command", "retroarch %ROM%",
	"--platform", "snes",
	"--theme", "snes",
}

// runCommand executes a command built by newCmd against fs and returns
// stdout and the command error.
func runCommand(t *testing.T, fs afero.Fs, format string, newCmd func(*RootOptions) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format, Fs: fs}
	cmd := newCmd(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func newFsWith(t *testing.T, path, content string) afero.Fs {
	t.Helper()
	fs := testutil.NewFs()
	testutil.WriteFile(t, fs, path, content)
	return fs
}
