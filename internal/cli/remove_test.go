package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/esconfig/internal/testutil"
)

func TestRemove_OnlyEntry(t *testing.T) {
	fs := newFsWith(t, "/es/systems.cfg", nesList)

	out, err := runCommand(t, fs, "text", NewRemoveCommand, "/es/systems.cfg", "/es/systems.cfg", "--name", "nes")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed system nes from /es/systems.cfg")

	content := testutil.ReadFile(t, fs, "/es/systems.cfg")
	assert.Contains(t, content, "<systemList/>")
	assert.NotContains(t, content, "<system>")
	assert.Equal(t, nesList, testutil.ReadFile(t, fs, "/es/systemsBAK.cfg"))
}

func TestRemove_UnknownNameIsNoOp(t *testing.T) {
	fs := newFsWith(t, "/es/systems.cfg", nesList)

	_, err := runCommand(t, fs, "text", NewRemoveCommand, "/es/systems.cfg", "/es/out.cfg", "-n", "psx")
	require.NoError(t, err)

	content := testutil.ReadFile(t, fs, "/es/out.cfg")
	assert.Equal(t, 1, strings.Count(content, "<system>"))
	assert.Contains(t, content, "<name>nes</name>")
}

func TestRemove_MissingName(t *testing.T) {
	fs := newFsWith(t, "/es/systems.cfg", nesList)

	out, err := runCommand(t, fs, "text", NewRemoveCommand, "/es/systems.cfg", "/es/out.cfg")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "System name is missing as argument.")
	assert.False(t, testutil.Exists(t, fs, "/es/out.cfg"))
}

func TestRemove_MissingInputWithoutDontStop(t *testing.T) {
	fs := testutil.NewFs()

	_, err := runCommand(t, fs, "text", NewRemoveCommand, "/es/in.cfg", "/es/out.cfg", "-n", "snes")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestRemove_MissingInputWithDontStop(t *testing.T) {
	fs := testutil.NewFs()

	_, err := runCommand(t, fs, "text", NewRemoveCommand, "/es/in.cfg", "/es/out.cfg", "-n", "snes", "--dontstop")

	require.NoError(t, err)
	assert.True(t, testutil.Exists(t, fs, "/es/in.cfg"))
	assert.Contains(t, testutil.ReadFile(t, fs, "/es/out.cfg"), "<systemList/>")
}
