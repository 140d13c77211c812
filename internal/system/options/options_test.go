// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, terminal bool) {
	t.Helper()

	h, term := HelpHandler, Terminal
	t.Cleanup(func() {
		HelpHandler, Terminal = h, term
	})

	HelpHandler = docopt.NoHelpHandler
	Terminal = func() bool {
		return terminal
	}
}

func TestScript(t *testing.T) {
	setup(t, true)

	require.NoError(t, ParseArgs([]string{"-l", "debug", "commands.txt"}))

	assert.Equal(t, "commands.txt", Script())
	assert.Equal(t, "debug", LogLevel())
	assert.Empty(t, Command())
	assert.False(t, Interactive())

	require.NoError(t, ParseArgs([]string{"-i", "commands.txt"}))
	assert.True(t, Interactive())
}

func TestCommand(t *testing.T) {
	setup(t, true)

	require.NoError(t, ParseArgs([]string{"-f", "ce.toml", "-c", "list-constructs"}))

	assert.Equal(t, "list-constructs", Command())
	assert.Equal(t, "ce.toml", Config())
	assert.False(t, Interactive())
}

func TestInteractive(t *testing.T) {
	setup(t, true)

	require.NoError(t, ParseArgs(nil))
	assert.True(t, Interactive())

	setup(t, false)

	require.NoError(t, ParseArgs([]string{"-s"}))
	assert.False(t, Interactive())
	assert.True(t, Stdin())
}

func TestUsageError(t *testing.T) {
	setup(t, false)

	assert.Error(t, ParseArgs([]string{"--bogus"}))
	assert.Contains(t, Usage(), "classeditor -V")
}
