// Released under an MIT license. See LICENSE.

package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, slog.LevelDebug)
	log.With("session", 1).WithGroup("op").Info("added", "name", "Dog", "ok", true)

	line := buf.String()
	assert.Regexp(t, `^\S+ \[info\] added \| session=1 op\.name=Dog op\.ok=true\n$`, line)
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown")
	log.Error("also shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[warn] shown")
	assert.Contains(t, buf.String(), "[error] also shown")

	buf.Reset()

	log = New(&buf, Off)
	log.Error("nothing")
	assert.Empty(t, buf.String())
}

func TestLevelFromString(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"error":  slog.LevelError,
		"off":    Off,
		"quiet":  Off,
		"bogus":  slog.LevelWarn,
		"":       slog.LevelWarn,
	} {
		assert.Equal(t, want, LevelFromString(s), s)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classeditor.log")

	log, closer, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)

	log.Info("written")
	require.NoError(t, closer.Close())

	log, closer, err = Open("", slog.LevelInfo)
	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.NoError(t, closer.Close())
}
