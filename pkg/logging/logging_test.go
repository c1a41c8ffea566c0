package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/praetorian-inc/linegrep/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Stderr(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log

	logger, closer, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Msg("hidden")
	logger.Warn().Str("source", "a.txt").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "source=a.txt")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	cfg.Level = "DEBUG"

	logger, _, err := New(cfg, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Log
	cfg.File = filepath.Join(t.TempDir(), "logs", "linegrep.log")

	logger, closer, err := New(cfg, &buf)
	require.NoError(t, err)

	logger.Warn().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
	assert.Empty(t, buf.String())
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Default().Log
	cfg.Level = "chatty"

	_, _, err := New(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
