package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runVersion(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "linegrep v")
	assert.Contains(t, output, "Commit:")
	assert.Contains(t, output, "Go version:")
	assert.Contains(t, output, "OS/Arch:")
}

func TestVersionCommandRegistered(t *testing.T) {
	cmd, rest, err := rootCmd.Find([]string{"version"})
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, versionCmd, cmd)
	assert.NotEmpty(t, cmd.Long)

	// version takes no arguments
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}

func TestVersionOverride(t *testing.T) {
	oldVersion, oldCommit := version, commit
	version, commit = "1.2.3", "abc123"
	t.Cleanup(func() { version, commit = oldVersion, oldCommit })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	require.NoError(t, runVersion(cmd, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "linegrep v1.2.3", lines[0])
	assert.Equal(t, "Commit: abc123", lines[1])
}
