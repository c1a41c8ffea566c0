package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praetorian-inc/linegrep/pkg/option"
)

func runCombinationsWith(t *testing.T, format string) (string, error) {
	t.Helper()
	old := combinationsFormat
	combinationsFormat = format
	t.Cleanup(func() { combinationsFormat = old })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := runCombinations(cmd, []string{})
	return buf.String(), err
}

func TestCombinations_Table(t *testing.T) {
	output, err := runCombinationsWith(t, "table")
	require.NoError(t, err)

	assert.Contains(t, output, "Options")
	assert.Contains(t, output, "(none)")
	assert.Contains(t, output, "-F -c -v")
	assert.Contains(t, output, "-A_N -v")
	assert.Contains(t, output, "-C_N")
}

func TestCombinations_JSON(t *testing.T) {
	output, err := runCombinationsWith(t, "json")
	require.NoError(t, err)

	var rows []combinationRow
	require.NoError(t, json.Unmarshal([]byte(output), &rows))
	require.Len(t, rows, len(option.Supported()))

	byKey := make(map[string]combinationRow)
	for _, r := range rows {
		byKey[r.Key] = r
	}
	assert.Equal(t, "Bv", byKey["Bv"].Strategy)
	assert.Equal(t, "-B_N -v", byKey["Bv"].Options)
	assert.Equal(t, "c", byKey["co"].Strategy)
}

func TestCombinations_UnknownFormat(t *testing.T) {
	_, err := runCombinationsWith(t, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
