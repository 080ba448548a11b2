package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand runs the RunE of `c` with its output captured
func runCommand(t *testing.T, c *cobra.Command, args ...string) string {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().AddFlagSet(c.Flags())
	cmd.SetContext(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, c.RunE(cmd, args))
	return out.String()
}

func writeRenderFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "render.dcm")
	require.NoError(t, os.WriteFile(path, renderBytes, 0o644))
	return path
}

func TestDumpWritesToCommandOutput(t *testing.T) {
	out := runCommand(t, dumpCmd, writeRenderFile(t))
	assert.Contains(t, out, "(0018,1310) AcquisitionMatrix")
}

func TestCountWritesToCommandOutput(t *testing.T) {
	out := runCommand(t, countCmd, writeRenderFile(t))
	assert.Contains(t, out, "SQ")
	assert.Contains(t, out, "maximum nesting depth:")
}

func TestScanWritesToCommandOutput(t *testing.T) {
	path := writeRenderFile(t)
	out := runCommand(t, scanCmd, filepath.Dir(path))
	assert.Contains(t, out, "US")
	assert.Contains(t, out, "maximum nesting depth:")
}
