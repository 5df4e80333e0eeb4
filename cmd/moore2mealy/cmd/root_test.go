package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/moore-mealy/internal/fixtures"
)

// TestRootCommand_Subcommands runs list and convert through cobra.
func TestRootCommand_Subcommands(t *testing.T) {
	var buf bytes.Buffer

	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"list"})
	require.NoError(t, rootCmd.Execute())

	for _, name := range fixtures.Names() {
		require.Contains(t, buf.String(), name)
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"convert", "two-state", "--format", "mermaid"})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, buf.String(), "stateDiagram-v2")

	buf.Reset()
	rootCmd.SetArgs([]string{"convert", "missing"})
	require.Error(t, rootCmd.Execute())
}

// TestRootCommand_Export writes a catalog file.
func TestRootCommand_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	rootCmd.SetArgs([]string{"export", path})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(path)
	require.NoError(t, err)
}
