package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamplesCommandList(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name: "list shows all categories by default",
			args: []string{"--list"},
			contains: []string{
				"Available samples (all categories)",
				"[prose]",
				"[notes]",
				"Filled Essay",
				"Editor Tour",
			},
		},
		{
			name: "list one category",
			args: []string{"notes", "--list"},
			contains: []string{
				"Available samples in category 'notes'",
				"Meeting Notes",
			},
			excludes: []string{"Filled Essay"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := NewExamplesCommand()
			cmd.SetOut(&buf)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())

			out := buf.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestExamplesCommandInstall(t *testing.T) {
	dir := t.TempDir()

	cmd := NewExamplesCommand()
	cmd.SetArgs([]string{"prose", "--dir", dir})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "example-filled-essay.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Plain text files outlive")

	// A second run without --force leaves existing files alone.
	marker := []byte("edited by hand\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "example-filled-essay.txt"), marker, 0644))

	cmd = NewExamplesCommand()
	cmd.SetArgs([]string{"prose", "--dir", dir})
	require.NoError(t, cmd.Execute())

	data, err = os.ReadFile(filepath.Join(dir, "example-filled-essay.txt"))
	require.NoError(t, err)
	assert.Equal(t, marker, data)

	// With --force the sample comes back.
	cmd = NewExamplesCommand()
	cmd.SetArgs([]string{"prose", "--dir", dir, "--force"})
	require.NoError(t, cmd.Execute())

	data, err = os.ReadFile(filepath.Join(dir, "example-filled-essay.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Plain text files outlive"))
}

func TestExamplesCommandInvalidCategory(t *testing.T) {
	cmd := NewExamplesCommand()
	cmd.SetArgs([]string{"poetry"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}
