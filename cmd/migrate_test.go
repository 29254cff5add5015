package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand_Help(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{
			name:           "migrate command with help",
			args:           []string{"migrate", "--help"},
			expectedOutput: "Manage the database schema",
		},
		{
			name:           "migrate up subcommand",
			args:           []string{"migrate", "up", "--help"},
			expectedOutput: "Create missing tables",
		},
		{
			name:           "migrate status subcommand",
			args:           []string{"migrate", "status", "--help"},
			expectedOutput: "Display the current status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.expectedOutput)
		})
	}
}

func TestMigrateUpAndStatus(t *testing.T) {
	settings := writeSettings(t)

	out, err := run(t, "migrate", "status", "--config", settings)
	require.NoError(t, err)
	assert.Contains(t, out, "5 table(s) pending")

	out, err = run(t, "migrate", "up", "--config", settings)
	require.NoError(t, err)
	assert.Contains(t, out, "Applied schema for 5 tables")

	out, err = run(t, "migrate", "status", "--config", settings)
	require.NoError(t, err)
	assert.Contains(t, out, "Schema is up to date")
	for _, table := range []string{"users", "categories", "podcasts", "episodes", "playlists"} {
		assert.True(t, strings.Contains(out, table), "missing %s in %q", table, out)
	}
}

func TestMigrateStatusAfterHelp(t *testing.T) {
	settings := writeSettings(t)

	out, err := run(t, "migrate", "status", "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")

	out, err = run(t, "migrate", "status", "--config", settings)
	require.NoError(t, err)
	assert.NotContains(t, out, "Usage:")
	assert.Contains(t, out, "Database Migration Status")
}

func TestNewRootCmdIsFresh(t *testing.T) {
	first, _, err := NewRootCmd().Find([]string{"migrate", "status"})
	require.NoError(t, err)
	again, _, err := NewRootCmd().Find([]string{"migrate", "status"})
	require.NoError(t, err)
	assert.NotSame(t, first, again)
}
