package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// writeSettings creates a settings file pointing at a database in t's
// temp dir and returns its path.
func writeSettings(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`
environment: test
database:
  path: %q
auth:
  jwt_secret: "cmd-test-secret"
  token_ttl: 1h
logging:
  level: error
`, filepath.Join(dir, "cmd.db"))

	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Cleanup(viper.Reset)
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
