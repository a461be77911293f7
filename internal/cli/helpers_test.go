package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/testutil"
)

// newTestContainer creates a container with an in-memory store and colours disabled.
func newTestContainer(t *testing.T) *app.Container {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	loader := testutil.NewMockConfigLoader()
	color := false
	loader.Config.UI.Color = &color
	return app.NewWithDeps(app.Config{DataDir: t.TempDir()}, nil, loader, nil)
}

// run executes the root command with args and returns combined output.
func run(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(c, "test-version")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
