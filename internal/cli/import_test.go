package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
)

const planYAML = `items:
  - kind: epic
    name: Release
    subtasks:
      - name: Build
        start: 2024-03-01T09:00
        duration: 30m
  - name: Write notes
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportCommand(t *testing.T) {
	// Setup
	c := newTestContainer(t)
	path := writePlan(t, planYAML)

	// Execute
	out, err := run(t, c, "import", path)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, `Created epic #1 "Release"`)
	assert.Contains(t, out, `Created sub #2 "Build" (epic #1)`)
	assert.Contains(t, out, `Created task #3 "Write notes"`)
	assert.Len(t, c.Store.SubTasksOf(1), 1)
}

func TestImportCommand_DryRun(t *testing.T) {
	c := newTestContainer(t)
	path := writePlan(t, planYAML)

	out, err := run(t, c, "import", path, "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, `Would create epic "Release"`)
	assert.Contains(t, out, "3 items would be created")
	assert.Empty(t, c.Store.AllEpics())
	assert.Empty(t, c.Store.AllTasks())
}

func TestImportCommand_InvalidFile(t *testing.T) {
	c := newTestContainer(t)
	path := writePlan(t, "items:\n  - kind: sub\n    name: orphan\n")

	_, err := run(t, c, "import", path)

	assert.ErrorIs(t, err, domain.ErrEpicNotFound)
}
