package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolved returns dir with symlinks evaluated so temp paths compare equal.
func resolved(t *testing.T, dir string) string {
	t.Helper()
	out, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return out
}

func TestFindRoot_RepoRoot(t *testing.T) {
	// Setup
	dir := resolved(t, t.TempDir())
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	// Execute
	root, err := FindRoot(dir)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindRoot_Subdirectory(t *testing.T) {
	// Setup
	dir := resolved(t, t.TempDir())
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	// Execute
	root, err := FindRoot(nested)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindRoot_NotRepository(t *testing.T) {
	dir := resolved(t, t.TempDir())

	root, err := FindRoot(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestFindRoot_BareRepository(t *testing.T) {
	dir := resolved(t, t.TempDir())
	_, err := gogit.PlainInit(dir, true)
	require.NoError(t, err)

	root, err := FindRoot(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, root)
}
