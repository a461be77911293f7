package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/csvcodec"
)

func TestInitializer(t *testing.T) {
	t.Run("creates missing store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".taskboard", "tasks.csv")
		si := NewInitializer(path, nil)
		assert.False(t, si.IsInitialized())

		created, err := si.Initialize()

		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, si.IsInitialized())
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, csvcodec.Header+"\n\n\n", string(content))
	})

	t.Run("keeps existing store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.csv")
		existing := csvcodec.Header + "\n1,NORM,a,NEW,b,1970-01-01T00:00,PT0S\n\n\n"
		require.NoError(t, os.WriteFile(path, []byte(existing), 0o600))

		created, err := NewInitializer(path, nil).Initialize()

		require.NoError(t, err)
		assert.False(t, created)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, existing, string(content))
	})

	t.Run("reports broken store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.csv")
		require.NoError(t, os.WriteFile(path, []byte("not a header\n"), 0o600))

		_, err := NewInitializer(path, nil).Initialize()

		assert.ErrorIs(t, err, domain.ErrInvalidHeader)
	})
}
