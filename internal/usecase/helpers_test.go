package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/tracker"
)

// memStore is an in-memory domain.Store with a settable save error.
type memStore struct {
	*tracker.Manager
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{Manager: tracker.New()}
}

func (s *memStore) LastSaveError() error { return s.saveErr }

var t0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// seedStore stores task 1, epic 2 with subtasks 3 (09:00, 1h) and 4 (10:00, 30m), and task 5 (12:00, 1h).
func seedStore(t *testing.T) *memStore {
	t.Helper()
	s := newMemStore()

	_, err := s.AddTask(domain.NewTask(s.NextID(), "write notes", "draft"))
	require.NoError(t, err)
	_, err = s.AddEpic(domain.NewEpic(s.NextID(), "release", "v2"))
	require.NoError(t, err)
	_, err = s.AddSubTask(domain.NewSubTask(s.NextID(), 2, "build", "").Schedule(t0, time.Hour))
	require.NoError(t, err)
	_, err = s.AddSubTask(domain.NewSubTask(s.NextID(), 2, "ship", "").Schedule(t0.Add(time.Hour), 30*time.Minute))
	require.NoError(t, err)
	_, err = s.AddTask(domain.NewTask(s.NextID(), "review", "").Schedule(t0.Add(3*time.Hour), time.Hour))
	require.NoError(t, err)
	return s
}

func ptr[T any](v T) *T { return &v }
