package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/tracker"
)

type memStore struct {
	*tracker.Manager
	saveErr error
}

func (s *memStore) LastSaveError() error { return s.saveErr }

func seed(t *testing.T) *tracker.Manager {
	t.Helper()
	m := tracker.New()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := m.AddTask(domain.NewTask(m.NextID(), "task", ""))
	require.NoError(t, err)
	epicID, err := m.AddEpic(domain.NewEpic(m.NextID(), "epic", ""))
	require.NoError(t, err)
	sub := domain.NewSubTask(m.NextID(), epicID, "sub", "").Schedule(start, time.Hour)
	sub.Status = domain.StatusDone
	_, err = m.AddSubTask(sub)
	require.NoError(t, err)
	return m
}

func TestFindItem(t *testing.T) {
	m := seed(t)

	item, err := FindItem(m, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.KindTask, item.Kind())

	_, err = FindItem(m, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, m.History())
}

func TestFindEpic(t *testing.T) {
	m := seed(t)

	epic, err := FindEpic(m, 2)
	require.NoError(t, err)
	assert.Equal(t, "epic", epic.Name)

	_, err = FindEpic(m, 1)
	assert.ErrorIs(t, err, domain.ErrEpicNotFound)
	_, err = FindEpic(m, 42)
	assert.ErrorIs(t, err, domain.ErrEpicNotFound)
}

func TestViews(t *testing.T) {
	m := seed(t)

	views := Views(m, ItemsOf(m, ""))

	require.Len(t, views, 3)
	assert.Equal(t, domain.StatusNew, views[0].Status)
	assert.Equal(t, domain.StatusDone, views[1].Status, "epic status is derived")
	assert.Equal(t, domain.StatusDone, views[2].Status)
	assert.Equal(t, 2, views[2].EpicID)
	assert.Zero(t, views[0].EpicID)
}

func TestItemsOf(t *testing.T) {
	m := seed(t)

	tests := []struct {
		kind domain.Kind
		want []int
	}{
		{"", []int{1, 2, 3}},
		{domain.KindTask, []int{1}},
		{domain.KindEpic, []int{2}},
		{domain.KindSubTask, []int{3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var ids []int
			for _, item := range ItemsOf(m, tt.kind) {
				ids = append(ids, item.ItemID())
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestCheckSaved(t *testing.T) {
	store := &memStore{Manager: tracker.New()}
	assert.NoError(t, CheckSaved(store))

	store.saveErr = errors.New("disk full")
	assert.ErrorContains(t, CheckSaved(store), "disk full")
}
