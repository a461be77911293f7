package priority

import (
	"testing"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func at(m int) time.Time { return t0.Add(time.Duration(m) * time.Minute) }

func scheduled(id, startMin, durMin int) *domain.Task {
	return domain.NewTask(id, "name", "descr").Schedule(at(startMin), time.Duration(durMin)*time.Minute)
}

func ids(items []domain.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ItemID())
	}
	return out
}

func TestIndex_EmptyAcceptsAnything(t *testing.T) {
	x := New()

	assert.NoError(t, x.Check(scheduled(1, 0, 10)))
	assert.ErrorIs(t, x.Check(nil), domain.ErrNilItem)
}

func TestIndex_CheckTouchingEndpoints(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))

	assert.NoError(t, x.Check(scheduled(2, 10, 10)), "starts where the stored item ends")
	assert.NoError(t, x.Check(scheduled(3, -10, 10)), "ends where the stored item starts")
}

func TestIndex_CheckOverlap(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))

	tests := []struct {
		name      string
		candidate *domain.Task
	}{
		{"overlaps end", scheduled(2, 5, 10)},
		{"overlaps start", scheduled(2, -5, 10)},
		{"same start", scheduled(2, 0, 3)},
		{"contains", scheduled(2, -5, 30)},
		{"inside", scheduled(2, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, x.Check(tt.candidate), domain.ErrTimeConflict)
		})
	}
}

func TestIndex_CheckRequiresEveryEntryToClear(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))
	x.Put(scheduled(2, 30, 10))

	// Clears the first entry but overlaps the second.
	assert.ErrorIs(t, x.Check(scheduled(3, 35, 10)), domain.ErrTimeConflict)
	// Fits the gap between them.
	assert.NoError(t, x.Check(scheduled(4, 10, 20)))
}

func TestIndex_CheckIgnoresOwnEntry(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))

	assert.NoError(t, x.Check(scheduled(1, 5, 10)))
}

func TestIndex_CheckSkipsEpicsAndUnscheduled(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))

	assert.NoError(t, x.Check(domain.NewEpic(2, "epic", "")))
	assert.NoError(t, x.Check(domain.NewTask(3, "unscheduled", "")))
}

func TestIndex_PutOrdersByStart(t *testing.T) {
	x := New()
	x.Put(scheduled(4, 40, 15))
	x.Put(scheduled(1, 0, 20))
	x.Put(domain.NewSubTask(2, 3, "sub", "").Schedule(at(20), 15*time.Minute))
	x.Put(scheduled(6, 55, 30))

	assert.Equal(t, []int{1, 2, 4, 6}, ids(x.Items()))
	assert.Equal(t, 4, x.Len())
}

func TestIndex_EqualStartsKeepInsertionOrder(t *testing.T) {
	x := New()
	x.Put(scheduled(5, 0, 0))
	x.Put(scheduled(2, 0, 0))
	x.Put(scheduled(9, 0, 0))

	assert.Equal(t, []int{5, 2, 9}, ids(x.Items()))
}

func TestIndex_PutRefreshesPosition(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))
	x.Put(scheduled(2, 20, 10))

	x.Put(scheduled(1, 40, 10))

	assert.Equal(t, []int{2, 1}, ids(x.Items()))
	assert.Equal(t, 2, x.Len())
}

func TestIndex_PutSkipsEpicsAndUnscheduled(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))
	x.Put(domain.NewEpic(2, "epic", ""))
	x.Put(domain.NewTask(3, "unscheduled", ""))

	assert.Equal(t, []int{1}, ids(x.Items()))

	// Unscheduling a stored item drops it.
	x.Put(domain.NewTask(1, "now unscheduled", ""))
	assert.Empty(t, x.Items())
}

func TestIndex_Remove(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))
	x.Put(scheduled(2, 20, 10))

	assert.True(t, x.Remove(1))
	assert.False(t, x.Remove(1))
	assert.Equal(t, []int{2}, ids(x.Items()))
	assert.NoError(t, x.Check(scheduled(3, 0, 10)))
}

func TestIndex_RemoveKind(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))
	x.Put(domain.NewSubTask(2, 9, "sub", "").Schedule(at(10), 10*time.Minute))
	x.Put(scheduled(3, 20, 10))

	x.RemoveKind(domain.KindSubTask)

	require.Equal(t, []int{1, 3}, ids(x.Items()))
	assert.NoError(t, x.Check(scheduled(4, 10, 10)))
}

func TestIndex_Clear(t *testing.T) {
	x := New()
	x.Put(scheduled(1, 0, 10))

	x.Clear()

	assert.Equal(t, 0, x.Len())
	assert.False(t, x.Remove(1))
}
