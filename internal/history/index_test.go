package history

import (
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id int) *domain.Task {
	return domain.NewTask(id, "name", "descr")
}

func addAll(x *Index, ids ...int) {
	for _, id := range ids {
		x.Add(task(id))
	}
}

func TestIndex_EmptyList(t *testing.T) {
	x := New(0)

	assert.Empty(t, x.List())
	assert.Empty(t, x.IDs())
	assert.Equal(t, 0, x.Len())
}

func TestIndex_AddDeduplicates(t *testing.T) {
	x := New(0)
	addAll(x, 1, 4, 1, 2, 3)

	assert.Equal(t, []int{3, 2, 1, 4}, x.IDs())
	assert.Equal(t, 4, x.Len())
}

func TestIndex_ListReturnsItems(t *testing.T) {
	x := New(0)
	a, b := task(1), task(2)
	x.Add(a)
	x.Add(b)

	list := x.List()
	require.Len(t, list, 2)
	assert.Same(t, b, list[0])
	assert.Same(t, a, list[1])
}

func TestIndex_AddReturnsID(t *testing.T) {
	x := New(0)

	assert.Equal(t, 7, x.Add(task(7)))
	assert.Equal(t, 0, x.Add(nil))
}

func TestIndex_Remove(t *testing.T) {
	tests := []struct {
		name     string
		remove   int
		expected []int
	}{
		{"head", 1, []int{5, 4, 3, 2}},
		{"middle", 3, []int{5, 4, 2, 1}},
		{"tail", 5, []int{4, 3, 2, 1}},
		{"absent", 9, []int{5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := New(0)
			addAll(x, 1, 2, 3, 4, 5)

			x.Remove(tt.remove)

			assert.Equal(t, tt.expected, x.IDs())
		})
	}
}

func TestIndex_RemoveOnlyEntry(t *testing.T) {
	x := New(0)
	x.Add(task(1))

	removed := x.Remove(1)

	require.NotNil(t, removed)
	assert.Equal(t, 1, removed.ItemID())
	assert.Empty(t, x.IDs())

	// The index is reusable after becoming empty.
	addAll(x, 2, 3)
	assert.Equal(t, []int{3, 2}, x.IDs())
}

func TestIndex_MoveTailIsStable(t *testing.T) {
	x := New(0)
	addAll(x, 1, 2, 3, 3, 3)

	assert.Equal(t, []int{3, 2, 1}, x.IDs())
}

func TestIndex_Replace(t *testing.T) {
	x := New(0)
	addAll(x, 1, 2, 3)

	updated := domain.NewTask(2, "renamed", "")
	assert.True(t, x.Replace(updated))
	assert.False(t, x.Replace(task(9)))

	assert.Equal(t, []int{3, 2, 1}, x.IDs())
	assert.Same(t, updated, x.List()[1])
}

func TestIndex_Limit(t *testing.T) {
	x := New(3)
	addAll(x, 1, 2, 3, 4)

	assert.Equal(t, []int{4, 3, 2}, x.IDs())
	assert.False(t, x.Contains(1))

	// Re-viewing an entry does not evict anything.
	x.Add(task(2))
	assert.Equal(t, []int{2, 4, 3}, x.IDs())
}

func TestIndex_Clear(t *testing.T) {
	x := New(0)
	addAll(x, 1, 2)

	x.Clear()

	assert.Equal(t, 0, x.Len())
	x.Add(task(5))
	assert.Equal(t, []int{5}, x.IDs())
}

func TestIndex_MixedKinds(t *testing.T) {
	x := New(0)
	x.Add(domain.NewEpic(3, "epic", ""))
	x.Add(domain.NewSubTask(1, 3, "sub", ""))
	x.Add(task(4))

	list := x.List()
	require.Len(t, list, 3)
	assert.Equal(t, domain.KindTask, list[0].Kind())
	assert.Equal(t, domain.KindSubTask, list[1].Kind())
	assert.Equal(t, domain.KindEpic, list[2].Kind())
}
