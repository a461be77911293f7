// Package priority orders scheduled tasks and subtasks by start time and
// rejects items whose time frame overlaps one already stored.
package priority

import (
	"cmp"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/runoshun/taskboard/internal/domain"
)

// slot is the tree key. seq breaks ties between equal start times in
// insertion order.
type slot struct {
	start time.Time
	seq   uint64
}

func compareSlots(a, b interface{}) int {
	x, y := a.(slot), b.(slot)
	if c := x.start.Compare(y.start); c != 0 {
		return c
	}
	return cmp.Compare(x.seq, y.seq)
}

// Index holds scheduled tasks and subtasks ordered by start time.
// Epics and unscheduled items are never stored.
type Index struct {
	tree  *treemap.Map // slot -> domain.Item
	slots map[int]slot // item ID -> tree key
	seq   uint64
}

// New creates an empty index.
func New() *Index {
	return &Index{
		tree:  treemap.NewWith(compareSlots),
		slots: make(map[int]slot),
	}
}

// Indexable reports whether the item belongs in the index.
func Indexable(item domain.Item) bool {
	return item != nil && item.Kind().Schedulable() && !domain.IsUnscheduled(item.ScheduledStart())
}

// Check validates the candidate's time frame against every stored item.
// The stored entry with the candidate's own ID is ignored so that an update
// does not conflict with its previous value. Returns domain.ErrTimeConflict
// on the first overlap.
func (x *Index) Check(candidate domain.Item) error {
	if candidate == nil {
		return domain.ErrNilItem
	}
	if !Indexable(candidate) || x.tree.Empty() {
		return nil
	}
	start, end := candidate.ScheduledStart(), candidate.EndTime()
	it := x.tree.Iterator()
	for it.Next() {
		stored := it.Value().(domain.Item)
		if stored.ItemID() == candidate.ItemID() {
			continue
		}
		if domain.Overlaps(stored.ScheduledStart(), stored.EndTime(), start, end) {
			return domain.ErrTimeConflict
		}
	}
	return nil
}

// Put inserts the item or refreshes its position. Items that are not
// indexable are removed instead.
func (x *Index) Put(item domain.Item) {
	if item == nil {
		return
	}
	x.Remove(item.ItemID())
	if !Indexable(item) {
		return
	}
	x.seq++
	s := slot{start: item.ScheduledStart(), seq: x.seq}
	x.tree.Put(s, item)
	x.slots[item.ItemID()] = s
}

// Remove drops the item ID. Returns false if it was not indexed.
func (x *Index) Remove(id int) bool {
	s, ok := x.slots[id]
	if !ok {
		return false
	}
	x.tree.Remove(s)
	delete(x.slots, id)
	return true
}

// RemoveKind drops every item of the given kind.
func (x *Index) RemoveKind(kind domain.Kind) {
	var ids []int
	it := x.tree.Iterator()
	for it.Next() {
		if item := it.Value().(domain.Item); item.Kind() == kind {
			ids = append(ids, item.ItemID())
		}
	}
	for _, id := range ids {
		x.Remove(id)
	}
}

// Items returns the indexed items by ascending start time.
func (x *Index) Items() []domain.Item {
	values := x.tree.Values()
	items := make([]domain.Item, 0, len(values))
	for _, v := range values {
		items = append(items, v.(domain.Item))
	}
	return items
}

// Len returns the number of indexed items.
func (x *Index) Len() int {
	return x.tree.Size()
}

// Clear removes every item.
func (x *Index) Clear() {
	x.tree.Clear()
	clear(x.slots)
}
