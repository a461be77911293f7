// Package history keeps the recently viewed items of a store.
//
// The index is a doubly linked sequence over a node arena addressed by item
// ID, so add, remove and move-to-front are constant time.
package history

import "github.com/runoshun/taskboard/internal/domain"

// node links are item IDs; 0 means no neighbour (item IDs are positive).
type node struct {
	item domain.Item
	prev int
	next int
}

// Index is a recency-ordered set of items. The head is the oldest view and
// the tail the most recent one. The zero value is not usable; call New.
// Fields are ordered to minimize memory padding.
type Index struct {
	nodes map[int]*node
	head  int
	tail  int
	limit int
}

// New creates an empty index. A positive limit caps the number of entries,
// evicting the oldest view first; 0 means unbounded.
func New(limit int) *Index {
	if limit < 0 {
		limit = 0
	}
	return &Index{
		nodes: make(map[int]*node),
		limit: limit,
	}
}

// Add records a view of item, moving it to the most recent position if it
// was already present. Returns the item ID.
func (x *Index) Add(item domain.Item) int {
	if item == nil {
		return 0
	}
	id := item.ItemID()
	if _, ok := x.nodes[id]; ok {
		x.unlink(id)
	}
	x.linkLast(id, item)
	if x.limit > 0 && len(x.nodes) > x.limit {
		x.unlink(x.head)
	}
	return id
}

// Remove unlinks the item ID. Returns the removed item, or nil if absent.
func (x *Index) Remove(id int) domain.Item {
	n, ok := x.nodes[id]
	if !ok {
		return nil
	}
	x.unlink(id)
	return n.item
}

// Replace swaps the item stored for its ID without changing its position.
// Returns false if the ID is not present.
func (x *Index) Replace(item domain.Item) bool {
	if item == nil {
		return false
	}
	n, ok := x.nodes[item.ItemID()]
	if !ok {
		return false
	}
	n.item = item
	return true
}

// Contains reports whether the item ID is present.
func (x *Index) Contains(id int) bool {
	_, ok := x.nodes[id]
	return ok
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return len(x.nodes)
}

// Limit returns the configured capacity (0 = unbounded).
func (x *Index) Limit() int {
	return x.limit
}

// List returns the items, most recently viewed first.
func (x *Index) List() []domain.Item {
	items := make([]domain.Item, 0, len(x.nodes))
	for id := x.tail; id != 0; id = x.nodes[id].prev {
		items = append(items, x.nodes[id].item)
	}
	return items
}

// IDs returns the item IDs, most recently viewed first.
func (x *Index) IDs() []int {
	ids := make([]int, 0, len(x.nodes))
	for id := x.tail; id != 0; id = x.nodes[id].prev {
		ids = append(ids, id)
	}
	return ids
}

// Clear removes every entry.
func (x *Index) Clear() {
	clear(x.nodes)
	x.head, x.tail = 0, 0
}

func (x *Index) linkLast(id int, item domain.Item) {
	n := &node{item: item, prev: x.tail}
	x.nodes[id] = n
	if x.tail == 0 {
		x.head = id
	} else {
		x.nodes[x.tail].next = id
	}
	x.tail = id
}

func (x *Index) unlink(id int) {
	n := x.nodes[id]
	if n.prev == 0 {
		x.head = n.next
	} else {
		x.nodes[n.prev].next = n.next
	}
	if n.next == 0 {
		x.tail = n.prev
	} else {
		x.nodes[n.next].prev = n.prev
	}
	delete(x.nodes, id)
}
