// Package shared holds helpers used by several use cases.
package shared

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
)

// ItemView pairs an item with its effective status.
// Fields are ordered to minimize memory padding.
type ItemView struct {
	Item   domain.Item
	Status domain.Status
	EpicID int // Parent epic of a subtask, 0 otherwise
}

// FindItem looks up an item of any kind without recording history.
func FindItem(store domain.TaskManager, id int) (domain.Item, error) {
	item, ok := store.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("item %d: %w", id, domain.ErrNotFound)
	}
	return item, nil
}

// FindEpic looks up an epic without recording history.
func FindEpic(store domain.TaskManager, id int) (*domain.Epic, error) {
	item, ok := store.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("epic %d: %w", id, domain.ErrEpicNotFound)
	}
	epic, ok := item.(*domain.Epic)
	if !ok {
		return nil, fmt.Errorf("item %d is a %s: %w", id, item.Kind().Display(), domain.ErrEpicNotFound)
	}
	return epic, nil
}

// StatusOf returns the stored status of a task or subtask and the derived
// status of an epic.
func StatusOf(store domain.TaskManager, item domain.Item) domain.Status {
	switch v := item.(type) {
	case *domain.Task:
		return v.Status
	case *domain.SubTask:
		return v.Status
	case *domain.Epic:
		if st, ok := store.EpicStatus(v.ID); ok {
			return st
		}
	}
	return domain.StatusNotApplicable
}

// View builds the view of a single item.
func View(store domain.TaskManager, item domain.Item) ItemView {
	v := ItemView{Item: item, Status: StatusOf(store, item)}
	if sub, ok := item.(*domain.SubTask); ok {
		v.EpicID = sub.EpicID
	}
	return v
}

// Views builds views for items, keeping their order.
func Views(store domain.TaskManager, items []domain.Item) []ItemView {
	out := make([]ItemView, len(items))
	for i, item := range items {
		out[i] = View(store, item)
	}
	return out
}

// ItemsOf returns the stored items of kind in ascending ID order.
// An empty kind selects every item.
func ItemsOf(store domain.TaskManager, kind domain.Kind) []domain.Item {
	var items []domain.Item
	if kind == "" || kind == domain.KindTask {
		for _, t := range store.AllTasks() {
			items = append(items, t)
		}
	}
	if kind == "" || kind == domain.KindSubTask {
		for _, s := range store.AllSubTasks() {
			items = append(items, s)
		}
	}
	if kind == "" || kind == domain.KindEpic {
		for _, e := range store.AllEpics() {
			items = append(items, e)
		}
	}
	slices.SortFunc(items, func(a, b domain.Item) int {
		return cmp.Compare(a.ItemID(), b.ItemID())
	})
	return items
}

// CheckSaved returns the error of the write that followed the last mutation.
func CheckSaved(store domain.Store) error {
	if err := store.LastSaveError(); err != nil {
		return fmt.Errorf("save store: %w", err)
	}
	return nil
}
