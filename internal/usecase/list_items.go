package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// ListItemsInput contains the parameters for listing items.
type ListItemsInput struct {
	Kind        domain.Kind // Filter by kind (empty = all)
	Prioritized bool        // Only scheduled tasks and subtasks, by start time
}

// ListItemsOutput contains the result of listing items.
type ListItemsOutput struct {
	Items []shared.ItemView
}

// ListItems is the use case for listing items. Listing never records history.
type ListItems struct {
	store domain.TaskManager
}

// NewListItems creates a new ListItems use case.
func NewListItems(store domain.TaskManager) *ListItems {
	return &ListItems{store: store}
}

// Execute lists items in ascending ID order, or by start time when
// Prioritized is set.
func (uc *ListItems) Execute(_ context.Context, in ListItemsInput) (*ListItemsOutput, error) {
	if !in.Prioritized {
		return &ListItemsOutput{Items: shared.Views(uc.store, shared.ItemsOf(uc.store, in.Kind))}, nil
	}

	var items []domain.Item
	for _, item := range uc.store.Prioritized() {
		if in.Kind == "" || item.Kind() == in.Kind {
			items = append(items, item)
		}
	}
	return &ListItemsOutput{Items: shared.Views(uc.store, items)}, nil
}
