package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// ShowItemInput contains the parameters for showing an item.
type ShowItemInput struct {
	ID int // Item ID to show
}

// ShowItemOutput contains the result of showing an item.
type ShowItemOutput struct {
	SubTasks []shared.ItemView // Subtasks of an epic, ascending ID
	Item     shared.ItemView
}

// ShowItem is the use case for displaying an item. Viewing records the item
// in history.
type ShowItem struct {
	store domain.Store
}

// NewShowItem creates a new ShowItem use case.
func NewShowItem(store domain.Store) *ShowItem {
	return &ShowItem{store: store}
}

// Execute retrieves the item and records the view.
func (uc *ShowItem) Execute(_ context.Context, in ShowItemInput) (*ShowItemOutput, error) {
	found, err := shared.FindItem(uc.store, in.ID)
	if err != nil {
		return nil, err
	}

	var item domain.Item
	switch found.Kind() {
	case domain.KindTask:
		item, _ = uc.store.GetTask(in.ID)
	case domain.KindSubTask:
		item, _ = uc.store.GetSubTask(in.ID)
	case domain.KindEpic:
		item, _ = uc.store.GetEpic(in.ID)
	default:
		return nil, fmt.Errorf("item %d: %w", in.ID, domain.ErrInvalidKind)
	}
	if err := shared.CheckSaved(uc.store); err != nil {
		return nil, err
	}

	out := &ShowItemOutput{Item: shared.View(uc.store, item)}
	if item.Kind() == domain.KindEpic {
		for _, sub := range uc.store.SubTasksOf(in.ID) {
			out.SubTasks = append(out.SubTasks, shared.View(uc.store, sub))
		}
	}
	return out, nil
}
