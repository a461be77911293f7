package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// DeleteItemInput contains the parameters for deleting items.
// Set either ID or All.
type DeleteItemInput struct {
	All domain.Kind // Delete every item of this kind
	ID  int         // Item ID to delete
}

// DeleteItemOutput contains the result of deleting items.
type DeleteItemOutput struct {
	Deleted int // Number of items removed, including cascaded subtasks
}

// DeleteItem is the use case for removing items.
type DeleteItem struct {
	store  domain.Store
	logger domain.Logger
}

// NewDeleteItem creates a new DeleteItem use case.
func NewDeleteItem(store domain.Store, logger domain.Logger) *DeleteItem {
	return &DeleteItem{
		store:  store,
		logger: logger,
	}
}

// Execute deletes a single item by ID or every item of a kind.
// Deleting an epic also deletes its subtasks.
func (uc *DeleteItem) Execute(_ context.Context, in DeleteItemInput) (*DeleteItemOutput, error) {
	if in.All != "" {
		return uc.deleteAll(in.All)
	}

	item, err := shared.FindItem(uc.store, in.ID)
	if err != nil {
		return nil, err
	}

	deleted := 1
	switch item.Kind() {
	case domain.KindTask:
		uc.store.DeleteTask(in.ID)
	case domain.KindSubTask:
		uc.store.DeleteSubTask(in.ID)
	case domain.KindEpic:
		deleted += len(uc.store.SubTasksOf(in.ID))
		uc.store.DeleteEpic(in.ID)
	}
	if err := shared.CheckSaved(uc.store); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.ID, "item", fmt.Sprintf("deleted %s", item.Kind().Display()))
	}
	return &DeleteItemOutput{Deleted: deleted}, nil
}

func (uc *DeleteItem) deleteAll(kind domain.Kind) (*DeleteItemOutput, error) {
	var deleted int
	switch kind {
	case domain.KindTask:
		deleted = len(uc.store.AllTasks())
		uc.store.DeleteAllTasks()
	case domain.KindSubTask:
		deleted = len(uc.store.AllSubTasks())
		uc.store.DeleteAllSubTasks()
	case domain.KindEpic:
		for _, epic := range uc.store.AllEpics() {
			deleted += 1 + len(uc.store.SubTasksOf(epic.ID))
		}
		uc.store.DeleteAllEpics()
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}
	if err := shared.CheckSaved(uc.store); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(0, "item", fmt.Sprintf("deleted all %ss (%d items)", kind.Display(), deleted))
	}
	return &DeleteItemOutput{Deleted: deleted}, nil
}
