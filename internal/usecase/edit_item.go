package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// ErrDerivedField is returned when an epic edit sets a field derived from its subtasks.
var ErrDerivedField = errors.New("epic status and time frame are derived from subtasks")

// EditItemInput contains the parameters for editing an item.
// Nil fields are left unchanged.
// Fields are ordered to minimize memory padding.
type EditItemInput struct {
	Name        *string        // New name
	Description *string        // New description
	Status      *domain.Status // New status (tasks and subtasks)
	Start       *time.Time     // New start (UnscheduledStart clears the frame)
	Duration    *time.Duration // New duration
	EpicID      *int           // Move a subtask to another epic
	ID          int            // Item ID to edit
}

// EditItemOutput contains the result of editing an item.
type EditItemOutput struct {
	Item shared.ItemView
}

// EditItem is the use case for changing an existing item.
type EditItem struct {
	store  domain.Store
	logger domain.Logger
}

// NewEditItem creates a new EditItem use case.
func NewEditItem(store domain.Store, logger domain.Logger) *EditItem {
	return &EditItem{
		store:  store,
		logger: logger,
	}
}

// Execute applies the edit. Tasks and subtasks are updated through a copy so a
// rejected edit leaves the stored item unchanged.
func (uc *EditItem) Execute(_ context.Context, in EditItemInput) (*EditItemOutput, error) {
	found, err := shared.FindItem(uc.store, in.ID)
	if err != nil {
		return nil, err
	}

	name, description := found.Title(), found.Summary()
	if in.Name != nil {
		name = *in.Name
	}
	if in.Description != nil {
		description = *in.Description
	}
	if err := domain.ValidateText(name, description); err != nil {
		return nil, err
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *in.Status)
	}

	var updated domain.Item
	switch v := found.(type) {
	case *domain.Task:
		if in.EpicID != nil {
			return nil, fmt.Errorf("item %d is a task: %w", in.ID, domain.ErrInvalidKind)
		}
		task := *v
		task.Name, task.Description = name, description
		applyEdit(&task, in)
		_, err = uc.store.UpdateTask(&task)
		updated = &task
	case *domain.SubTask:
		sub := *v
		sub.Name, sub.Description = name, description
		applyEdit(&sub.Task, in)
		if in.EpicID != nil {
			if _, err := shared.FindEpic(uc.store, *in.EpicID); err != nil {
				return nil, err
			}
			sub.EpicID = *in.EpicID
		}
		_, err = uc.store.UpdateSubTask(&sub)
		updated = &sub
	case *domain.Epic:
		if in.Status != nil || in.Start != nil || in.Duration != nil || in.EpicID != nil {
			return nil, fmt.Errorf("epic %d: %w", in.ID, ErrDerivedField)
		}
		v.Name, v.Description = name, description
		_, err = uc.store.UpdateEpic(v)
		updated = v
	default:
		return nil, fmt.Errorf("item %d: %w", in.ID, domain.ErrInvalidKind)
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", found.Kind().Display(), err)
	}
	if err := shared.CheckSaved(uc.store); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.ID, "item", fmt.Sprintf("edited %s: %q", found.Kind().Display(), name))
	}

	return &EditItemOutput{Item: shared.View(uc.store, updated)}, nil
}

func applyEdit(task *domain.Task, in EditItemInput) {
	if in.Status != nil {
		task.Status = *in.Status
	}
	if in.Start != nil {
		task.StartTime = *in.Start
	}
	if in.Duration != nil {
		task.Duration = *in.Duration
	}
}
