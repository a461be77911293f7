// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// NewItemInput contains the parameters for creating an item.
// Fields are ordered to minimize memory padding.
type NewItemInput struct {
	Start       time.Time     // Start of the time frame (zero = unscheduled)
	Name        string        // Item name (required)
	Description string        // Item description (optional)
	Status      domain.Status // Initial status (empty = NEW, ignored for epics)
	Kind        domain.Kind   // KindTask, KindSubTask or KindEpic
	Duration    time.Duration // Length of the time frame
	EpicID      int           // Parent epic (subtasks only)
}

// NewItemOutput contains the result of creating an item.
type NewItemOutput struct {
	Kind domain.Kind // Kind of the created item
	ID   int         // The ID of the created item
}

// NewItem is the use case for creating a task, subtask or epic.
type NewItem struct {
	store  domain.Store
	logger domain.Logger
}

// NewNewItem creates a new NewItem use case.
func NewNewItem(store domain.Store, logger domain.Logger) *NewItem {
	return &NewItem{
		store:  store,
		logger: logger,
	}
}

// Execute creates an item with the given input.
func (uc *NewItem) Execute(_ context.Context, in NewItemInput) (*NewItemOutput, error) {
	if err := domain.ValidateText(in.Name, in.Description); err != nil {
		return nil, err
	}
	if in.Status != "" && !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	var (
		id  int
		err error
	)
	switch in.Kind {
	case domain.KindTask, "":
		task := domain.NewTask(uc.store.NextID(), in.Name, in.Description)
		applyFrame(task, in)
		id, err = uc.store.AddTask(task)
	case domain.KindSubTask:
		if _, err := shared.FindEpic(uc.store, in.EpicID); err != nil {
			return nil, err
		}
		sub := domain.NewSubTask(uc.store.NextID(), in.EpicID, in.Name, in.Description)
		applyFrame(&sub.Task, in)
		id, err = uc.store.AddSubTask(sub)
	case domain.KindEpic:
		id, err = uc.store.AddEpic(domain.NewEpic(uc.store.NextID(), in.Name, in.Description))
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, in.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", kindOrTask(in.Kind).Display(), err)
	}
	if err := shared.CheckSaved(uc.store); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(id, "item", fmt.Sprintf("created %s: %q", kindOrTask(in.Kind).Display(), in.Name))
	}

	return &NewItemOutput{ID: id, Kind: kindOrTask(in.Kind)}, nil
}

func applyFrame(task *domain.Task, in NewItemInput) {
	if in.Status != "" {
		task.Status = in.Status
	}
	if !in.Start.IsZero() {
		task.StartTime = in.Start
	}
	task.Duration = in.Duration
}

func kindOrTask(k domain.Kind) domain.Kind {
	if k == "" {
		return domain.KindTask
	}
	return k
}
