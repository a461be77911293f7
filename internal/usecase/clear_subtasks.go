package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// ClearSubTasksInput contains the parameters for clearing an epic.
type ClearSubTasksInput struct {
	EpicID int // Epic whose subtasks are deleted
}

// ClearSubTasksOutput contains the result of clearing an epic.
type ClearSubTasksOutput struct {
	Removed int // Number of subtasks deleted
}

// ClearSubTasks is the use case for deleting every subtask of an epic.
type ClearSubTasks struct {
	store  domain.Store
	logger domain.Logger
}

// NewClearSubTasks creates a new ClearSubTasks use case.
func NewClearSubTasks(store domain.Store, logger domain.Logger) *ClearSubTasks {
	return &ClearSubTasks{
		store:  store,
		logger: logger,
	}
}

// Execute deletes the subtasks and resets the epic time frame.
func (uc *ClearSubTasks) Execute(_ context.Context, in ClearSubTasksInput) (*ClearSubTasksOutput, error) {
	if _, err := shared.FindEpic(uc.store, in.EpicID); err != nil {
		return nil, err
	}

	removed := len(uc.store.SubTasksOf(in.EpicID))
	uc.store.ClearSubTasks(in.EpicID)
	if err := shared.CheckSaved(uc.store); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(in.EpicID, "item", fmt.Sprintf("cleared %d subtasks", removed))
	}
	return &ClearSubTasksOutput{Removed: removed}, nil
}
