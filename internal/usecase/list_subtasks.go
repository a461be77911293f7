package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// ListSubTasksInput contains the parameters for listing subtasks.
type ListSubTasksInput struct {
	EpicID int // Epic to list
}

// ListSubTasksOutput contains the epic and its subtasks.
type ListSubTasksOutput struct {
	SubTasks []shared.ItemView // Ascending ID order
	Epic     shared.ItemView
}

// ListSubTasks is the use case for listing the subtasks of an epic.
type ListSubTasks struct {
	store domain.TaskManager
}

// NewListSubTasks creates a new ListSubTasks use case.
func NewListSubTasks(store domain.TaskManager) *ListSubTasks {
	return &ListSubTasks{store: store}
}

// Execute lists the subtasks without recording history.
func (uc *ListSubTasks) Execute(_ context.Context, in ListSubTasksInput) (*ListSubTasksOutput, error) {
	epic, err := shared.FindEpic(uc.store, in.EpicID)
	if err != nil {
		return nil, err
	}

	out := &ListSubTasksOutput{Epic: shared.View(uc.store, epic)}
	for _, sub := range uc.store.SubTasksOf(in.EpicID) {
		out.SubTasks = append(out.SubTasks, shared.View(uc.store, sub))
	}
	return out, nil
}
