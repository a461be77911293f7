package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// ShowHistoryInput contains the parameters for showing the view history.
type ShowHistoryInput struct {
	Limit int // Maximum entries to return (0 = all)
}

// ShowHistoryOutput contains recently viewed items, most recent first.
type ShowHistoryOutput struct {
	Items []shared.ItemView
}

// ShowHistory is the use case for listing recently viewed items.
type ShowHistory struct {
	store domain.TaskManager
}

// NewShowHistory creates a new ShowHistory use case.
func NewShowHistory(store domain.TaskManager) *ShowHistory {
	return &ShowHistory{store: store}
}

// Execute returns the history.
func (uc *ShowHistory) Execute(_ context.Context, in ShowHistoryInput) (*ShowHistoryOutput, error) {
	items := uc.store.History()
	if in.Limit > 0 && len(items) > in.Limit {
		items = items[:in.Limit]
	}
	return &ShowHistoryOutput{Items: shared.Views(uc.store, items)}, nil
}
