package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase/shared"
)

// ImportItemsInput contains the parameters for creating items from drafts.
type ImportItemsInput struct {
	Drafts []domain.ItemDraft // Parsed drafts, typically from a YAML file
	DryRun bool               // If true, validate without creating items
}

// ImportedItem describes an item created from a draft.
// Fields are ordered to minimize memory padding.
type ImportedItem struct {
	Name   string
	Kind   domain.Kind
	ID     int // 0 in dry-run mode
	EpicID int // Parent epic of a subtask (0 for a nested subtask in dry-run mode)
}

// ImportItemsOutput contains the result of an import.
type ImportItemsOutput struct {
	Items []ImportedItem // Created items (or items that would be created in dry-run mode)
}

// ImportItems is the use case for creating items in bulk. Drafts are created
// in order; an epic is created before its nested subtasks.
type ImportItems struct {
	store   domain.Store
	newItem *NewItem
}

// NewImportItems creates a new ImportItems use case.
func NewImportItems(store domain.Store, logger domain.Logger) *ImportItems {
	return &ImportItems{
		store:   store,
		newItem: NewNewItem(store, logger),
	}
}

// Execute validates every draft and then creates the items. Creation stops at
// the first rejected item; items created before it are kept.
func (uc *ImportItems) Execute(ctx context.Context, in ImportItemsInput) (*ImportItemsOutput, error) {
	for i, draft := range in.Drafts {
		if err := draft.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if draft.Kind == domain.KindSubTask {
			if _, err := shared.FindEpic(uc.store, draft.EpicID); err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
		}
	}

	out := &ImportItemsOutput{}
	if in.DryRun {
		for _, draft := range in.Drafts {
			out.Items = append(out.Items, planned(draft, draft.EpicID)...)
		}
		return out, nil
	}

	for i, draft := range in.Drafts {
		created, err := uc.create(ctx, draft, draft.EpicID)
		out.Items = append(out.Items, created...)
		if err != nil {
			return out, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return out, nil
}

func (uc *ImportItems) create(ctx context.Context, draft domain.ItemDraft, epicID int) ([]ImportedItem, error) {
	res, err := uc.newItem.Execute(ctx, NewItemInput{
		Kind:        draft.Kind,
		Name:        draft.Name,
		Description: draft.Description,
		Status:      draft.Status,
		Start:       draft.Start,
		Duration:    draft.Duration,
		EpicID:      epicID,
	})
	if err != nil {
		return nil, fmt.Errorf("%q: %w", draft.Name, err)
	}

	items := []ImportedItem{{ID: res.ID, Kind: res.Kind, Name: draft.Name, EpicID: epicID}}
	for _, sub := range draft.SubTasks {
		created, err := uc.create(ctx, sub, res.ID)
		items = append(items, created...)
		if err != nil {
			return items, err
		}
	}
	return items, nil
}

func planned(draft domain.ItemDraft, epicID int) []ImportedItem {
	items := []ImportedItem{{Kind: draft.Kind, Name: draft.Name, EpicID: epicID}}
	for _, sub := range draft.SubTasks {
		items = append(items, planned(sub, 0)...)
	}
	return items
}
