package domain

import (
	"fmt"
	"time"
)

// ItemDraft describes an item to be created from file input.
// Epic drafts may carry nested subtask drafts; a top-level subtask draft must
// name an existing epic through EpicID.
// Fields are ordered to minimize memory padding.
type ItemDraft struct {
	Start       time.Time     // Zero = unscheduled
	Name        string        // Required
	Description string        // Optional
	Status      Status        // Empty = NEW; ignored for epics
	Kind        Kind          // KindTask, KindSubTask or KindEpic
	SubTasks    []ItemDraft   // Nested subtasks (epics only)
	Duration    time.Duration // Zero = no duration
	EpicID      int           // Existing parent epic (top-level subtasks only)
}

// Validate checks the draft and its nested subtasks.
func (d ItemDraft) Validate() error {
	return d.validate(false)
}

func (d ItemDraft) validate(nested bool) error {
	if err := ValidateText(d.Name, d.Description); err != nil {
		return fmt.Errorf("%q: %w", d.Name, err)
	}
	if d.Status != "" && !d.Status.IsValid() {
		return fmt.Errorf("%q: %w: %q", d.Name, ErrInvalidStatus, d.Status)
	}
	switch d.Kind {
	case KindTask:
	case KindSubTask:
		if !nested && d.EpicID <= 0 {
			return fmt.Errorf("%q: subtask needs an epic: %w", d.Name, ErrEpicNotFound)
		}
	case KindEpic:
		for i, sub := range d.SubTasks {
			if sub.Kind != KindSubTask {
				return fmt.Errorf("%q: subtask %d: %w: %q", d.Name, i+1, ErrInvalidKind, sub.Kind)
			}
			if err := sub.validate(true); err != nil {
				return fmt.Errorf("%q: subtask %d: %w", d.Name, i+1, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%q: %w: %q", d.Name, ErrInvalidKind, d.Kind)
	}
	if len(d.SubTasks) > 0 {
		return fmt.Errorf("%q: only epics can have subtasks: %w", d.Name, ErrInvalidKind)
	}
	return nil
}

// Count returns the number of items the draft creates.
func (d ItemDraft) Count() int {
	n := 1
	for _, sub := range d.SubTasks {
		n += sub.Count()
	}
	return n
}
