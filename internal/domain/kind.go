package domain

import (
	"fmt"
	"strings"
)

// Kind tags the three entity variants.
type Kind string

const (
	KindTask    Kind = "NORM" // Plain task
	KindSubTask Kind = "SUBT" // Task that belongs to an epic
	KindEpic    Kind = "EPIC" // Composite task aggregating subtasks
)

// Schedulable reports whether items of this kind take part in time-conflict
// validation and the prioritized ordering. Epics never do.
func (k Kind) Schedulable() bool {
	return k == KindTask || k == KindSubTask
}

// Display returns a short human-readable label.
func (k Kind) Display() string {
	switch k {
	case KindTask:
		return "task"
	case KindSubTask:
		return "sub"
	case KindEpic:
		return "epic"
	default:
		return string(k)
	}
}

// ParseKind parses a persisted type tag. Matching ignores case and surrounding spaces.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(raw)))
	switch k {
	case KindTask, KindSubTask, KindEpic:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, raw)
}

// ParseKindName parses the names used on the command line (task, sub, epic).
func ParseKindName(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "task", "tasks", "norm":
		return KindTask, nil
	case "sub", "subs", "subtask", "subtasks", "subt":
		return KindSubTask, nil
	case "epic", "epics":
		return KindEpic, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, raw)
}
