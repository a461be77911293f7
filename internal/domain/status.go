package domain

import (
	"fmt"
	"strings"
)

// Status represents the progress state of a task or subtask.
type Status string

const (
	StatusNew        Status = "NEW"         // Created, not started
	StatusInProgress Status = "IN_PROGRESS" // Being worked on
	StatusDone       Status = "DONE"        // Finished

	// StatusNotApplicable is held by epics, whose status is always derived.
	StatusNotApplicable Status = "N_A"
)

// AllStatuses returns all settable status values.
func AllStatuses() []Status {
	return []Status{
		StatusNew,
		StatusInProgress,
		StatusDone,
	}
}

// IsValid returns true if the status can be assigned to a task or subtask.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	case StatusNotApplicable:
		return "n/a"
	default:
		return string(s)
	}
}

// ParseStatus parses a status name. Matching ignores case and surrounding spaces.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// DeriveEpicStatus computes an epic status from the statuses of its subtasks.
//
//   - no subtasks: NEW
//   - any IN_PROGRESS: IN_PROGRESS
//   - all NEW: NEW
//   - all DONE: DONE
//   - otherwise: IN_PROGRESS
func DeriveEpicStatus(statuses []Status) Status {
	if len(statuses) == 0 {
		return StatusNew
	}
	allNew, allDone := true, true
	for _, s := range statuses {
		switch s {
		case StatusInProgress:
			return StatusInProgress
		case StatusNew:
			allDone = false
		case StatusDone:
			allNew = false
		}
	}
	if allDone {
		return StatusDone
	}
	if allNew {
		return StatusNew
	}
	return StatusInProgress
}
