package domain

import (
	"fmt"
	"slices"
	"time"
)

// Epic is a composite task. Its status and time frame are derived from the
// subtasks attached to it and cannot be assigned directly.
// Fields are ordered to minimize memory padding.
type Epic struct {
	startTime   time.Time
	Name        string
	Description string
	subtaskIDs  []int // ascending, no duplicates
	duration    time.Duration
	ID          int
}

// NewEpic creates an epic without subtasks.
func NewEpic(id int, name, description string) *Epic {
	return &Epic{
		ID:          id,
		Name:        name,
		Description: description,
		startTime:   UnscheduledStart,
	}
}

// ItemID returns the epic ID.
func (e *Epic) ItemID() int { return e.ID }

// Kind returns KindEpic.
func (e *Epic) Kind() Kind { return KindEpic }

// Title returns the epic name.
func (e *Epic) Title() string { return e.Name }

// Summary returns the epic description.
func (e *Epic) Summary() string { return e.Description }

// Status always returns StatusNotApplicable. Use the store to derive the real status.
func (e *Epic) Status() Status { return StatusNotApplicable }

// SetStatus is a no-op: epic status is derived from subtasks.
func (e *Epic) SetStatus(Status) {}

// ScheduledStart returns the earliest subtask start, or UnscheduledStart when
// the epic has no subtasks.
func (e *Epic) ScheduledStart() time.Time {
	if len(e.subtaskIDs) == 0 {
		return UnscheduledStart
	}
	return e.startTime
}

// ScheduledDuration returns the sum of subtask durations.
func (e *Epic) ScheduledDuration() time.Duration {
	if len(e.subtaskIDs) == 0 {
		return 0
	}
	return e.duration
}

// EndTime returns start plus duration.
func (e *Epic) EndTime() time.Time {
	return e.ScheduledStart().Add(e.ScheduledDuration())
}

// SetStart overrides the derived start time. Ignored while the epic has no subtasks.
func (e *Epic) SetStart(t time.Time) {
	if len(e.subtaskIDs) > 0 {
		e.startTime = t
	}
}

// SetDuration overrides the derived duration. Forced to zero while the epic has no subtasks.
func (e *Epic) SetDuration(d time.Duration) {
	if len(e.subtaskIDs) > 0 {
		e.duration = d
		return
	}
	e.duration = 0
}

// SubTaskIDs returns a copy of the attached subtask IDs in ascending order.
func (e *Epic) SubTaskIDs() []int {
	return slices.Clone(e.subtaskIDs)
}

// HasSubTask reports whether the subtask ID is attached.
func (e *Epic) HasSubTask(id int) bool {
	_, found := slices.BinarySearch(e.subtaskIDs, id)
	return found
}

// HasSubTasks reports whether any subtask is attached.
func (e *Epic) HasSubTasks() bool {
	return len(e.subtaskIDs) > 0
}

// Attach links a subtask to the epic and rolls its time frame into the
// epic's. Returns false if the subtask names another epic or is already attached.
func (e *Epic) Attach(sub *SubTask) bool {
	if sub == nil || sub.EpicID != e.ID {
		return false
	}
	i, found := slices.BinarySearch(e.subtaskIDs, sub.ID)
	if found {
		return false
	}
	e.subtaskIDs = slices.Insert(e.subtaskIDs, i, sub.ID)
	e.duration += sub.Duration

	start := sub.ScheduledStart()
	if len(e.subtaskIDs) == 1 || start.Before(e.startTime) {
		e.startTime = start
	}
	return true
}

// Detach unlinks a subtask and removes its time frame from the epic's.
//
// When the removed subtask started at the epic start, the epic start moves
// forward by the subtask duration. Remaining subtasks are not rescanned, so
// the result is the true minimum only when subtasks are contiguous.
func (e *Epic) Detach(sub *SubTask) bool {
	if sub == nil || sub.EpicID != e.ID {
		return false
	}
	i, found := slices.BinarySearch(e.subtaskIDs, sub.ID)
	if !found {
		return false
	}
	e.subtaskIDs = slices.Delete(e.subtaskIDs, i, i+1)
	e.duration -= sub.Duration

	if len(e.subtaskIDs) == 0 {
		e.Clear()
		return true
	}
	if e.startTime.Equal(sub.ScheduledStart()) {
		e.startTime = e.startTime.Add(sub.Duration)
	}
	return true
}

// Clear detaches every subtask and resets the epic to the unscheduled state.
func (e *Epic) Clear() {
	e.subtaskIDs = nil
	e.startTime = UnscheduledStart
	e.duration = 0
}

func (e *Epic) String() string {
	if len(e.subtaskIDs) == 0 {
		return fmt.Sprintf("%03d %s [NoSubs]", e.ID, e.Kind())
	}
	return fmt.Sprintf("%03d %s %v", e.ID, e.Kind(), e.subtaskIDs)
}
