// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Item is the common view of tasks, subtasks and epics.
type Item interface {
	ItemID() int
	Kind() Kind
	Title() string
	Summary() string
	ScheduledStart() time.Time
	ScheduledDuration() time.Duration
	EndTime() time.Time
}

// ValidateText checks a name and description for storage. The name is
// required and neither may contain the store field or line separators.
func ValidateText(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, ",\r\n") || strings.ContainsAny(description, ",\r\n") {
		return ErrSeparator
	}
	return nil
}

// Task is a plain unit of work with its own status and time frame.
// Fields are ordered to minimize memory padding.
type Task struct {
	StartTime   time.Time     // Start of the time frame (UnscheduledStart if not scheduled)
	Name        string        // Name
	Description string        // Description
	Status      Status        // Current status
	Duration    time.Duration // Length of the time frame
	ID          int           // Item ID, shared id space with subtasks and epics
}

// NewTask creates an unscheduled task with status NEW.
func NewTask(id int, name, description string) *Task {
	return &Task{
		ID:          id,
		Name:        name,
		Description: description,
		Status:      StatusNew,
		StartTime:   UnscheduledStart,
	}
}

// Schedule sets the time frame and returns the task for chaining.
func (t *Task) Schedule(start time.Time, d time.Duration) *Task {
	t.StartTime = start
	t.Duration = d
	return t
}

// ItemID returns the task ID.
func (t *Task) ItemID() int { return t.ID }

// Kind returns KindTask.
func (t *Task) Kind() Kind { return KindTask }

// Title returns the task name.
func (t *Task) Title() string { return t.Name }

// Summary returns the task description.
func (t *Task) Summary() string { return t.Description }

// ScheduledStart returns the start time, mapping the zero time to UnscheduledStart.
func (t *Task) ScheduledStart() time.Time {
	if t.StartTime.IsZero() {
		return UnscheduledStart
	}
	return t.StartTime
}

// ScheduledDuration returns the duration.
func (t *Task) ScheduledDuration() time.Duration { return t.Duration }

// EndTime returns start plus duration.
func (t *Task) EndTime() time.Time {
	return t.ScheduledStart().Add(t.Duration)
}

// Scheduled reports whether the task has a real time frame.
func (t *Task) Scheduled() bool {
	return !IsUnscheduled(t.StartTime)
}

// Normalize moves the start wall clock into UTC, replaces a zero start time
// with UnscheduledStart and an empty status with NEW.
func (t *Task) Normalize() {
	t.StartTime = wallClockUTC(t.StartTime)
	if t.StartTime.IsZero() {
		t.StartTime = UnscheduledStart
	}
	if t.Status == "" {
		t.Status = StatusNew
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("%03d %s [%s]", t.ID, t.Kind(), t.Status)
}

// SubTask is a task that belongs to exactly one epic.
type SubTask struct {
	Task
	EpicID int // Parent epic ID
}

// NewSubTask creates an unscheduled subtask of the given epic with status NEW.
func NewSubTask(id, epicID int, name, description string) *SubTask {
	return &SubTask{
		Task:   *NewTask(id, name, description),
		EpicID: epicID,
	}
}

// Schedule sets the time frame and returns the subtask for chaining.
func (s *SubTask) Schedule(start time.Time, d time.Duration) *SubTask {
	s.Task.Schedule(start, d)
	return s
}

// Kind returns KindSubTask.
func (s *SubTask) Kind() Kind { return KindSubTask }

func (s *SubTask) String() string {
	return fmt.Sprintf("%03d %s [%s] [%d]", s.ID, s.Kind(), s.Status, s.EpicID)
}

// Ensure the entity types implement Item.
var (
	_ Item = (*Task)(nil)
	_ Item = (*SubTask)(nil)
	_ Item = (*Epic)(nil)
)
