package tracker

import (
	"fmt"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
)

// Frame is a persisted epic time frame.
type Frame struct {
	Start    time.Time
	Duration time.Duration
}

// Snapshot is the full content of a persisted store.
type Snapshot struct {
	Frames   map[int]Frame // epic ID -> persisted time frame
	Tasks    []*domain.Task
	SubTasks []*domain.SubTask
	Epics    []*domain.Epic
	History  []int // oldest view first
}

// Snapshot captures the current store state. Epic frames are the live roll-up.
func (m *Manager) Snapshot() Snapshot {
	epics := m.AllEpics()
	frames := make(map[int]Frame, len(epics))
	for _, epic := range epics {
		if epic.HasSubTasks() {
			frames[epic.ID] = Frame{Start: epic.ScheduledStart(), Duration: epic.ScheduledDuration()}
		}
	}

	recent := m.history.IDs()
	oldestFirst := make([]int, len(recent))
	for i, id := range recent {
		oldestFirst[len(recent)-1-i] = id
	}

	return Snapshot{
		Tasks:    m.AllTasks(),
		SubTasks: m.AllSubTasks(),
		Epics:    epics,
		Frames:   frames,
		History:  oldestFirst,
	}
}

// Restore builds a store from persisted state.
//
// Items are inserted without conflict checks. Subtasks are attached once all
// epics are present; a subtask naming a missing epic is dropped. Persisted
// epic frames then override the roll-up, and history IDs are replayed in
// order. The allocator resumes one past the largest item ID seen.
func Restore(snap Snapshot, opts ...Option) *Manager {
	m := New(opts...)
	maxID := 0

	for _, task := range snap.Tasks {
		task.Normalize()
		m.tasks[task.ID] = task
		m.priority.Put(task)
		maxID = max(maxID, task.ID)
	}
	for _, epic := range snap.Epics {
		epic.Clear()
		m.epics[epic.ID] = epic
		maxID = max(maxID, epic.ID)
	}
	for _, sub := range snap.SubTasks {
		maxID = max(maxID, sub.ID)
		if _, ok := m.epics[sub.EpicID]; !ok {
			m.warn(sub.ID, "load", fmt.Sprintf("subtask dropped: epic %d not found", sub.EpicID))
			continue
		}
		sub.Normalize()
		m.subtasks[sub.ID] = sub
		m.priority.Put(sub)
	}
	for _, sub := range m.AllSubTasks() {
		m.attach(m.epics[sub.EpicID], sub)
	}
	for id, frame := range snap.Frames {
		if epic, ok := m.epics[id]; ok {
			epic.SetStart(frame.Start)
			epic.SetDuration(frame.Duration)
		}
	}

	for _, id := range snap.History {
		item, ok := m.Lookup(id)
		if !ok {
			m.warn(id, "load", "history entry skipped: item not found")
			continue
		}
		m.history.Add(item)
	}

	m.nextID = maxID + 1
	return m
}
