// Package tracker implements the in-memory entity store for tasks, subtasks
// and epics.
package tracker

import (
	"fmt"
	"maps"
	"slices"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/history"
	"github.com/runoshun/taskboard/internal/priority"
)

// Manager is the in-memory entity store. It is not safe for concurrent use.
type Manager struct {
	logger   domain.Logger
	tasks    map[int]*domain.Task
	subtasks map[int]*domain.SubTask
	rolled   map[int]domain.SubTask // subtask value as last rolled into its epic
	epics    map[int]*domain.Epic
	priority *priority.Index
	history  *history.Index
	nextID   int
}

// Option configures a Manager.
type Option func(*Manager)

// WithHistoryLimit caps the number of history entries. 0 means unbounded.
func WithHistoryLimit(limit int) Option {
	return func(m *Manager) {
		m.history = history.New(limit)
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l domain.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// New creates an empty store whose first allocated ID is 1.
func New(opts ...Option) *Manager {
	m := &Manager{
		tasks:    make(map[int]*domain.Task),
		subtasks: make(map[int]*domain.SubTask),
		rolled:   make(map[int]domain.SubTask),
		epics:    make(map[int]*domain.Epic),
		priority: priority.New(),
		history:  history.New(0),
		nextID:   1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Ensure Manager implements domain.Store.
var _ domain.Store = (*Manager)(nil)

// LastSaveError returns nil. A Manager keeps everything in memory.
func (m *Manager) LastSaveError() error {
	return nil
}

// NextID allocates a fresh item ID.
func (m *Manager) NextID() int {
	id := m.nextID
	m.nextID++
	return id
}

// PeekNextID returns the ID the next NextID call will return.
func (m *Manager) PeekNextID() int {
	return m.nextID
}

// SetNextID resets the allocator. Values below 1 are raised to 1.
func (m *Manager) SetNextID(id int) {
	m.nextID = max(id, 1)
}

// HistoryLimit returns the configured history capacity.
func (m *Manager) HistoryLimit() int {
	return m.history.Limit()
}

// AddTask stores a new task.
func (m *Manager) AddTask(task *domain.Task) (int, error) {
	if task == nil {
		return 0, domain.ErrNilItem
	}
	task.Normalize()
	if err := m.checkNew(task); err != nil {
		return 0, err
	}
	m.tasks[task.ID] = task
	m.priority.Put(task)
	m.debug(task.ID, "add", "task added")
	return task.ID, nil
}

// AddSubTask stores a new subtask and attaches it to its epic when the epic
// is already stored.
func (m *Manager) AddSubTask(sub *domain.SubTask) (int, error) {
	if sub == nil {
		return 0, domain.ErrNilItem
	}
	sub.Normalize()
	if err := m.checkNew(sub); err != nil {
		return 0, err
	}
	m.subtasks[sub.ID] = sub
	m.priority.Put(sub)
	if epic, ok := m.epics[sub.EpicID]; ok {
		m.attach(epic, sub)
	}
	m.debug(sub.ID, "add", fmt.Sprintf("subtask added to epic %d", sub.EpicID))
	return sub.ID, nil
}

// AddEpic stores a new epic. Stored subtasks naming it are attached.
func (m *Manager) AddEpic(epic *domain.Epic) (int, error) {
	if epic == nil {
		return 0, domain.ErrNilItem
	}
	if err := m.checkNew(epic); err != nil {
		return 0, err
	}
	m.epics[epic.ID] = epic
	m.attachStored(epic)
	m.debug(epic.ID, "add", "epic added")
	return epic.ID, nil
}

// UpdateTask replaces a stored task.
func (m *Manager) UpdateTask(task *domain.Task) (int, error) {
	if task == nil {
		return 0, domain.ErrNilItem
	}
	task.Normalize()
	if _, ok := m.tasks[task.ID]; !ok {
		return 0, fmt.Errorf("task %d: %w", task.ID, domain.ErrNotFound)
	}
	if err := domain.ValidateText(task.Name, task.Description); err != nil {
		return 0, fmt.Errorf("task %d: %w", task.ID, err)
	}
	if err := m.priority.Check(task); err != nil {
		return 0, err
	}
	m.tasks[task.ID] = task
	m.priority.Put(task)
	m.history.Replace(task)
	m.debug(task.ID, "update", "task updated")
	return task.ID, nil
}

// UpdateSubTask replaces a stored subtask. The epic roll-up is adjusted
// incrementally, and only when the epic ID or the time frame changed: the
// previous value is detached and the new one attached.
func (m *Manager) UpdateSubTask(sub *domain.SubTask) (int, error) {
	if sub == nil {
		return 0, domain.ErrNilItem
	}
	sub.Normalize()
	if _, ok := m.subtasks[sub.ID]; !ok {
		return 0, fmt.Errorf("subtask %d: %w", sub.ID, domain.ErrNotFound)
	}
	if err := domain.ValidateText(sub.Name, sub.Description); err != nil {
		return 0, fmt.Errorf("subtask %d: %w", sub.ID, err)
	}
	if err := m.priority.Check(sub); err != nil {
		return 0, err
	}
	owner := m.ownerOf(sub.ID)
	prev, wasRolled := m.rolled[sub.ID]
	m.subtasks[sub.ID] = sub
	m.priority.Put(sub)
	if owner == nil || !wasRolled || owner.ID != sub.EpicID || !sameFrame(&prev, sub) {
		if owner != nil {
			m.detach(owner, sub.ID)
		}
		if epic, ok := m.epics[sub.EpicID]; ok {
			m.attach(epic, sub)
		}
	}
	m.history.Replace(sub)
	m.debug(sub.ID, "update", "subtask updated")
	return sub.ID, nil
}

// UpdateEpic replaces a stored epic. Stored subtasks naming it are attached
// to the new value.
func (m *Manager) UpdateEpic(epic *domain.Epic) (int, error) {
	if epic == nil {
		return 0, domain.ErrNilItem
	}
	if _, ok := m.epics[epic.ID]; !ok {
		return 0, fmt.Errorf("epic %d: %w", epic.ID, domain.ErrNotFound)
	}
	if err := domain.ValidateText(epic.Name, epic.Description); err != nil {
		return 0, fmt.Errorf("epic %d: %w", epic.ID, err)
	}
	m.epics[epic.ID] = epic
	m.attachStored(epic)
	m.history.Replace(epic)
	m.debug(epic.ID, "update", "epic updated")
	return epic.ID, nil
}

// GetTask returns the task and records it in history.
func (m *Manager) GetTask(id int) (*domain.Task, bool) {
	task, ok := m.tasks[id]
	if ok {
		m.history.Add(task)
	}
	return task, ok
}

// GetSubTask returns the subtask and records it in history.
func (m *Manager) GetSubTask(id int) (*domain.SubTask, bool) {
	sub, ok := m.subtasks[id]
	if ok {
		m.history.Add(sub)
	}
	return sub, ok
}

// GetEpic returns the epic and records it in history.
func (m *Manager) GetEpic(id int) (*domain.Epic, bool) {
	epic, ok := m.epics[id]
	if ok {
		m.history.Add(epic)
	}
	return epic, ok
}

// Lookup finds an item of any kind without touching history.
func (m *Manager) Lookup(id int) (domain.Item, bool) {
	if task, ok := m.tasks[id]; ok {
		return task, true
	}
	if sub, ok := m.subtasks[id]; ok {
		return sub, true
	}
	if epic, ok := m.epics[id]; ok {
		return epic, true
	}
	return nil, false
}

// AllTasks returns every task by ascending ID.
func (m *Manager) AllTasks() []*domain.Task {
	return sortedValues(m.tasks)
}

// AllSubTasks returns every subtask by ascending ID.
func (m *Manager) AllSubTasks() []*domain.SubTask {
	return sortedValues(m.subtasks)
}

// AllEpics returns every epic by ascending ID.
func (m *Manager) AllEpics() []*domain.Epic {
	return sortedValues(m.epics)
}

// DeleteAllTasks removes every task.
func (m *Manager) DeleteAllTasks() {
	for id := range m.tasks {
		m.history.Remove(id)
	}
	m.priority.RemoveKind(domain.KindTask)
	clear(m.tasks)
	m.debug(0, "delete", "all tasks deleted")
}

// DeleteAllSubTasks removes every subtask and resets every epic to the
// unscheduled state.
func (m *Manager) DeleteAllSubTasks() {
	for id := range m.subtasks {
		m.history.Remove(id)
	}
	for _, epic := range m.epics {
		epic.Clear()
	}
	m.priority.RemoveKind(domain.KindSubTask)
	clear(m.subtasks)
	clear(m.rolled)
	m.debug(0, "delete", "all subtasks deleted")
}

// DeleteAllEpics removes every epic together with its attached subtasks.
func (m *Manager) DeleteAllEpics() {
	for id, epic := range m.epics {
		for _, subID := range epic.SubTaskIDs() {
			m.dropSubTask(subID)
		}
		m.history.Remove(id)
	}
	clear(m.epics)
	m.debug(0, "delete", "all epics deleted")
}

// DeleteTask removes the task. Returns false if it does not exist.
func (m *Manager) DeleteTask(id int) bool {
	if _, ok := m.tasks[id]; !ok {
		return false
	}
	delete(m.tasks, id)
	m.priority.Remove(id)
	m.history.Remove(id)
	m.debug(id, "delete", "task deleted")
	return true
}

// DeleteSubTask removes the subtask and detaches it from its epic.
func (m *Manager) DeleteSubTask(id int) bool {
	sub, ok := m.subtasks[id]
	if !ok {
		return false
	}
	if epic, ok := m.epics[sub.EpicID]; ok {
		m.detach(epic, id)
	}
	m.dropSubTask(id)
	m.debug(id, "delete", "subtask deleted")
	return true
}

// DeleteEpic removes the epic and its subtasks.
func (m *Manager) DeleteEpic(id int) bool {
	epic, ok := m.epics[id]
	if !ok {
		return false
	}
	for _, subID := range epic.SubTaskIDs() {
		m.dropSubTask(subID)
	}
	epic.Clear()
	delete(m.epics, id)
	m.history.Remove(id)
	m.debug(id, "delete", "epic deleted")
	return true
}

// ClearSubTasks deletes every subtask of the epic and resets its time frame.
func (m *Manager) ClearSubTasks(epicID int) bool {
	epic, ok := m.epics[epicID]
	if !ok {
		return false
	}
	for _, subID := range epic.SubTaskIDs() {
		m.dropSubTask(subID)
	}
	epic.Clear()
	m.debug(epicID, "delete", "subtasks cleared")
	return true
}

// SubTasksOf returns the subtasks of an epic in ascending ID order.
func (m *Manager) SubTasksOf(epicID int) []*domain.SubTask {
	epic, ok := m.epics[epicID]
	if !ok {
		return nil
	}
	ids := epic.SubTaskIDs()
	subs := make([]*domain.SubTask, 0, len(ids))
	for _, id := range ids {
		if sub, ok := m.subtasks[id]; ok {
			subs = append(subs, sub)
		}
	}
	return subs
}

// EpicStatus derives the epic status from its subtasks.
func (m *Manager) EpicStatus(epicID int) (domain.Status, bool) {
	if _, ok := m.epics[epicID]; !ok {
		return domain.StatusNotApplicable, false
	}
	subs := m.SubTasksOf(epicID)
	statuses := make([]domain.Status, len(subs))
	for i, sub := range subs {
		statuses[i] = sub.Status
	}
	return domain.DeriveEpicStatus(statuses), true
}

// StatusOf returns the status of an item of any kind, deriving it for epics.
func (m *Manager) StatusOf(id int) (domain.Status, bool) {
	if task, ok := m.tasks[id]; ok {
		return task.Status, true
	}
	if sub, ok := m.subtasks[id]; ok {
		return sub.Status, true
	}
	return m.EpicStatus(id)
}

// Prioritized returns scheduled tasks and subtasks by ascending start time.
func (m *Manager) Prioritized() []domain.Item {
	return m.priority.Items()
}

// History returns recently viewed items, most recent first.
func (m *Manager) History() []domain.Item {
	return m.history.List()
}

// checkNew validates an item before it is added.
func (m *Manager) checkNew(item domain.Item) error {
	id := item.ItemID()
	if id <= 0 {
		return domain.ErrInvalidID
	}
	if err := domain.ValidateText(item.Title(), item.Summary()); err != nil {
		return fmt.Errorf("item %d: %w", id, err)
	}
	if _, exists := m.Lookup(id); exists {
		return fmt.Errorf("item %d: %w", id, domain.ErrDuplicateID)
	}
	return m.priority.Check(item)
}

// attachStored links every stored subtask that names the epic.
func (m *Manager) attachStored(epic *domain.Epic) {
	for _, id := range slices.Sorted(maps.Keys(m.subtasks)) {
		if sub := m.subtasks[id]; sub.EpicID == epic.ID {
			m.attach(epic, sub)
		}
	}
}

// sameFrame reports whether two subtask values share a time frame.
func sameFrame(a, b *domain.SubTask) bool {
	return a.ScheduledStart().Equal(b.ScheduledStart()) && a.Duration == b.Duration
}

// ownerOf returns the epic currently holding the subtask ID.
func (m *Manager) ownerOf(subID int) *domain.Epic {
	for _, epic := range m.epics {
		if epic.HasSubTask(subID) {
			return epic
		}
	}
	return nil
}

// attach links the subtask to the epic and records the value rolled in.
func (m *Manager) attach(epic *domain.Epic, sub *domain.SubTask) {
	if epic.Attach(sub) {
		m.rolled[sub.ID] = *sub
	}
}

// detach removes the frame recorded for the subtask from the epic roll-up.
// The recorded value is used because the stored one may have been edited in place.
func (m *Manager) detach(epic *domain.Epic, id int) {
	prev, ok := m.rolled[id]
	if !ok {
		return
	}
	epic.Detach(&prev)
	delete(m.rolled, id)
}

// dropSubTask removes the subtask entity without touching its epic.
func (m *Manager) dropSubTask(id int) {
	delete(m.subtasks, id)
	delete(m.rolled, id)
	m.priority.Remove(id)
	m.history.Remove(id)
}

func (m *Manager) debug(id int, category, msg string) {
	if m.logger != nil {
		m.logger.Debug(id, category, msg)
	}
}

func (m *Manager) warn(id int, category, msg string) {
	if m.logger != nil {
		m.logger.Warn(id, category, msg)
	}
}

func sortedValues[T any](items map[int]T) []T {
	out := make([]T, 0, len(items))
	for _, id := range slices.Sorted(maps.Keys(items)) {
		out = append(out, items[id])
	}
	return out
}
