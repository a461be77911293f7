package domain

import "time"

// TaskManager is the entity store for tasks, subtasks and epics.
//
// Add and update return the item ID on success. A rejected call returns 0 and
// an error matching ErrRejected. The Get* accessors record the item in the
// view history; Lookup and the listing methods never do.
type TaskManager interface {
	// NextID allocates a fresh item ID.
	NextID() int

	AddTask(task *Task) (int, error)
	AddSubTask(sub *SubTask) (int, error)
	AddEpic(epic *Epic) (int, error)

	UpdateTask(task *Task) (int, error)
	UpdateSubTask(sub *SubTask) (int, error)
	UpdateEpic(epic *Epic) (int, error)

	GetTask(id int) (*Task, bool)
	GetSubTask(id int) (*SubTask, bool)
	GetEpic(id int) (*Epic, bool)

	// Lookup finds an item of any kind without recording history.
	Lookup(id int) (Item, bool)

	AllTasks() []*Task
	AllSubTasks() []*SubTask
	AllEpics() []*Epic

	DeleteAllTasks()
	DeleteAllSubTasks()
	DeleteAllEpics()

	DeleteTask(id int) bool
	DeleteSubTask(id int) bool
	DeleteEpic(id int) bool

	// ClearSubTasks deletes every subtask of the epic and resets its time frame.
	ClearSubTasks(epicID int) bool

	// SubTasksOf returns the subtasks of an epic in ascending ID order.
	SubTasksOf(epicID int) []*SubTask

	EpicStatus(epicID int) (Status, bool)

	// Prioritized returns scheduled tasks and subtasks ordered by start time.
	Prioritized() []Item

	// History returns recently viewed items, most recent first.
	History() []Item
}

// Logger records diagnostics. itemID 0 means the entry is not tied to an item.
type Logger interface {
	Debug(itemID int, category, msg string)
	Info(itemID int, category, msg string)
	Warn(itemID int, category, msg string)
	Error(itemID int, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Store is a TaskManager whose mutations are persisted.
type Store interface {
	TaskManager

	// LastSaveError returns the error of the most recent write, or nil.
	LastSaveError() error
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and initializes configuration files.
type ConfigManager interface {
	GetProjectConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitProjectConfig() error
	InitGlobalConfig() error
}

// StoreInitializer creates the backing store file.
type StoreInitializer interface {
	// IsInitialized reports whether the store file exists.
	IsInitialized() bool

	// Initialize creates an empty store file if none exists.
	// Returns true if a file was created.
	Initialize() (bool, error)
}
