// Package filestore provides a durable entity store backed by a single file.
package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/csvcodec"
	"github.com/runoshun/taskboard/internal/tracker"
)

// Store is a tracker.Manager that rewrites its backing file after every
// mutating call. A failed write is logged and kept in LastSaveError; the
// in-memory change is not undone.
type Store struct {
	*tracker.Manager
	logger   domain.Logger
	lastErr  error
	path     string
	lockPath string
}

// Ensure Store implements domain.Store.
var _ domain.Store = (*Store)(nil)

// Open loads the store at path. A missing or empty file is reported as
// domain.ErrEmptyFile so the caller may fall back to Create.
func Open(path string, logger domain.Logger, opts ...tracker.Option) (*Store, error) {
	s := newStore(path, logger)

	var m *tracker.Manager
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrEmptyFile, path)
		}
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", domain.ErrFormat, path, err)
		}
		m, err = csvcodec.Load(bytes.NewReader(content), logger, opts...)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Manager = m
	s.info("store", fmt.Sprintf("loaded %s", path))
	return s, nil
}

// Create starts an empty store at path and writes it immediately,
// replacing any existing file.
func Create(path string, logger domain.Logger, opts ...tracker.Option) (*Store, error) {
	s := newStore(path, logger)
	if logger != nil {
		opts = append([]tracker.Option{tracker.WithLogger(logger)}, opts...)
	}
	s.Manager = tracker.New(opts...)
	if err := s.Save(); err != nil {
		return nil, err
	}
	s.info("store", fmt.Sprintf("created %s", path))
	return s, nil
}

// OpenOrCreate opens the store at path, creating it when the file is
// missing or empty. created reports whether a new file was written.
func OpenOrCreate(path string, logger domain.Logger, opts ...tracker.Option) (s *Store, created bool, err error) {
	s, err = Open(path, logger, opts...)
	if errors.Is(err, domain.ErrEmptyFile) {
		s, err = Create(path, logger, opts...)
		return s, err == nil, err
	}
	return s, false, err
}

func newStore(path string, logger domain.Logger) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
		logger:   logger,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LastSaveError returns the error of the most recent write, or nil.
func (s *Store) LastSaveError() error {
	return s.lastErr
}

// Save serializes the whole store and atomically replaces the backing file.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := csvcodec.Encode(&buf, s.Manager); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	return s.withLock(syscall.LOCK_EX, func() error {
		return s.write(buf.Bytes())
	})
}

// AddTask stores a new task and saves.
func (s *Store) AddTask(task *domain.Task) (int, error) {
	id, err := s.Manager.AddTask(task)
	if err == nil {
		s.persist()
	}
	return id, err
}

// AddSubTask stores a new subtask and saves.
func (s *Store) AddSubTask(sub *domain.SubTask) (int, error) {
	id, err := s.Manager.AddSubTask(sub)
	if err == nil {
		s.persist()
	}
	return id, err
}

// AddEpic stores a new epic and saves.
func (s *Store) AddEpic(epic *domain.Epic) (int, error) {
	id, err := s.Manager.AddEpic(epic)
	if err == nil {
		s.persist()
	}
	return id, err
}

// UpdateTask replaces a task and saves.
func (s *Store) UpdateTask(task *domain.Task) (int, error) {
	id, err := s.Manager.UpdateTask(task)
	if err == nil {
		s.persist()
	}
	return id, err
}

// UpdateSubTask replaces a subtask and saves.
func (s *Store) UpdateSubTask(sub *domain.SubTask) (int, error) {
	id, err := s.Manager.UpdateSubTask(sub)
	if err == nil {
		s.persist()
	}
	return id, err
}

// UpdateEpic replaces an epic and saves.
func (s *Store) UpdateEpic(epic *domain.Epic) (int, error) {
	id, err := s.Manager.UpdateEpic(epic)
	if err == nil {
		s.persist()
	}
	return id, err
}

// GetTask returns the task and saves the updated history.
func (s *Store) GetTask(id int) (*domain.Task, bool) {
	task, ok := s.Manager.GetTask(id)
	if ok {
		s.persist()
	}
	return task, ok
}

// GetSubTask returns the subtask and saves the updated history.
func (s *Store) GetSubTask(id int) (*domain.SubTask, bool) {
	sub, ok := s.Manager.GetSubTask(id)
	if ok {
		s.persist()
	}
	return sub, ok
}

// GetEpic returns the epic and saves the updated history.
func (s *Store) GetEpic(id int) (*domain.Epic, bool) {
	epic, ok := s.Manager.GetEpic(id)
	if ok {
		s.persist()
	}
	return epic, ok
}

// DeleteAllTasks removes every task and saves.
func (s *Store) DeleteAllTasks() {
	s.Manager.DeleteAllTasks()
	s.persist()
}

// DeleteAllSubTasks removes every subtask and saves.
func (s *Store) DeleteAllSubTasks() {
	s.Manager.DeleteAllSubTasks()
	s.persist()
}

// DeleteAllEpics removes every epic with its subtasks and saves.
func (s *Store) DeleteAllEpics() {
	s.Manager.DeleteAllEpics()
	s.persist()
}

// DeleteTask removes a task and saves.
func (s *Store) DeleteTask(id int) bool {
	ok := s.Manager.DeleteTask(id)
	if ok {
		s.persist()
	}
	return ok
}

// DeleteSubTask removes a subtask and saves.
func (s *Store) DeleteSubTask(id int) bool {
	ok := s.Manager.DeleteSubTask(id)
	if ok {
		s.persist()
	}
	return ok
}

// DeleteEpic removes an epic with its subtasks and saves.
func (s *Store) DeleteEpic(id int) bool {
	ok := s.Manager.DeleteEpic(id)
	if ok {
		s.persist()
	}
	return ok
}

// ClearSubTasks deletes the subtasks of an epic and saves.
func (s *Store) ClearSubTasks(epicID int) bool {
	ok := s.Manager.ClearSubTasks(epicID)
	if ok {
		s.persist()
	}
	return ok
}

func (s *Store) persist() {
	s.lastErr = s.Save()
	if s.lastErr != nil && s.logger != nil {
		s.logger.Error(0, "store", fmt.Sprintf("save %s: %v", s.path, s.lastErr))
	}
}

func (s *Store) info(category, msg string) {
	if s.logger != nil {
		s.logger.Info(0, category, msg)
	}
}

func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// write replaces the backing file through a temp file and rename.
func (s *Store) write(content []byte) error {
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
