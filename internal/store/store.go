// Package store implements service.Service as an ordered in-memory task list
// persisted to a YAML file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"todo/internal/backend/yamlfile"
	"todo/internal/service"
)

// LoadStatus describes how LoadFrom obtained its tasks.
type LoadStatus int

const (
	// Loaded means the file existed and was decoded.
	Loaded LoadStatus = iota

	// Fresh means the file does not exist yet.
	Fresh

	// Recovered means the file existed but could not be read or decoded;
	// an empty list was substituted.
	Recovered
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Fresh:
		return "fresh"
	case Recovered:
		return "recovered"
	}
	return fmt.Sprintf("LoadStatus(%d)", int(s))
}

// Store holds the task list for the lifetime of the process.
// It is not safe for concurrent use.
type Store struct {
	tasks  []service.Task
	logger *slog.Logger
}

// New creates a store holding tasks in the given order.
func New(logger *slog.Logger, tasks ...service.Task) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		tasks:  append([]service.Task(nil), tasks...),
		logger: logger,
	}
}

// Open loads the task file at path and returns a store holding its tasks.
func Open(path string, logger *slog.Logger) (*Store, LoadStatus) {
	if logger == nil {
		logger = slog.Default()
	}
	tasks, status := LoadFrom(path, logger)
	return New(logger, tasks...), status
}

// LoadFrom reads the task file at path.
// It never fails: a missing file yields Fresh, an unreadable or incompatible
// file is logged and yields Recovered. Both return an empty list.
func LoadFrom(path string, logger *slog.Logger) ([]service.Task, LoadStatus) {
	if logger == nil {
		logger = slog.Default()
	}

	tasks, err := yamlfile.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("task file not found", "path", path)
			return nil, Fresh
		}
		logger.Warn("could not read task file, starting with an empty list", "path", path, "error", err)
		return nil, Recovered
	}

	logger.Debug("loaded tasks", "path", path, "count", len(tasks))
	return tasks, Loaded
}

// List implements service.Service.
func (s *Store) List() []service.Entry {
	entries := make([]service.Entry, len(s.tasks))
	for i, t := range s.tasks {
		entries[i] = service.Entry{Position: i + 1, Task: t}
	}
	return entries
}

// Len implements service.Service.
func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the tasks in list order.
func (s *Store) Tasks() []service.Task {
	return append([]service.Task(nil), s.tasks...)
}

// Add implements service.Service.
func (s *Store) Add(description string) (service.Task, error) {
	t, err := service.NewTask(description)
	if err != nil {
		return service.Task{}, err
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Complete implements service.Service.
func (s *Store) Complete(position int) (service.Task, bool, error) {
	i, err := s.index(position)
	if err != nil {
		return service.Task{}, false, err
	}

	already := s.tasks[i].Done()
	s.tasks[i].MarkDone(true)
	return s.tasks[i], already, nil
}

// Remove implements service.Service.
func (s *Store) Remove(position int) (service.Task, error) {
	i, err := s.index(position)
	if err != nil {
		return service.Task{}, err
	}

	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, nil
}

// SaveTo implements service.Service.
func (s *Store) SaveTo(path string) error {
	if err := yamlfile.WriteFile(path, s.tasks); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", "path", path, "count", len(s.tasks))
	return nil
}

// index converts a 1-based position to a slice index.
func (s *Store) index(position int) (int, error) {
	if position < 1 || position > len(s.tasks) {
		return 0, fmt.Errorf("%w: %d", service.ErrInvalidPosition, position)
	}
	return position - 1, nil
}
