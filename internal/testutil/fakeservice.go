// Package testutil provides testing utilities.
package testutil

import (
	"io"
	"log/slog"

	"todo/internal/service"
	"todo/internal/store"
)

// FakeService is a store.Store that records saves instead of writing files.
type FakeService struct {
	*store.Store

	// SaveErr is returned by SaveTo when set.
	SaveErr error

	// SavedPaths lists every path passed to SaveTo.
	SavedPaths []string

	// Saved holds the task list as of the last successful SaveTo.
	Saved []service.Task
}

// NewFakeService creates a FakeService holding tasks with the given descriptions.
// It panics on an empty description.
func NewFakeService(descriptions ...string) *FakeService {
	s := store.New(DiscardLogger())
	for _, d := range descriptions {
		if _, err := s.Add(d); err != nil {
			panic(err)
		}
	}
	return &FakeService{Store: s}
}

// SaveTo implements service.Service.
func (f *FakeService) SaveTo(path string) error {
	f.SavedPaths = append(f.SavedPaths, path)
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saved = f.Tasks()
	return nil
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
