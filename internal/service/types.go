// Package service defines the task entity and the store interface.
package service

import (
	"errors"
	"strings"
)

// ErrInvalidDescription is returned when a task description is empty after trimming.
var ErrInvalidDescription = errors.New("task description cannot be empty")

// ErrInvalidPosition is returned when a 1-based position is outside the list.
var ErrInvalidPosition = errors.New("invalid task number")

// Task represents a single task item.
// The description is never empty; use NewTask to construct one.
type Task struct {
	description string
	done        bool
}

// NewTask creates an open task with the trimmed description.
func NewTask(description string) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrInvalidDescription
	}
	return Task{description: description}, nil
}

// Description returns the trimmed task description.
func (t Task) Description() string { return t.description }

// Done reports whether the task is completed.
func (t Task) Done() bool { return t.done }

// MarkDone sets the completion flag.
func (t *Task) MarkDone(done bool) {
	t.done = done
}

// Render formats the task as "[X] <description>" or "[ ] <description>".
func (t Task) Render() string {
	if t.done {
		return "[X] " + t.description
	}
	return "[ ] " + t.description
}

// String implements fmt.Stringer.
func (t Task) String() string { return t.Render() }

// Entry pairs a task with its current 1-based position.
// Positions are derived from list order and shift after removals.
type Entry struct {
	Position int
	Task     Task
}
