// Package service defines the task entity and the store interface.
package service

// Service defines the operations the command loop performs on the task list.
// Commands never touch the persisted file directly.
type Service interface {
	// List returns the tasks in insertion order with their 1-based positions.
	// Returns an empty slice if there are no tasks.
	List() []Entry

	// Len returns the number of tasks.
	Len() int

	// Add creates a task from description and appends it.
	// Returns ErrInvalidDescription if the trimmed description is empty.
	Add(description string) (Task, error)

	// Complete marks the task at position as done.
	// alreadyDone reports whether it was done before the call.
	// Returns ErrInvalidPosition if position is out of range.
	Complete(position int) (task Task, alreadyDone bool, err error)

	// Remove deletes the task at position and returns it.
	// Later tasks shift down by one position.
	// Returns ErrInvalidPosition if position is out of range.
	Remove(position int) (Task, error)

	// SaveTo writes the whole task list to path, replacing its content.
	SaveTo(path string) error
}
