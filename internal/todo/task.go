// Package todo holds the in-memory task model: a single Task and the
// ordered List of tasks a session works on.
package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the core. Callers branch with errors.Is.
var (
	// ErrInvalidArgument indicates an empty or whitespace-only description.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange indicates a task number outside [1, Len()].
	ErrOutOfRange = errors.New("out of range")
)

var errEmptyDescription = fmt.Errorf("%w: description cannot be empty", ErrInvalidArgument)

// Task is a single to-do entry.
// The description is fixed at creation; completion is the only mutation.
//
// Build tasks with NewTask or List.Add. The zero value has an empty
// description and is not a valid task; List never stores one.
type Task struct {
	description string
	completed   bool
}

// NewTask creates an incomplete task.
// Returns ErrInvalidArgument if description is empty or whitespace-only.
func NewTask(description string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, errEmptyDescription
	}
	return Task{description: description}, nil
}

// Description returns the task text.
func (t Task) Description() string {
	return t.description
}

// IsComplete reports whether the task has been marked complete.
func (t Task) IsComplete() bool {
	return t.completed
}

// MarkComplete marks the task complete. Calling it on a complete task is a no-op.
func (t *Task) MarkComplete() {
	t.completed = true
}

// String renders the task as "[X] description" or "[ ] description".
func (t Task) String() string {
	if t.completed {
		return "[X] " + t.description
	}
	return "[ ] " + t.description
}
