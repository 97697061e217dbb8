package todo

import (
	"fmt"
	"iter"
	"strings"
)

// MarkOutcome tells a caller whether MarkCompleteAt changed anything.
type MarkOutcome int

const (
	// NewlyCompleted means the task transitioned from incomplete to complete.
	NewlyCompleted MarkOutcome = iota + 1

	// AlreadyComplete means the task was complete before the call; nothing changed.
	AlreadyComplete
)

func (o MarkOutcome) String() string {
	switch o {
	case NewlyCompleted:
		return "newly completed"
	case AlreadyComplete:
		return "already complete"
	default:
		return fmt.Sprintf("MarkOutcome(%d)", int(o))
	}
}

// MarkResult is returned by MarkCompleteAt.
type MarkResult struct {
	Outcome     MarkOutcome
	Description string
}

// List is the ordered collection of tasks for one session.
// Insertion order is display order. Task numbers are 1-based and are
// recomputed from the current contents on every call.
//
// List is not safe for concurrent use.
type List struct {
	tasks []Task
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Add trims description and appends a new incomplete task.
// Returns ErrInvalidArgument and leaves the list unchanged if the trimmed
// description is empty.
func (l *List) Add(description string) (Task, error) {
	task, err := NewTask(strings.TrimSpace(description))
	if err != nil {
		return Task{}, err
	}
	l.tasks = append(l.tasks, task)
	return task, nil
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// IsEmpty reports whether the list has no tasks.
func (l *List) IsEmpty() bool {
	return len(l.tasks) == 0
}

// All yields every task with its 1-based number, in display order.
// The sequence can be ranged over any number of times; each pass reflects
// the list as it is when iteration starts. Yielded tasks are copies.
func (l *List) All() iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range l.tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// RemoveAt removes and returns the task at 1-based position n.
// Later tasks shift down by one. Returns ErrOutOfRange and leaves the list
// unchanged if n is not in [1, Len()].
func (l *List) RemoveAt(n int) (Task, error) {
	i, err := l.index(n)
	if err != nil {
		return Task{}, err
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// MarkCompleteAt marks the task at 1-based position n complete.
// A task that is already complete is reported as AlreadyComplete and left as is.
// Returns ErrOutOfRange if n is not in [1, Len()].
func (l *List) MarkCompleteAt(n int) (MarkResult, error) {
	i, err := l.index(n)
	if err != nil {
		return MarkResult{}, err
	}
	task := &l.tasks[i]
	if task.IsComplete() {
		return MarkResult{Outcome: AlreadyComplete, Description: task.Description()}, nil
	}
	task.MarkComplete()
	return MarkResult{Outcome: NewlyCompleted, Description: task.Description()}, nil
}

// index converts a 1-based task number to a slice index, checking against
// the current length.
func (l *List) index(n int) (int, error) {
	if n < 1 || n > len(l.tasks) {
		return 0, fmt.Errorf("%w: task number %d (list has %d tasks)", ErrOutOfRange, n, len(l.tasks))
	}
	return n - 1, nil
}
