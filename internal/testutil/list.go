package testutil

import (
	"testing"

	"todolist/internal/todo"
)

// NewList returns a list holding one incomplete task per description.
func NewList(t *testing.T, descriptions ...string) *todo.List {
	t.Helper()
	list := todo.NewList()
	for _, d := range descriptions {
		if _, err := list.Add(d); err != nil {
			t.Fatalf("seed task %q: %v", d, err)
		}
	}
	return list
}

// Complete marks the tasks at the given 1-based numbers complete.
func Complete(t *testing.T, list *todo.List, nums ...int) {
	t.Helper()
	for _, n := range nums {
		if _, err := list.MarkCompleteAt(n); err != nil {
			t.Fatalf("complete task %d: %v", n, err)
		}
	}
}

// Rendered returns each task's String() in display order.
func Rendered(list *todo.List) []string {
	var out []string
	for _, task := range list.All() {
		out = append(out, task.String())
	}
	return out
}
