// Package tasklist holds the ordered, in-memory list of tasks.
package tasklist

import (
	"fmt"

	"github.com/starford/orion/internal/models"
)

// NotFound is returned by IndexOfDuplicate when no task matches.
const NotFound = -1

// List is an ordered sequence of tasks. Insertion order is display order
// and persisted order. It is not safe for concurrent use.
//
// Index arguments are 0-based and must already be validated by the caller;
// an out-of-range index panics.
type List struct {
	tasks    []models.Task
	identity models.IdentityOptions
}

// New returns a list holding tasks in the given order.
func New(tasks ...models.Task) *List {
	l := &List{tasks: make([]models.Task, 0, len(tasks))}
	for _, t := range tasks {
		l.Add(t)
	}
	return l
}

// WithIdentity sets the options used by IndexOfDuplicate and returns l.
func (l *List) WithIdentity(opts models.IdentityOptions) *List {
	l.identity = opts
	return l
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// Get returns the task at index.
func (l *List) Get(index int) models.Task {
	l.mustInRange(index, "Get")
	return l.tasks[index]
}

// Add appends task to the list.
func (l *List) Add(task models.Task) {
	if task == nil {
		panic("tasklist: Add: nil task")
	}
	l.tasks = append(l.tasks, task)
}

// Remove deletes and returns the task at index.
func (l *List) Remove(index int) models.Task {
	l.mustInRange(index, "Remove")
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed
}

// MarkDone marks the task at index as done and returns it.
func (l *List) MarkDone(index int) models.Task {
	t := l.Get(index)
	t.MarkDone()
	return t
}

// MarkUndone marks the task at index as not done and returns it.
func (l *List) MarkUndone(index int) models.Task {
	t := l.Get(index)
	t.MarkUndone()
	return t
}

// IndexOfDuplicate returns the index of the first task that is a duplicate
// of candidate, or NotFound.
func (l *List) IndexOfDuplicate(candidate models.Task) int {
	for i, t := range l.tasks {
		if models.Equivalent(t, candidate, l.identity) {
			return i
		}
	}
	return NotFound
}

// Find returns the tasks whose description contains keyword, ignoring case,
// in list order. An empty keyword matches nothing.
func (l *List) Find(keyword string) []models.Task {
	var out []models.Task
	for _, t := range l.tasks {
		if t.Matches(keyword) {
			out = append(out, t)
		}
	}
	return out
}

// All returns a copy of the task slice.
func (l *List) All() []models.Task {
	out := make([]models.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) mustInRange(index int, op string) {
	if index < 0 || index >= len(l.tasks) {
		panic(fmt.Sprintf("tasklist: %s: index out of range: %d (size=%d)", op, index, len(l.tasks)))
	}
}
