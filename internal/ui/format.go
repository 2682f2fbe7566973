// Package ui renders command outcomes as framed text blocks. It performs
// no I/O.
package ui

import (
	"fmt"
	"strings"

	"github.com/starford/orion/internal/models"
)

// Default framing.
const (
	DefaultName       = "Orion"
	DefaultIndent     = "    "
	DefaultTaskIndent = "      "
	dividerWidth      = 55
)

// Formatter holds the cosmetic constants used to frame responses.
type Formatter struct {
	Name       string
	Indent     string
	TaskIndent string
	Divider    string
}

// DefaultFormatter returns the standard framing.
func DefaultFormatter() Formatter {
	return Formatter{
		Name:       DefaultName,
		Indent:     DefaultIndent,
		TaskIndent: DefaultTaskIndent,
		Divider:    DefaultIndent + strings.Repeat("_", dividerWidth),
	}
}

// Welcome returns the greeting.
func (f Formatter) Welcome() string {
	return f.frame(f.line("Hello! I'm "+f.Name), f.line("What can I do for you?"))
}

// Bye returns the farewell.
func (f Formatter) Bye() string {
	return f.frame(f.line("Bye. Hope to see you again soon!"))
}

// Error returns msg framed as a response.
func (f Formatter) Error(msg string) string {
	return f.frame(f.line(msg))
}

// List renders every task with 1-based numbering.
func (f Formatter) List(tasks []models.Task) string {
	if len(tasks) == 0 {
		return f.frame(f.line("Your task list is empty."))
	}
	return f.frame(append([]string{f.line("Here are the tasks in your list:")}, f.numbered(tasks)...)...)
}

// Found renders find results with 1-based numbering.
func (f Formatter) Found(tasks []models.Task) string {
	if len(tasks) == 0 {
		return f.frame(f.line("No matching tasks found."))
	}
	return f.frame(append([]string{f.line("Here are the matching tasks in your list:")}, f.numbered(tasks)...)...)
}

// Added confirms a new task; count is the list size after adding.
func (f Formatter) Added(task models.Task, count int) string {
	return f.frame(
		f.line("Got it. I've added this task:"),
		f.taskLine(task),
		f.line(countLine(count)),
	)
}

// Marked confirms a mark (done=true) or unmark.
func (f Formatter) Marked(task models.Task, done bool) string {
	head := "OK, I've marked this task as not done yet:"
	if done {
		head = "Nice! I've marked this task as done:"
	}
	return f.frame(f.line(head), f.taskLine(task))
}

// Deleted confirms a removal; count is the list size after removing.
func (f Formatter) Deleted(task models.Task, count int) string {
	return f.frame(
		f.line("Noted. I've removed this task:"),
		f.taskLine(task),
		f.line(countLine(count)),
	)
}

// Duplicate reports that task already exists at 0-based index.
func (f Formatter) Duplicate(task models.Task, index int) string {
	return f.frame(
		f.line("This task is already in your list:"),
		f.taskLine(task),
		f.line(fmt.Sprintf("It is task %d, so I didn't add it again.", index+1)),
	)
}

func (f Formatter) frame(lines ...string) string {
	var b strings.Builder
	b.WriteString(f.Divider)
	b.WriteByte('\n')
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(f.Divider)
	b.WriteByte('\n')
	return b.String()
}

func (f Formatter) line(s string) string { return f.Indent + s }

func (f Formatter) taskLine(task models.Task) string { return f.TaskIndent + task.String() }

func (f Formatter) numbered(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = fmt.Sprintf("%s%d. %s", f.Indent, i+1, t)
	}
	return out
}

func countLine(count int) string {
	noun := "tasks"
	if count == 1 {
		noun = "task"
	}
	return fmt.Sprintf("Now you have %d %s in the list.", count, noun)
}
