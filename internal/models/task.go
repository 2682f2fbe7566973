// Package models defines the domain types for Orion.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind is the variant tag of a task. Its value doubles as the type code
// in the data file.
type Kind string

// Task kinds.
const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// Display and storage layouts.
const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "Jan 02 2006"
	NoTimeMarker      = "-"
)

// Task is the capability set shared by every task variant.
type Task interface {
	Kind() Kind
	Description() string
	IsDone() bool
	MarkDone()
	MarkUndone()
	// Matches reports whether the description contains keyword, ignoring case.
	Matches(keyword string) bool
	// String returns the form shown to the user, e.g. "[T][X] read book".
	String() string
	// DataString returns the pipe-delimited record written to the data file.
	DataString() string
}

// FieldSeparator delimits fields in a data-file record. Descriptions may
// not contain it, nor line breaks, which delimit records.
const FieldSeparator = "|"

var descriptionRules = []validation.Rule{
	validation.Required,
	validation.By(func(value interface{}) error {
		if s, _ := value.(string); strings.Contains(s, FieldSeparator) {
			return errors.New("must not contain '" + FieldSeparator + "'")
		}
		return nil
	}),
	validation.By(func(value interface{}) error {
		if s, _ := value.(string); strings.ContainsAny(s, "\r\n") {
			return errors.New("must be a single line")
		}
		return nil
	}),
}

type base struct {
	description string
	done        bool
}

func (b *base) Description() string { return b.description }
func (b *base) IsDone() bool        { return b.done }
func (b *base) MarkDone()           { b.done = true }
func (b *base) MarkUndone()         { b.done = false }

func (b *base) Matches(keyword string) bool {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	return needle != "" && strings.Contains(strings.ToLower(b.description), needle)
}

func (b *base) status() string {
	if b.done {
		return "[X] " + b.description
	}
	return "[ ] " + b.description
}

func (b *base) doneFlag() string {
	if b.done {
		return "1"
	}
	return "0"
}

// Todo is a task with a description only.
type Todo struct {
	base
}

// NewTodo returns a pending todo.
func NewTodo(description string) (*Todo, error) {
	description = strings.TrimSpace(description)
	if err := validation.Validate(description, descriptionRules...); err != nil {
		return nil, fmt.Errorf("description: %w", err)
	}
	return &Todo{base: base{description: description}}, nil
}

func (t *Todo) Kind() Kind             { return KindTodo }
func (t *Todo) String() string         { return "[T]" + t.status() }

func (t *Todo) DataString() string {
	return strings.Join([]string{string(KindTodo), t.doneFlag(), t.description}, " | ")
}

// Deadline is a task that must be done by a date and optional time.
type Deadline struct {
	base
	By     time.Time
	ByTime *Clock
}

// NewDeadline returns a pending deadline. byTime may be nil.
func NewDeadline(description string, by time.Time, byTime *Clock) (*Deadline, error) {
	description = strings.TrimSpace(description)
	err := validation.Errors{
		"description": validation.Validate(description, descriptionRules...),
		"by":          validation.Validate(by, validation.Required),
	}.Filter()
	if err != nil {
		return nil, err
	}
	return &Deadline{base: base{description: description}, By: by, ByTime: byTime}, nil
}

func (d *Deadline) Kind() Kind             { return KindDeadline }

func (d *Deadline) String() string {
	return fmt.Sprintf("[D]%s (by: %s)", d.status(), FormatDisplay(d.By, d.ByTime))
}

func (d *Deadline) DataString() string {
	return strings.Join([]string{
		string(KindDeadline), d.doneFlag(), d.description,
		d.By.Format(DateLayout), FormatStoredClock(d.ByTime),
	}, " | ")
}

// Event is a task spanning a start and an end date, each with an optional time.
type Event struct {
	base
	From     time.Time
	FromTime *Clock
	To       time.Time
	ToTime   *Clock
}

// NewEvent returns a pending event. fromTime and toTime may be nil.
func NewEvent(description string, from time.Time, fromTime *Clock, to time.Time, toTime *Clock) (*Event, error) {
	description = strings.TrimSpace(description)
	err := validation.Errors{
		"description": validation.Validate(description, descriptionRules...),
		"from":        validation.Validate(from, validation.Required),
		"to":          validation.Validate(to, validation.Required),
	}.Filter()
	if err != nil {
		return nil, err
	}
	return &Event{
		base:     base{description: description},
		From:     from,
		FromTime: fromTime,
		To:       to,
		ToTime:   toTime,
	}, nil
}

func (e *Event) Kind() Kind             { return KindEvent }

func (e *Event) String() string {
	return fmt.Sprintf("[E]%s (from: %s to: %s)", e.status(),
		FormatDisplay(e.From, e.FromTime), FormatDisplay(e.To, e.ToTime))
}

func (e *Event) DataString() string {
	return strings.Join([]string{
		string(KindEvent), e.doneFlag(), e.description,
		e.From.Format(DateLayout), FormatStoredClock(e.FromTime),
		e.To.Format(DateLayout), FormatStoredClock(e.ToTime),
	}, " | ")
}
