package models

import (
	"strings"
	"time"
)

// IdentityOptions tunes duplicate detection.
type IdentityOptions struct {
	// IgnoreTimes compares only the dates of deadlines and events.
	IgnoreTimes bool
}

// NormalizeDescription trims s, collapses whitespace runs to a single
// space and lower-cases the result.
func NormalizeDescription(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Equivalent reports whether a and b describe the same task: same kind,
// same normalized description and same date fields. Completion state is
// not part of the identity.
func Equivalent(a, b Task, opts IdentityOptions) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	if NormalizeDescription(a.Description()) != NormalizeDescription(b.Description()) {
		return false
	}

	switch x := a.(type) {
	case *Todo:
		return true
	case *Deadline:
		y, ok := b.(*Deadline)
		return ok && sameMoment(x.By, x.ByTime, y.By, y.ByTime, opts)
	case *Event:
		y, ok := b.(*Event)
		return ok &&
			sameMoment(x.From, x.FromTime, y.From, y.FromTime, opts) &&
			sameMoment(x.To, x.ToTime, y.To, y.ToTime, opts)
	}
	return false
}

func sameMoment(d1 time.Time, c1 *Clock, d2 time.Time, c2 *Clock, opts IdentityOptions) bool {
	if !d1.Equal(d2) {
		return false
	}
	if opts.IgnoreTimes {
		return true
	}
	switch {
	case c1 == nil && c2 == nil:
		return true
	case c1 == nil || c2 == nil:
		return false
	}
	return *c1 == *c2
}
