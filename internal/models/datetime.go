package models

import (
	"fmt"
	"strconv"
	"time"
)

// Clock is a naive time of day with minute precision. A nil *Clock means
// the time was not given.
type Clock struct {
	Hour   int
	Minute int
}

// NewClock returns a validated time of day.
func NewClock(hour, minute int) (*Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("time out of range: %02d:%02d", hour, minute)
	}
	return &Clock{Hour: hour, Minute: minute}, nil
}

// String formats the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Date returns the calendar day y-m-d as a naive date value.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// ParseClock parses a strict HH:MM time of day.
func ParseClock(s string) (*Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return nil, fmt.Errorf("invalid time %q", s)
	}
	return clockFromDigits(s, s[:2], s[3:])
}

// ParseCompactClock parses a strict HHMM time of day.
func ParseCompactClock(s string) (*Clock, error) {
	if len(s) != 4 {
		return nil, fmt.Errorf("invalid time %q", s)
	}
	return clockFromDigits(s, s[:2], s[2:])
}

// FormatDisplay renders a date and optional time for the user, e.g.
// "Oct 15 2019 18:00".
func FormatDisplay(date time.Time, clock *Clock) string {
	s := date.Format(DisplayDateLayout)
	if clock != nil {
		s += " " + clock.String()
	}
	return s
}

// FormatStoredClock renders an optional time for the data file.
func FormatStoredClock(clock *Clock) string {
	if clock == nil {
		return NoTimeMarker
	}
	return clock.String()
}

// clockFromDigits builds a clock from two-digit hour and minute fields.
// Signs are rejected so "+1:30" or "-130" never parse.
func clockFromDigits(raw, hh, mm string) (*Clock, error) {
	if hh[0] == '+' || hh[0] == '-' || mm[0] == '+' || mm[0] == '-' {
		return nil, fmt.Errorf("invalid time %q", raw)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", raw, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", raw, err)
	}
	return NewClock(hour, minute)
}
