package storage

import (
	"strings"
	"time"

	"github.com/starford/orion/internal/apperr"
	"github.com/starford/orion/internal/models"
)

// Minimum field counts per record type.
const (
	todoFields     = 3
	deadlineFields = 5
	eventFields    = 7
)

// Encode returns the data-file line for task.
func Encode(task models.Task) string {
	return task.DataString()
}

// Decode parses one data-file line. Whitespace around each '|' is ignored.
// Any malformed line yields an *apperr.CorruptedError.
func Decode(line string) (models.Task, error) {
	parts := strings.Split(line, models.FieldSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < todoFields {
		return nil, corrupted(line, "too few fields")
	}

	done, err := decodeDoneFlag(parts[1], line)
	if err != nil {
		return nil, err
	}

	var task models.Task
	switch models.Kind(parts[0]) {
	case models.KindTodo:
		task, err = decodeTodo(parts, line)
	case models.KindDeadline:
		task, err = decodeDeadline(parts, line)
	case models.KindEvent:
		task, err = decodeEvent(parts, line)
	default:
		return nil, corrupted(line, "unknown task type")
	}
	if err != nil {
		return nil, err
	}

	if done {
		task.MarkDone()
	}
	return task, nil
}

func decodeTodo(parts []string, line string) (models.Task, error) {
	t, err := models.NewTodo(parts[2])
	if err != nil {
		return nil, corrupted(line, "empty description")
	}
	return t, nil
}

func decodeDeadline(parts []string, line string) (models.Task, error) {
	if len(parts) < deadlineFields {
		return nil, corrupted(line, "too few fields")
	}
	by, err := decodeDate(parts[3], line)
	if err != nil {
		return nil, err
	}
	byTime, err := decodeClock(parts[4], line)
	if err != nil {
		return nil, err
	}
	d, err := models.NewDeadline(parts[2], by, byTime)
	if err != nil {
		return nil, corrupted(line, "empty description")
	}
	return d, nil
}

func decodeEvent(parts []string, line string) (models.Task, error) {
	if len(parts) < eventFields {
		return nil, corrupted(line, "too few fields")
	}
	from, err := decodeDate(parts[3], line)
	if err != nil {
		return nil, err
	}
	fromTime, err := decodeClock(parts[4], line)
	if err != nil {
		return nil, err
	}
	to, err := decodeDate(parts[5], line)
	if err != nil {
		return nil, err
	}
	toTime, err := decodeClock(parts[6], line)
	if err != nil {
		return nil, err
	}
	e, err := models.NewEvent(parts[2], from, fromTime, to, toTime)
	if err != nil {
		return nil, corrupted(line, "empty description")
	}
	return e, nil
}

func decodeDoneFlag(raw, line string) (bool, error) {
	switch raw {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, corrupted(line, "invalid done flag")
	}
}

func decodeDate(raw, line string) (time.Time, error) {
	d, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, corrupted(line, "invalid date")
	}
	return d, nil
}

func decodeClock(raw, line string) (*models.Clock, error) {
	if raw == models.NoTimeMarker {
		return nil, nil
	}
	c, err := models.ParseClock(raw)
	if err != nil {
		return nil, corrupted(line, "invalid time")
	}
	return c, nil
}

func corrupted(line, reason string) error {
	return &apperr.CorruptedError{Line: line, Reason: reason}
}
