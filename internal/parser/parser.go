// Package parser turns raw command lines into command words, tasks and
// task indices.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/starford/orion/internal/apperr"
	"github.com/starford/orion/internal/models"
)

// Command words.
const (
	CmdBye      = "bye"
	CmdList     = "list"
	CmdFind     = "find"
	CmdTodo     = "todo"
	CmdDeadline = "deadline"
	CmdEvent    = "event"
	CmdMark     = "mark"
	CmdUnmark   = "unmark"
	CmdDelete   = "delete"
)

const (
	sepBy   = "/by"
	sepFrom = "/from"
	sepTo   = "/to"

	deadlineUsage = "Usage: deadline <description> /by yyyy-MM-dd [HHmm|HH:mm]"
	eventUsage    = "Usage: event <description> /from yyyy-MM-dd [HHmm|HH:mm] /to yyyy-MM-dd [HHmm|HH:mm]"
)

// Command is a raw line split into its command word and argument string.
type Command struct {
	Word string
	Args string
}

// Parse splits input on the first run of whitespace. The command word is
// case-sensitive; Args is the trimmed remainder and may be empty.
func Parse(input string) (Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Command{}, apperr.New(apperr.ErrEmptyInput, "Please enter a command.")
	}
	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return Command{Word: trimmed}, nil
	}
	return Command{
		Word: trimmed[:i],
		Args: strings.TrimSpace(trimmed[i:]),
	}, nil
}

// ParseTask builds a task from a todo, deadline or event command.
func ParseTask(word, args string) (models.Task, error) {
	args = strings.TrimSpace(args)
	switch word {
	case CmdTodo:
		return parseTodo(args)
	case CmdDeadline:
		return parseDeadline(args)
	case CmdEvent:
		return parseEvent(args)
	default:
		return nil, apperr.New(apperr.ErrUnknownCommand, "I don't know what that means.")
	}
}

func parseTodo(args string) (models.Task, error) {
	if args == "" {
		return nil, parseErr("A todo needs a description. Usage: todo <description>")
	}
	t, err := models.NewTodo(args)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrParse, "Invalid todo:", err)
	}
	return t, nil
}

func parseDeadline(args string) (models.Task, error) {
	if args == "" {
		return nil, parseErr("Usage: deadline <description> /by <date>")
	}
	desc, byRaw, ok := splitOnSeparator(args, sepBy)
	if !ok {
		return nil, parseErr("A deadline needs '/by'. " + deadlineUsage)
	}
	if desc == "" {
		return nil, parseErr("Deadline description cannot be empty. " + deadlineUsage)
	}
	if byRaw == "" {
		return nil, parseErr("Deadline date/time cannot be empty. " + deadlineUsage)
	}

	by, byTime, err := parseDateTime(byRaw, deadlineUsage+" (e.g. 2019-10-15 1800)")
	if err != nil {
		return nil, err
	}
	d, err := models.NewDeadline(desc, by, byTime)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrParse, "Invalid deadline:", err)
	}
	return d, nil
}

func parseEvent(args string) (models.Task, error) {
	if args == "" {
		return nil, parseErr("Usage: event <description> /from <start> /to <end>")
	}
	desc, rest, ok := splitOnSeparator(args, sepFrom)
	if !ok {
		return nil, parseErr("An event needs '/from'. " + eventUsage)
	}
	fromRaw, toRaw, ok := splitOnSeparator(rest, sepTo)
	if !ok {
		return nil, parseErr("An event needs '/to'. " + eventUsage)
	}
	if desc == "" {
		return nil, parseErr("Event description cannot be empty. Usage: event <description> /from ... /to ...")
	}
	if fromRaw == "" || toRaw == "" {
		return nil, parseErr("Event date/time cannot be empty. Usage: event <description> /from ... /to ...")
	}

	from, fromTime, err := parseDateTime(fromRaw, eventUsage)
	if err != nil {
		return nil, err
	}
	to, toTime, err := parseDateTime(toRaw, eventUsage)
	if err != nil {
		return nil, err
	}
	e, err := models.NewEvent(desc, from, fromTime, to, toTime)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrParse, "Invalid event:", err)
	}
	return e, nil
}

// splitOnSeparator finds the first occurrence of sep that has whitespace
// on both sides and returns the trimmed text before and after it.
func splitOnSeparator(s, sep string) (before, after string, ok bool) {
	from := 0
	for {
		i := strings.Index(s[from:], sep)
		if i < 0 {
			return "", "", false
		}
		i += from
		end := i + len(sep)
		if i > 0 && isSpaceByte(s[i-1]) && end < len(s) && isSpaceByte(s[end]) {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[end:]), true
		}
		from = i + 1
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

// parseDateTime accepts "yyyy-MM-dd", "yyyy-MM-dd HHmm", "yyyy-MM-dd HH:mm"
// and the same forms with a literal T in place of the space.
func parseDateTime(raw, usage string) (time.Time, *models.Clock, error) {
	tokens := strings.Fields(strings.ReplaceAll(raw, "T", " "))
	switch len(tokens) {
	case 1:
		d, err := parseUserDate(tokens[0], usage)
		return d, nil, err
	case 2:
		d, err := parseUserDate(tokens[0], usage)
		if err != nil {
			return time.Time{}, nil, err
		}
		c, err := parseUserTime(tokens[1], usage)
		if err != nil {
			return time.Time{}, nil, err
		}
		return d, c, nil
	default:
		return time.Time{}, nil, parseErr("Invalid date/time. " + usage)
	}
}

func parseUserDate(token, usage string) (time.Time, error) {
	d, err := models.ParseDate(token)
	if err != nil {
		return time.Time{}, parseErr("Invalid date. " + usage)
	}
	return d, nil
}

func parseUserTime(token, usage string) (*models.Clock, error) {
	parse := models.ParseClock
	if len(token) == 4 && strings.IndexFunc(token, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		parse = models.ParseCompactClock
	}
	c, err := parse(token)
	if err != nil {
		return nil, parseErr("Invalid time. " + usage)
	}
	return c, nil
}

// ParseTaskIndex converts a 1-based task number into a 0-based index.
// keyword names the command in error messages.
func ParseTaskIndex(args, keyword string, count int) (int, error) {
	args = strings.TrimSpace(args)
	if count == 0 {
		return 0, indexErr(fmt.Sprintf("There are no tasks to %s. Add a task first.", keyword))
	}
	if args == "" {
		return 0, indexErr(fmt.Sprintf("Usage: %s <taskNumber>", keyword))
	}
	n, err := strconv.Atoi(args)
	if err != nil {
		return 0, indexErr(fmt.Sprintf("Task number must be an integer. Usage: %s <taskNumber>", keyword))
	}
	if n < 1 || n > count {
		return 0, indexErr(fmt.Sprintf("Task number must be between 1 and %d.", count))
	}
	return n - 1, nil
}

// ParseFindKeyword returns the trimmed search keyword.
func ParseFindKeyword(args string) (string, error) {
	keyword := strings.TrimSpace(args)
	if keyword == "" {
		return "", apperr.New(apperr.ErrUsage, "Usage: find <keyword>")
	}
	return keyword, nil
}

func parseErr(msg string) error { return apperr.New(apperr.ErrParse, msg) }
func indexErr(msg string) error { return apperr.New(apperr.ErrIndex, msg) }
