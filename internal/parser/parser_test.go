package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/starford/orion/internal/apperr"
	"github.com/starford/orion/internal/models"
)

func TestParse_SplitsWordAndArgs(t *testing.T) {
	cmd, err := Parse("  deadline   return book /by 2019-10-15  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Word != "deadline" {
		t.Errorf("word = %q, want %q", cmd.Word, "deadline")
	}
	if cmd.Args != "return book /by 2019-10-15" {
		t.Errorf("args = %q", cmd.Args)
	}
}

func TestParse_WordOnly(t *testing.T) {
	cmd, err := Parse("list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Word != "list" || cmd.Args != "" {
		t.Errorf("cmd = %+v", cmd)
	}
}

func TestParse_CaseSensitiveWord(t *testing.T) {
	cmd, _ := Parse("LIST")
	if cmd.Word != "LIST" {
		t.Errorf("word = %q, want LIST", cmd.Word)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := Parse(in)
		if !errors.Is(err, apperr.ErrEmptyInput) {
			t.Errorf("Parse(%q) err = %v, want ErrEmptyInput", in, err)
		}
	}
}

func TestParseTask_Todo(t *testing.T) {
	task, err := ParseTask(CmdTodo, "read book")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.String() != "[T][ ] read book" {
		t.Errorf("task = %q", task.String())
	}

	_, err = ParseTask(CmdTodo, "  ")
	if !errors.Is(err, apperr.ErrParse) || !strings.Contains(err.Error(), "needs a description") {
		t.Errorf("err = %v", err)
	}
}

func TestParseTask_Deadline(t *testing.T) {
	task, err := ParseTask(CmdDeadline, "return book /by 2019-10-15 1800")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := task.(*models.Deadline)
	if !ok {
		t.Fatalf("got %T, want *models.Deadline", task)
	}
	if !d.By.Equal(models.Date(2019, time.October, 15)) {
		t.Errorf("by = %v", d.By)
	}
	if d.ByTime == nil || *d.ByTime != (models.Clock{Hour: 18}) {
		t.Errorf("byTime = %v", d.ByTime)
	}
	if d.Description() != "return book" {
		t.Errorf("description = %q", d.Description())
	}
}

func TestParseTask_DeadlineDateTimeForms(t *testing.T) {
	cases := []struct {
		in       string
		wantTime string
	}{
		{"x /by 2019-10-15", "-"},
		{"x /by 2019-10-15 18:30", "18:30"},
		{"x /by 2019-10-15T0745", "07:45"},
		{"x /by 2019-10-15T07:45", "07:45"},
	}
	for _, c := range cases {
		task, err := ParseTask(CmdDeadline, c.in)
		if err != nil {
			t.Errorf("ParseTask(%q): %v", c.in, err)
			continue
		}
		d := task.(*models.Deadline)
		if got := models.FormatStoredClock(d.ByTime); got != c.wantTime {
			t.Errorf("ParseTask(%q) time = %q, want %q", c.in, got, c.wantTime)
		}
	}
}

func TestParseTask_DeadlineErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "Usage: deadline"},
		{"return book", "needs '/by'"},
		{"return book /by", "needs '/by'"},
		{"/by 2019-10-15", "needs '/by'"},
		{"return book /bytomorrow", "needs '/by'"},
		{"return book /by tomorrow", "Invalid date."},
		{"return book /by 2019-99-99", "Invalid date."},
		{"return book /by 2019-10-15 2500", "Invalid time."},
		{"return book /by 2019-10-15 6pm", "Invalid time."},
		{"return book /by 2019-10-15 18:00 extra", "Invalid date/time."},
	}
	for _, c := range cases {
		_, err := ParseTask(CmdDeadline, c.in)
		if !errors.Is(err, apperr.ErrParse) {
			t.Errorf("ParseTask(%q) err = %v, want ErrParse", c.in, err)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("ParseTask(%q) err = %q, want it to contain %q", c.in, err, c.want)
		}
	}
}

func TestParseTask_Event(t *testing.T) {
	task, err := ParseTask(CmdEvent, "project meeting /from 2019-10-16 1400 /to 2019-10-16 16:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := task.(*models.Event)
	if !ok {
		t.Fatalf("got %T, want *models.Event", task)
	}
	if got := e.DataString(); got != "E | 0 | project meeting | 2019-10-16 | 14:00 | 2019-10-16 | 16:00" {
		t.Errorf("data = %q", got)
	}
}

func TestParseTask_EventSeparatorOrder(t *testing.T) {
	// /to before /from belongs to the description.
	task, err := ParseTask(CmdEvent, "go /to school /from 2019-10-16 /to 2019-10-17")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Description() != "go /to school" {
		t.Errorf("description = %q", task.Description())
	}
}

func TestParseTask_EventErrors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "Usage: event"},
		{"meeting /to 2019-10-16", "needs '/from'"},
		{"meeting /from 2019-10-16", "needs '/to'"},
		{"meeting /from 2019-10-16 /to 2019-13-01", "Invalid date."},
		{"meeting /from 2019-10-16 9999 /to 2019-10-17", "Invalid time."},
	}
	for _, c := range cases {
		_, err := ParseTask(CmdEvent, c.in)
		if !errors.Is(err, apperr.ErrParse) {
			t.Errorf("ParseTask(%q) err = %v, want ErrParse", c.in, err)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("ParseTask(%q) err = %q, want it to contain %q", c.in, err, c.want)
		}
	}
}

func TestParseTask_UnknownWord(t *testing.T) {
	_, err := ParseTask("chore", "x")
	if !errors.Is(err, apperr.ErrUnknownCommand) {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestParseTaskIndex(t *testing.T) {
	idx, err := ParseTaskIndex("2", CmdMark, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want 1", idx)
	}
	if idx, _ := ParseTaskIndex("3", CmdMark, 3); idx != 2 {
		t.Errorf("upper bound idx = %d, want 2", idx)
	}
}

func TestParseTaskIndex_Errors(t *testing.T) {
	cases := []struct {
		args  string
		count int
		want  string
	}{
		{"1", 0, "There are no tasks to delete"},
		{"", 3, "Usage: delete <taskNumber>"},
		{"two", 3, "must be an integer"},
		{"1.5", 3, "must be an integer"},
		{"0", 3, "between 1 and 3"},
		{"-1", 3, "between 1 and 3"},
		{"4", 3, "between 1 and 3"},
	}
	for _, c := range cases {
		_, err := ParseTaskIndex(c.args, CmdDelete, c.count)
		if !errors.Is(err, apperr.ErrIndex) {
			t.Errorf("ParseTaskIndex(%q, %d) err = %v, want ErrIndex", c.args, c.count, err)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("ParseTaskIndex(%q, %d) err = %q, want it to contain %q", c.args, c.count, err, c.want)
		}
	}
}

func TestParseFindKeyword(t *testing.T) {
	kw, err := ParseFindKeyword("  book ")
	if err != nil || kw != "book" {
		t.Errorf("keyword = %q, err = %v", kw, err)
	}
	if _, err := ParseFindKeyword(" "); !errors.Is(err, apperr.ErrUsage) {
		t.Errorf("err = %v, want ErrUsage", err)
	}
}

func TestSplitOnSeparator(t *testing.T) {
	before, after, ok := splitOnSeparator("a/by b /by c /by d", sepBy)
	if !ok || before != "a/by b" || after != "c /by d" {
		t.Errorf("got (%q, %q, %v)", before, after, ok)
	}
}

func TestParseTask_RejectsFieldSeparator(t *testing.T) {
	_, err := ParseTask(CmdTodo, "buy milk | eggs")
	if !errors.Is(err, apperr.ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestParseTask_RejectsLineBreaksInDescription(t *testing.T) {
	cases := []struct{ word, args string }{
		{CmdTodo, "buy milk\nand eggs"},
		{CmdDeadline, "pay\r\nrent /by 2019-10-15"},
		{CmdEvent, "fair\nday /from 2019-10-16 /to 2019-10-17"},
	}
	for _, c := range cases {
		_, err := ParseTask(c.word, c.args)
		if !errors.Is(err, apperr.ErrParse) {
			t.Errorf("ParseTask(%q, %q) err = %v, want parse error", c.word, c.args, err)
		}
	}
}
