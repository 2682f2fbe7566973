package storage

import (
	"errors"
	"testing"

	"github.com/starford/orion/internal/apperr"
	"github.com/starford/orion/internal/models"
)

func TestDecode_AllKinds(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"T | 0 | read book", "[T][ ] read book"},
		{"T|1|read book", "[T][X] read book"},
		{"D | 0 | return book | 2019-10-15 | 18:00", "[D][ ] return book (by: Oct 15 2019 18:00)"},
		{"D | 1 | return book | 2019-10-15 | -", "[D][X] return book (by: Oct 15 2019)"},
		{"E | 0 | fair | 2019-10-16 | - | 2019-10-17 | 09:30", "[E][ ] fair (from: Oct 16 2019 to: Oct 17 2019 09:30)"},
	}
	for _, c := range cases {
		task, err := Decode(c.line)
		if err != nil {
			t.Errorf("Decode(%q): %v", c.line, err)
			continue
		}
		if got := task.String(); got != c.want {
			t.Errorf("Decode(%q) = %q, want %q", c.line, got, c.want)
		}
	}
}

func TestDecode_Corrupted(t *testing.T) {
	lines := []string{
		"D | 0 | return book | 2019-99-99 | -",
		"T | 0",
		"T | 0 | ",
		"X | 0 | mystery",
		"T | 2 | read book",
		"T | yes | read book",
		"D | 0 | return book | 2019-10-15",
		"D | 0 | return book | 2019-10-15 | 6pm",
		"D | 0 | return book | 2019-10-15 | 1800",
		"E | 0 | fair | 2019-10-16 | - | 2019-10-17",
		"E | 0 | fair | 2019-10-16 | - | someday | -",
	}
	for _, line := range lines {
		_, err := Decode(line)
		if !errors.Is(err, apperr.ErrCorrupted) {
			t.Errorf("Decode(%q) err = %v, want ErrCorrupted", line, err)
			continue
		}
		var ce *apperr.CorruptedError
		if !errors.As(err, &ce) || ce.Line != line {
			t.Errorf("Decode(%q) did not carry the offending line: %v", line, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	lines := []string{
		"T | 1 | read book",
		"D | 0 | return book | 2019-10-15 | 18:00",
		"E | 1 | project meeting | 2019-10-16 | - | 2019-10-16 | -",
	}
	for _, line := range lines {
		task, err := Decode(line)
		if err != nil {
			t.Fatalf("Decode(%q): %v", line, err)
		}
		if got := Encode(task); got != line {
			t.Errorf("Encode(Decode(%q)) = %q", line, got)
		}
	}
}

func TestDecode_DoneFlagApplied(t *testing.T) {
	task, err := Decode("T | 1 | x")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := task.(*models.Todo); !ok || !task.IsDone() {
		t.Errorf("task = %#v", task)
	}
}
