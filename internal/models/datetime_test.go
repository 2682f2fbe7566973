package models

import "testing"

func TestParseDate(t *testing.T) {
	valid := []string{"2019-10-15", "2024-02-29"}
	for _, s := range valid {
		if _, err := ParseDate(s); err != nil {
			t.Errorf("ParseDate(%q): %v", s, err)
		}
	}
	invalid := []string{"2019-99-99", "2019-2-01", "19-10-15", "2023-02-29", "tomorrow", ""}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q): expected error", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("18:05")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if c.Hour != 18 || c.Minute != 5 {
		t.Errorf("clock = %+v", c)
	}
	for _, s := range []string{"7:30", "24:00", "12:60", "1800", "ab:cd", "-", "-1:30", "+1:30", "12:+5", " 1:30"} {
		if _, err := ParseClock(s); err == nil {
			t.Errorf("ParseClock(%q): expected error", s)
		}
	}
}

func TestParseCompactClock(t *testing.T) {
	c, err := ParseCompactClock("0930")
	if err != nil {
		t.Fatalf("ParseCompactClock: %v", err)
	}
	if c.String() != "09:30" {
		t.Errorf("clock = %s, want 09:30", c)
	}
	for _, s := range []string{"2400", "1260", "930", "09:30", "12a4", "-130", "+130", "12-5"} {
		if _, err := ParseCompactClock(s); err == nil {
			t.Errorf("ParseCompactClock(%q): expected error", s)
		}
	}
}

func TestFormatStoredClock(t *testing.T) {
	if got := FormatStoredClock(nil); got != NoTimeMarker {
		t.Errorf("nil clock = %q", got)
	}
	if got := FormatStoredClock(&Clock{Hour: 7}); got != "07:00" {
		t.Errorf("clock = %q", got)
	}
}
