package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/task"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "exact", 5, "exact"},
		{"truncated", "a longer title", 8, "a longe…"},
		{"width one", "ab", 1, "…"},
		{"zero width", "ab", 0, ""},
		{"multibyte", "héllo wörld", 6, "héllo…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestCellTitles(t *testing.T) {
	tasks := []task.Task{
		{Title: "first"},
		{Title: "second"},
		{Title: "third"},
		{Title: "fourth"},
	}

	lines := cellTitles(tasks, 20)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "first" || lines[1] != "second" {
		t.Errorf("unexpected titles: %v", lines)
	}
	if lines[2] != "+2 more" {
		t.Errorf("expected +2 more marker, got %q", lines[2])
	}
}

func TestCellTitlesShortDay(t *testing.T) {
	lines := cellTitles([]task.Task{{Title: "only"}, {Title: "two"}}, 20)
	if len(lines) != 2 {
		t.Fatalf("expected both titles with no marker, got %v", lines)
	}
}

func TestCellTitlesEmpty(t *testing.T) {
	if lines := cellTitles(nil, 20); len(lines) != 0 {
		t.Errorf("expected no lines for an empty day, got %v", lines)
	}
}

func TestFormatDue(t *testing.T) {
	now := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.Local)

	if got := formatDue(task.Task{}, now); got != "" {
		t.Errorf("expected empty due text for a task without a due date, got %q", got)
	}

	due := now.Add(5 * time.Hour)
	got := formatDue(task.Task{Status: task.StatusPending, DueDate: &due}, now)
	if !strings.Contains(got, "Due tomorrow") {
		t.Errorf("expected due text in output, got %q", got)
	}

	got = formatDue(task.Task{Status: task.StatusPending, DueDateRaw: "not a date"}, now)
	if !strings.Contains(got, "Invalid date") {
		t.Errorf("expected invalid date text, got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	for _, line := range lines {
		if len(line) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(strings.Fields(strings.Join(lines, " ")), " ") != "one two three four five" {
		t.Errorf("wrapping lost words: %v", lines)
	}
}
