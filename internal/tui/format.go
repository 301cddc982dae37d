package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/engine"
	"github.com/taskdeck/taskdeck/internal/task"
)

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	soonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// priorityStyle maps a priority level onto the color used for the due
// text in the list.
func priorityStyle(p engine.PriorityLevel) lipgloss.Style {
	switch p {
	case engine.PriorityOverdue:
		return overdueStyle
	case engine.PriorityUrgent:
		return urgentStyle
	case engine.PrioritySoon:
		return soonStyle
	default:
		return mutedStyle
	}
}

// formatDue renders the due text for a task, colored by its priority.
// Completed tasks are muted regardless of how close the date is.
func formatDue(t task.Task, now time.Time) string {
	text := engine.DescribeDue(t, now)
	if text == "" {
		return ""
	}
	if t.Status == task.StatusCompleted {
		return mutedStyle.Render(text)
	}
	return priorityStyle(engine.Priority(t, now)).Render(text)
}

// truncate shortens a string to at most width runes, with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// cellTitles returns the lines shown inside a calendar cell: up to two
// task titles plus a "+N more" marker when the day holds more.
func cellTitles(tasks []task.Task, width int) []string {
	const shown = 2
	var lines []string
	for i, t := range tasks {
		if i == shown {
			lines = append(lines, fmt.Sprintf("+%d more", len(tasks)-shown))
			break
		}
		lines = append(lines, truncate(t.Title, width))
	}
	return lines
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}
