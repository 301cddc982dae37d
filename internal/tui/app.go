// Package tui implements the interactive terminal interface: a task
// list with a detail pane, a monthly calendar, and modal overlays for
// adding, editing and deleting tasks.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/engine"
	"github.com/taskdeck/taskdeck/internal/task"
	"github.com/taskdeck/taskdeck/internal/view"
)

// Form field indices
const (
	FormFieldTitle = iota
	FormFieldDescription
	FormFieldDue
	FormFieldCount // Total number of fields
)

// dueLayouts are the formats accepted in the due date form field.
var dueLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
}

// Model represents the main application state
type Model struct {
	ctrl   *view.Controller
	now    func() time.Time
	width  int
	height int

	selected int

	// Calendar cursor, a day of the focused month
	cursor int

	// Form mode (add/edit)
	formMode   bool
	formField  int
	formInputs []textinput.Model
	editingID  string // empty while adding
	formErr    error

	// Delete confirmation mode
	confirmMode bool
	confirmID   string

	rec ActionRecorder
}

// ActionRecorder counts keyboard-driven actions.
// *instrumentation.Metrics satisfies it.
type ActionRecorder interface {
	RecordUIAction(ctx context.Context, action, status string)
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithActionRecorder reports every finished action to r.
func WithActionRecorder(r ActionRecorder) Option {
	return func(m *Model) {
		m.rec = r
	}
}

// New creates a new application model and performs the initial load.
// A failed load is not fatal: the error stays visible in the footer
// until a refresh succeeds.
func New(ctrl *view.Controller, opts ...Option) *Model {
	inputs := make([]textinput.Model, FormFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 200

		switch i {
		case FormFieldTitle:
			inputs[i].Placeholder = "Title"
		case FormFieldDescription:
			inputs[i].Placeholder = "Description"
		case FormFieldDue:
			inputs[i].Placeholder = "Due (YYYY-MM-DD [HH:MM], blank for none)"
		}
	}

	m := &Model{
		ctrl:       ctrl,
		now:        time.Now,
		formInputs: inputs,
		cursor:     1,
	}
	for _, opt := range opts {
		opt(m)
	}

	_ = ctrl.Refresh(context.Background())
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Delete confirmation mode handling
		if m.confirmMode {
			switch msg.String() {
			case "y", "Y":
				err := m.ctrl.Delete(context.Background(), m.confirmID)
				m.record("task_delete", err)
				if err == nil {
					m.selected = m.ensureValidSelection()
				}
				m.confirmMode = false
				m.confirmID = ""
				return m, nil
			default:
				// Any other key cancels
				m.confirmMode = false
				m.confirmID = ""
				return m, nil
			}
		}

		// Form mode handling
		if m.formMode {
			switch msg.String() {
			case "esc":
				m.closeForm()
				return m, nil

			case "enter":
				if err := m.saveForm(); err != nil {
					// Keep the form open so the input can be fixed
					m.formErr = err
					return m, nil
				}
				m.closeForm()
				m.selected = m.ensureValidSelection()
				return m, nil

			case "tab", "down":
				if m.formField < FormFieldCount-1 {
					m.formInputs[m.formField].Blur()
					m.formField++
					m.formInputs[m.formField].Focus()
				}
				return m, textinput.Blink

			case "shift+tab", "up":
				if m.formField > 0 {
					m.formInputs[m.formField].Blur()
					m.formField--
					m.formInputs[m.formField].Focus()
				}
				return m, textinput.Blink
			}

			// Pass other keys to the active text input
			var cmd tea.Cmd
			m.formInputs[m.formField], cmd = m.formInputs[m.formField].Update(msg)
			return m, cmd
		}

		// Calendar mode handling
		if m.ctrl.Mode() == view.ModeCalendar {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit

			case "esc", "c":
				m.ctrl.SetMode(view.ModeList)
				return m, nil

			case "h", "left":
				if m.cursor > 1 {
					m.cursor--
				}
			case "l", "right":
				if m.cursor < m.ctrl.Month().Days() {
					m.cursor++
				}
			case "j", "down":
				if m.cursor+7 <= m.ctrl.Month().Days() {
					m.cursor += 7
				}
			case "k", "up":
				if m.cursor-7 >= 1 {
					m.cursor -= 7
				}

			case "n":
				m.ctrl.NextMonth()
				m.record("calendar_next_month", nil)
				m.cursor = 1
			case "p":
				m.ctrl.PrevMonth()
				m.record("calendar_prev_month", nil)
				m.cursor = 1
			case "t":
				m.focusToday()

			case "enter":
				month := m.ctrl.Month()
				day := time.Date(month.Year, month.Month, m.cursor, 0, 0, 0, 0, time.Local)
				m.ctrl.SelectDay(day)
				m.record("calendar_open_day", nil)
				m.selected = 0
				return m, nil

			case "r":
				m.record("refresh", m.ctrl.Refresh(context.Background()))
			}
			return m, nil
		}

		// Normal mode handling
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.ctrl.Visible())-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "enter", " ":
			// Toggle the selected task between pending and completed
			tasks := m.ctrl.Visible()
			if len(tasks) > 0 && m.selected < len(tasks) {
				m.record("task_toggle", m.ctrl.Toggle(context.Background(), tasks[m.selected].ID))
				m.selected = m.ensureValidSelection()
			}

		case "a":
			m.openForm(task.Task{})
			return m, textinput.Blink

		case "e":
			tasks := m.ctrl.Visible()
			if len(tasks) > 0 && m.selected < len(tasks) {
				m.openForm(tasks[m.selected])
				return m, textinput.Blink
			}

		case "d":
			tasks := m.ctrl.Visible()
			if len(tasks) > 0 && m.selected < len(tasks) {
				m.confirmMode = true
				m.confirmID = tasks[m.selected].ID
			}
			return m, nil

		case "f":
			m.ctrl.CycleStatus()
			m.selected = m.ensureValidSelection()
			return m, nil

		case "c":
			m.ctrl.SetMode(view.ModeCalendar)
			m.focusToday()
			return m, nil

		case "esc":
			// Clear the day filter and return to the full list
			if m.ctrl.Day() != nil {
				m.ctrl.ClearDay()
				m.selected = m.ensureValidSelection()
			}
			return m, nil

		case "r":
			m.record("refresh", m.ctrl.Refresh(context.Background()))
			m.selected = m.ensureValidSelection()
			return m, nil
		}
	}

	return m, nil
}

// record reports a finished action. A nil recorder drops it.
func (m Model) record(action string, err error) {
	if m.rec == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.rec.RecordUIAction(context.Background(), action, status)
}

// focusToday points the calendar cursor at today when the focused month
// contains it, and at the first day otherwise.
func (m *Model) focusToday() {
	now := m.now()
	if m.ctrl.Month().Contains(now) {
		m.cursor = now.Day()
	} else {
		m.cursor = 1
	}
}

// openForm enters form mode, prefilled from t. A zero task starts a
// blank add form.
func (m *Model) openForm(t task.Task) {
	m.formMode = true
	m.formField = 0
	m.formErr = nil
	m.editingID = t.ID

	m.formInputs[FormFieldTitle].SetValue(t.Title)
	m.formInputs[FormFieldDescription].SetValue(t.Description)
	if t.DueDate != nil {
		m.formInputs[FormFieldDue].SetValue(t.DueDate.Format("2006-01-02 15:04"))
	} else {
		m.formInputs[FormFieldDue].SetValue("")
	}

	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
	m.formInputs[0].Focus()
}

// closeForm leaves form mode and resets the inputs.
func (m *Model) closeForm() {
	m.formMode = false
	m.formField = 0
	m.formErr = nil
	m.editingID = ""
	for i := range m.formInputs {
		m.formInputs[i].Reset()
		m.formInputs[i].Blur()
	}
}

// saveForm persists the form as a create or an update.
func (m *Model) saveForm() error {
	title := m.formInputs[FormFieldTitle].Value()
	description := m.formInputs[FormFieldDescription].Value()

	due, err := parseDueInput(m.formInputs[FormFieldDue].Value())
	if err != nil {
		return err
	}

	ctx := context.Background()
	if m.editingID == "" {
		err := m.ctrl.Create(ctx, task.Input{
			Title:       title,
			Description: description,
			DueDate:     due,
		})
		m.record("task_create", err)
		return err
	}

	ch := task.Changes{
		Title:       &title,
		Description: &description,
	}
	if due != nil {
		ch.DueDate = due
	} else {
		ch.ClearDueDate = true
	}
	err = m.ctrl.Update(ctx, m.editingID, ch)
	m.record("task_update", err)
	return err
}

// parseDueInput parses the due field. Blank means no due date.
func parseDueInput(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dueLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized due date %q", s)
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	tasks := m.ctrl.Visible()
	if len(tasks) == 0 {
		return 0
	}
	if m.selected >= len(tasks) {
		return len(tasks) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var body string
	if m.ctrl.Mode() == view.ModeCalendar {
		body = m.renderCalendar()
	} else {
		// Panes: task list on the left, selected task detail on the right
		listWidth := m.width / 2
		detailWidth := m.width - listWidth - 3

		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			borderStyle.Width(listWidth).Height(m.height-4).Render(m.renderList(listWidth, m.height-4)),
			borderStyle.Width(detailWidth).Height(m.height-4).Render(m.renderDetail(detailWidth)),
		)
	}

	viewStr := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())

	// Overlay the form if active
	if m.formMode {
		return m.renderForm()
	}

	// Overlay the delete confirmation if active
	if m.confirmMode {
		return m.renderConfirm()
	}

	return viewStr
}

// renderHeader renders the stats line. The figures always cover the
// whole list, whatever filters are active.
func (m Model) renderHeader() string {
	stats := m.ctrl.Stats()
	header := fmt.Sprintf(" Tasks: %d total • %d completed • %d pending",
		stats.Total, stats.Completed, stats.Pending)

	var indicators []string
	if m.ctrl.StatusFilter() != engine.FilterAll {
		indicators = append(indicators, "status:"+string(m.ctrl.StatusFilter()))
	}
	if day := m.ctrl.Day(); day != nil {
		indicators = append(indicators, "day:"+day.Format("Jan 2"))
	}
	if len(indicators) > 0 {
		header += " [" + strings.Join(indicators, ", ") + "]"
	}
	if m.ctrl.Busy() {
		header += " " + mutedStyle.Render("(saving…)")
	}
	return header
}

// renderList renders the task list
func (m Model) renderList(width, height int) string {
	var lines []string

	tasks := m.ctrl.Visible()

	// Calculate visible range
	visibleHeight := height - 2 // account for header
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	lines = append(lines, fmt.Sprintf("Tasks (%d)", len(tasks)))
	lines = append(lines, strings.Repeat("─", width-2))

	if len(tasks) == 0 {
		lines = append(lines, mutedStyle.Render("  nothing here — press a to add a task"))
		return strings.Join(lines, "\n")
	}

	now := m.now()
	for i := startIdx; i < len(tasks) && i < startIdx+visibleHeight; i++ {
		t := tasks[i]

		box := "[ ] "
		if t.Status == task.StatusCompleted {
			box = "[x] "
		}

		title := truncate(t.Title, width-20)
		if t.Status == task.StatusCompleted {
			title = doneStyle.Render(title)
		}

		line := box + title
		if i == m.selected {
			line = selectedStyle.Render(box + truncate(t.Title, width-20))
		}
		if due := formatDue(t, now); due != "" {
			line += "  " + due
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders the selected task detail view
func (m Model) renderDetail(width int) string {
	tasks := m.ctrl.Visible()
	if len(tasks) == 0 || m.selected >= len(tasks) {
		return "No task selected"
	}

	t := tasks[m.selected]
	now := m.now()

	var lines []string
	lines = append(lines, t.Title)
	lines = append(lines, strings.Repeat("─", width-2))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Status: %s", t.Status))
	if due := engine.DescribeDue(t, now); due != "" {
		lines = append(lines, "Due: "+formatDue(t, now))
	} else {
		lines = append(lines, "Due: none")
	}
	lines = append(lines, fmt.Sprintf("Priority: %s", engine.Priority(t, now)))
	lines = append(lines, "")

	if t.Description != "" {
		lines = append(lines, "Description:")
		lines = append(lines, wrapText(t.Description, width-4)...)
		lines = append(lines, "")
	}

	lines = append(lines, mutedStyle.Render(fmt.Sprintf("Created: %s", t.CreatedAt.Format("2006-01-02 15:04"))))
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("Updated: %s", t.UpdatedAt.Format("2006-01-02 15:04"))))

	return strings.Join(lines, "\n")
}

// renderCalendar renders the focused month as a Sunday-first grid.
func (m Model) renderCalendar() string {
	cells := m.ctrl.Grid()
	cellWidth := (m.width - 2) / 7
	if cellWidth < 8 {
		cellWidth = 8
	}
	innerWidth := cellWidth - 4

	var lines []string
	lines = append(lines, " "+m.ctrl.Month().String())
	lines = append(lines, "")

	var weekdays []string
	for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		weekdays = append(weekdays, lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Render(name))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, weekdays...))

	now := m.now()
	cellStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(cellWidth - 2).
		Height(3)

	for row := 0; row < len(cells)/7; row++ {
		var rendered []string
		for col := 0; col < 7; col++ {
			cell := cells[row*7+col]
			if cell.Padding() {
				rendered = append(rendered, cellStyle.Render(""))
				continue
			}

			dayNum := fmt.Sprintf("%d", cell.Day)
			if engine.SameDay(cell.Date, now) {
				dayNum = todayStyle.Render(dayNum)
			}
			if cell.Day == m.cursor {
				dayNum = selectedStyle.Render(fmt.Sprintf(" %d ", cell.Day))
			}
			if len(cell.Tasks) > 0 {
				dayNum += " " + mutedStyle.Render(fmt.Sprintf("%d✓ %d○", cell.Completed, cell.Pending()))
			}

			cellLines := append([]string{dayNum}, cellTitles(cell.Tasks, innerWidth)...)
			rendered = append(rendered, cellStyle.Render(strings.Join(cellLines, "\n")))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders the error line, if any, above the help line.
func (m Model) renderFooter() string {
	help := m.renderHelp()
	if err := m.ctrl.Err(); err != nil {
		return errorStyle.Render(" "+err.Error()) + "\n" + help
	}
	return help
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.confirmMode {
		return " y: confirm delete • any other key: cancel"
	}

	if m.formMode {
		return " Tab/↓: next field • Shift+Tab/↑: previous • Enter: save • Esc: cancel"
	}

	if m.ctrl.Mode() == view.ModeCalendar {
		return " h/j/k/l: move • n/p: month • t: today • Enter: open day • Esc: back • q: quit"
	}

	help := " j/k: navigate • Enter: toggle • a: add • e: edit • d: delete • f: filter • c: calendar • r: refresh"
	if m.ctrl.Day() != nil {
		help += " • Esc: clear day"
	}
	help += " • q: quit"
	return help
}

// renderForm renders the add/edit overlay
func (m Model) renderForm() string {
	title := "Add Task"
	if m.editingID != "" {
		title = "Edit Task"
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	fieldLabels := []string{
		"Title:       ",
		"Description: ",
		"Due:         ",
	}

	for i, label := range fieldLabels {
		var fieldView string
		if i == m.formField {
			fieldView = label + m.formInputs[i].View()
		} else {
			value := m.formInputs[i].Value()
			if value == "" {
				value = mutedStyle.Render(m.formInputs[i].Placeholder)
			}
			fieldView = label + value
		}
		lines = append(lines, fieldView)
		lines = append(lines, "")
	}

	if m.formErr != nil {
		lines = append(lines, errorStyle.Render(m.formErr.Error()))
		lines = append(lines, "")
	}

	lines = append(lines, "Tab/↓: next field • Shift+Tab/↑: previous • Enter: save • Esc: cancel")

	content := strings.Join(lines, "\n")
	box := borderStyle.
		Padding(1).
		Width(64).
		Background(lipgloss.Color("235")).
		Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// renderConfirm renders the delete confirmation prompt
func (m Model) renderConfirm() string {
	var title string
	if t, ok := m.ctrl.Task(m.confirmID); ok {
		title = t.Title
	}

	width := 60
	height := 7

	prompt := fmt.Sprintf("Delete task '%s'? (y/n)", truncate(title, 40))

	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(width).
		Height(height).
		Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
