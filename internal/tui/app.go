// Package tui provides the interactive project view. It renders the task
// list with critical-path and status markers, supports cycling a task's
// status, recomputing the critical path, and recording change-log entries
// through an inline input field.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jalon-sh/jalon/internal/project"
	"github.com/jalon-sh/jalon/internal/task"
	"github.com/jalon-sh/jalon/internal/util"
)

const dateLayout = "2006-01-02"

// mode is the input mode the view is in.
type mode int

const (
	modeNormal mode = iota
	modeChange      // typing a change-log entry
)

// Model is the bubbletea model for the project view.
type Model struct {
	project *project.Project

	cursor int
	mode   mode
	input  textinput.Model
	status string // transient footer message

	width  int
	height int
}

// New creates a project view model.
func New(p *project.Project) Model {
	input := textinput.New()
	input.Placeholder = "describe the change"
	input.CharLimit = 200
	input.Width = 50

	return Model{
		project: p,
		input:   input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeChange {
			return m.updateChangeInput(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.project.Tasks()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case "s":
		if m.cursor < len(tasks) {
			t := tasks[m.cursor]
			next := nextStatus(t.Status)
			if err := m.project.UpdateTaskStatus(t.Name, next); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("%s is now %s", t.Name, next)
			}
		}

	case "p":
		path, err := m.project.ComputeCriticalPath()
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = fmt.Sprintf("critical path: %d days over %d tasks", path.Days, len(path.Tasks))
		}

	case "c":
		m.mode = modeChange
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

func (m Model) updateChangeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		description := strings.TrimSpace(m.input.Value())
		m.mode = modeNormal
		m.input.Blur()
		if description != "" {
			change := m.project.RecordChange(description)
			m.status = fmt.Sprintf("recorded change v%d", change.Version)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (v%d)", m.project.Name(), m.project.Version())))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-28s %-12s %-12s %-14s %-12s %s",
		"TASK", "START", "END", "STATUS", "RESPONSIBLE", "CRITICAL")))
	b.WriteString("\n")

	critical := make(map[string]bool)
	for _, t := range m.project.CriticalPath().Tasks {
		critical[t.Name] = true
	}

	for i, t := range m.project.Tasks() {
		marker := ""
		if critical[t.Name] {
			marker = "*"
		}
		line := fmt.Sprintf("%-28s %-12s %-12s %-14s %-12s %s",
			util.Truncate(t.Name, 28),
			t.Start.Format(dateLayout),
			t.End.Format(dateLayout),
			t.Status,
			util.Truncate(t.Responsible.Name, 12),
			marker,
		)

		switch {
		case i == m.cursor:
			line = selectedStyle.Render(line)
		case t.Status == task.StatusDone:
			line = doneStyle.Render(line)
		case critical[t.Name]:
			line = criticalStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.mode == modeChange {
		b.WriteString("\n")
		b.WriteString("Record change: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: save • esc: cancel"))
		return b.String()
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: move • s: cycle status • p: critical path • c: record change • q: quit"))
	return b.String()
}

// Run starts the interactive view and blocks until the user quits.
func Run(p *project.Project) error {
	program := tea.NewProgram(New(p), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// nextStatus cycles through the common status labels. Custom labels reset to
// not started on the first cycle.
func nextStatus(s task.Status) task.Status {
	switch s {
	case task.StatusNotStarted:
		return task.StatusInProgress
	case task.StatusInProgress:
		return task.StatusDone
	default:
		return task.StatusNotStarted
	}
}
