package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskmd/internal/todo"
)

var (
	styleHeader    = lipgloss.NewStyle().Bold(true)
	styleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	styleTodo      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleDoing     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleDone      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleImportant = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleGroup     = lipgloss.NewStyle().Bold(true)
	styleHint      = lipgloss.NewStyle().Faint(true)
	styleStatusBar = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	stylePrompt    = lipgloss.NewStyle().Bold(true)
)

// groupOrder fixes the section sequence of the grouped view.
var groupOrder = []todo.Status{
	todo.StatusTodo,
	todo.StatusDone,
	todo.StatusDoing,
	todo.StatusImportant,
}

var groupLabels = map[todo.Status]string{
	todo.StatusTodo:      "TO DO:",
	todo.StatusDone:      "DONE:",
	todo.StatusDoing:     "IN PROGRESS:",
	todo.StatusImportant: "IMPORTANT:",
}

func taskStyle(s todo.Status) lipgloss.Style {
	switch s {
	case todo.StatusDoing:
		return styleDoing
	case todo.StatusDone:
		return styleDone
	case todo.StatusImportant:
		return styleImportant
	default:
		return styleTodo
	}
}

func bullet(s todo.Status) string {
	switch s {
	case todo.StatusDoing:
		return "~"
	case todo.StatusDone:
		return "✓"
	case todo.StatusImportant:
		return "!"
	default:
		return "-"
	}
}

func (m *model) View() string {
	var b strings.Builder
	m.writeHeader(&b)
	b.WriteString("\n")

	footer := m.footerView()
	m.writeTasks(&b, footer)

	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}

func (m *model) writeHeader(b *strings.Builder) {
	title := "Todo List"
	if m.grouped {
		title = "Todo List (grouped)"
	}
	rendered := styleHeader.Render(title)
	if m.width > 0 {
		rendered = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, rendered)
	}
	b.WriteString(rendered)
	b.WriteString("\n")
}

// writeTasks renders the task area, clipped so the cursor line stays on
// screen when the terminal is too short for the whole list.
func (m *model) writeTasks(b *strings.Builder, footer string) {
	if m.list.Len() == 0 {
		b.WriteString(styleHint.Render("No tasks yet. Press a to add one."))
		b.WriteString("\n")
		return
	}

	lines, cursorLine := m.taskLines()

	// Rows available for tasks: total height minus header, the two
	// separating blanks, and the footer.
	maxRows := len(lines)
	if m.height > 0 {
		maxRows = m.height - 3 - lipgloss.Height(footer)
		if maxRows < 1 {
			maxRows = 1
		}
	}
	start := 0
	if cursorLine >= maxRows {
		start = cursorLine - maxRows + 1
	}
	end := start + maxRows
	if end > len(lines) {
		end = len(lines)
	}

	for _, line := range lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

// taskLines builds every line of the task area for the current view
// mode and reports which line carries the cursor.
func (m *model) taskLines() ([]string, int) {
	var lines []string
	cursorLine := 0

	if !m.grouped {
		for i, t := range m.list.Tasks {
			if i == m.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, m.taskLine(t, i == m.cursor))
		}
		return lines, cursorLine
	}

	pos := 0
	for _, status := range groupOrder {
		group := false
		for _, t := range m.list.Tasks {
			if t.Status != status {
				continue
			}
			if !group {
				if pos > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, styleGroup.Render(groupLabels[status]))
				group = true
			}
			if pos == m.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, m.taskLine(t, pos == m.cursor))
			pos++
		}
	}
	return lines, cursorLine
}

func (m *model) taskLine(t todo.Task, selected bool) string {
	line := fmt.Sprintf(" %s %s", bullet(t.Status), t.Text)
	if selected {
		return styleSelected.Render(line)
	}
	return taskStyle(t.Status).Render(line)
}

// footerView renders the bottom area: the transient status line plus
// either the Insert-mode prompt or the help bar.
func (m *model) footerView() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(styleStatusBar.Render(m.status))
	}
	b.WriteString("\n")

	if m.mode == modeInsert {
		b.WriteString(stylePrompt.Render(m.insertPrompt()))
		b.WriteString(" ")
		b.WriteString(m.input.View())
		return b.String()
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *model) insertPrompt() string {
	if m.purpose == insertEdit {
		return "Edit task:"
	}
	return "Enter new task:"
}
