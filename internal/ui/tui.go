// Package ui implements the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskmd/internal/todo"
)

// Option configures the UI.
type Option func(*uiConfig)

// uiConfig holds UI configuration.
type uiConfig struct {
	logger  *log.Logger
	skipped int
}

// WithLogger routes diagnostics to the given logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *uiConfig) {
		c.logger = logger
	}
}

// WithSkippedLines reports how many malformed lines the initial load
// dropped, so the first render can warn about them.
func WithSkippedLines(n int) Option {
	return func(c *uiConfig) {
		c.skipped = n
	}
}

// Run starts the interactive UI over list and blocks until the user
// quits or ctx is cancelled. Every mutation saves list to path; the
// final save on exit is the caller's responsibility so it also runs
// when the program is interrupted.
func Run(ctx context.Context, list *todo.List, path string, opts ...Option) error {
	c := &uiConfig{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(os.Stdout) {
		return fmt.Errorf("interactive ui requires a TTY")
	}

	program := tea.NewProgram(newModel(list, path, c), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// uiMode is the input mode: Normal handles navigation and commands,
// Insert feeds keystrokes to the text input.
type uiMode int

const (
	modeNormal uiMode = iota
	modeInsert
)

// insertPurpose distinguishes what confirming the Insert prompt does.
type insertPurpose int

const (
	insertAdd insertPurpose = iota
	insertEdit
)

type model struct {
	list   *todo.List
	path   string
	logger *log.Logger

	keys  keyMap
	help  help.Model
	input textinput.Model

	mode      uiMode
	purpose   insertPurpose
	editIndex int

	cursor        int // position in the visible sequence
	grouped       bool
	pendingDelete bool

	width  int
	height int
	status string
}

func newModel(list *todo.List, path string, c *uiConfig) *model {
	logger := c.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Prompt = ""
	input.Width = 40

	m := &model{
		list:   list,
		path:   path,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  input,
	}
	if c.skipped > 0 {
		plural := "s"
		if c.skipped == 1 {
			plural = ""
		}
		m.status = fmt.Sprintf("skipped %d malformed line%s", c.skipped, plural)
	}
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if w := msg.Width - 20; w > 20 {
			m.input.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeInsert {
			return m.updateInsert(msg)
		}
		return m.updateNormal(msg)
	}

	// Everything else (cursor blink ticks) belongs to the text input.
	if m.mode == modeInsert {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateNormal dispatches Normal-mode commands. The transient status
// line is cleared by every keystroke before the command runs.
func (m *model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	// Quit always wins, even over a pending delete chord.
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// A pending delete consumes the next key: a second d deletes the
	// selected task, anything else cancels.
	if m.pendingDelete {
		m.pendingDelete = false
		if key.Matches(msg, m.keys.Delete) {
			if i, ok := m.selected(); ok && m.list.Remove(i) {
				m.clampCursor()
				m.persist()
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.visibleIndices()); n > 0 {
			m.cursor = n - 1
		}

	case key.Matches(msg, m.keys.Add):
		m.startInsert(insertAdd, "")
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if i, ok := m.selected(); ok {
			task, _ := m.list.At(i)
			m.editIndex = i
			m.startInsert(insertEdit, task.Text)
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Toggle):
		if i, ok := m.selected(); ok && m.list.Toggle(i) {
			m.persist()
		}

	case key.Matches(msg, m.keys.Cycle):
		if i, ok := m.selected(); ok && m.list.Cycle(i) {
			m.persist()
		}

	case key.Matches(msg, m.keys.MoveUp):
		m.moveTask(-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveTask(1)

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.pendingDelete = true
			m.status = "d again to delete"
		}

	case key.Matches(msg, m.keys.View):
		m.grouped = !m.grouped
		m.clampCursor()
	}

	return m, nil
}

// updateInsert feeds keystrokes to the text input until the entry is
// confirmed or cancelled. Trimmed-empty input cancels instead of
// creating or emptying a task.
func (m *model) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		text := strings.TrimSpace(m.input.Value())
		purpose := m.purpose
		m.closeInsert()
		if text == "" {
			return m, nil
		}
		if purpose == insertEdit {
			if m.list.Edit(m.editIndex, text) {
				m.persist()
			}
			return m, nil
		}
		idx := m.list.Add(text)
		m.cursor = m.visiblePositionOf(idx)
		m.persist()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.closeInsert()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) startInsert(purpose insertPurpose, text string) {
	m.mode = modeInsert
	m.purpose = purpose
	m.pendingDelete = false
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *model) closeInsert() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}

// visibleIndices returns list indices in display order for the current
// view mode. In the grouped view the cursor walks this sequence, so
// every command maps back to the underlying list through it.
func (m *model) visibleIndices() []int {
	if !m.grouped {
		indices := make([]int, m.list.Len())
		for i := range indices {
			indices[i] = i
		}
		return indices
	}
	var ordered []int
	for _, status := range groupOrder {
		for i, t := range m.list.Tasks {
			if t.Status == status {
				ordered = append(ordered, i)
			}
		}
	}
	return ordered
}

// selected resolves the cursor to an index into the underlying list.
func (m *model) selected() (int, bool) {
	visible := m.visibleIndices()
	if len(visible) == 0 {
		return 0, false
	}
	m.clampCursor()
	return visible[m.cursor], true
}

func (m *model) visiblePositionOf(actual int) int {
	visible := m.visibleIndices()
	for pos, idx := range visible {
		if idx == actual {
			return pos
		}
	}
	if len(visible) == 0 {
		return 0
	}
	return len(visible) - 1
}

func (m *model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *model) clampCursor() {
	n := len(m.visibleIndices())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// moveTask swaps the selected task with its neighbor. Reordering is
// meaningless while the list is shown grouped by status, so it is a
// no-op there, like out-of-range moves.
func (m *model) moveTask(direction int) {
	if m.grouped {
		return
	}
	if i, ok := m.selected(); ok {
		if j := m.list.Move(i, direction); j != i {
			m.cursor = j
			m.persist()
		}
	}
}

// persist saves after a mutation. A failure keeps the in-memory state,
// surfaces on the status line, and goes to the log.
func (m *model) persist() {
	if err := m.list.Save(m.path); err != nil {
		m.logger.Error("save failed", "path", m.path, "err", err)
		m.status = "save failed: " + err.Error()
	}
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
