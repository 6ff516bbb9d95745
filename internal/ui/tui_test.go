package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskmd/internal/todo"
)

// newTestModel builds a model over a fresh list saved under t.TempDir.
func newTestModel(t *testing.T, texts ...string) *model {
	t.Helper()
	list := &todo.List{}
	for _, text := range texts {
		list.Add(text)
	}
	path := filepath.Join(t.TempDir(), "tasks.md")
	return newModel(list, path, &uiConfig{})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press feeds messages through Update and returns the last command.
func press(m *model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// typeText feeds text rune by rune, as a terminal would deliver it.
func typeText(m *model, text string) {
	for _, r := range text {
		press(m, keyRune(r))
	}
}

func TestCursorNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want int
	}{
		{"down", "j", 1},
		{"down twice", "jj", 2},
		{"down clamps at bottom", "jjjjj", 2},
		{"up clamps at top", "k", 0},
		{"down then up", "jk", 0},
		{"bottom", "G", 2},
		{"bottom then top", "Gg", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, "one", "two", "three")
			typeText(m, tt.keys)
			if m.cursor != tt.want {
				t.Errorf("cursor: got %d, want %d", m.cursor, tt.want)
			}
		})
	}
}

func TestArrowKeysNavigate(t *testing.T) {
	m := newTestModel(t, "one", "two", "three")
	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Errorf("cursor: got %d, want 1", m.cursor)
	}
}

func TestToggleSavesToFile(t *testing.T) {
	m := newTestModel(t, "alpha", "beta")
	press(m, keyRune('x'))

	data, err := os.ReadFile(m.path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "- [x] alpha\n- [ ] beta\n"
	if string(data) != want {
		t.Errorf("file: got %q, want %q", string(data), want)
	}
}

func TestSpaceTogglesToo(t *testing.T) {
	m := newTestModel(t, "alpha")
	press(m, tea.KeyMsg{Type: tea.KeySpace})
	task, _ := m.list.At(0)
	if !task.Done() {
		t.Errorf("task not done after space, status %q", task.Status)
	}
}

func TestCycleAdvancesStatus(t *testing.T) {
	m := newTestModel(t, "alpha")
	press(m, keyRune('c'))
	task, _ := m.list.At(0)
	if task.Status != todo.StatusDoing {
		t.Errorf("status: got %q, want %q", task.Status, todo.StatusDoing)
	}
}

func TestAddFlow(t *testing.T) {
	m := newTestModel(t, "one", "two")
	press(m, keyRune('a'))
	if m.mode != modeInsert {
		t.Fatalf("mode after a: got %v, want insert", m.mode)
	}
	typeText(m, "buy milk")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeNormal {
		t.Errorf("mode after enter: got %v, want normal", m.mode)
	}
	if m.list.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", m.list.Len())
	}
	task, _ := m.list.At(2)
	if task.Text != "buy milk" {
		t.Errorf("text: got %q, want %q", task.Text, "buy milk")
	}
	if m.cursor != 2 {
		t.Errorf("cursor: got %d, want 2", m.cursor)
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "- [ ] buy milk\n") {
		t.Errorf("file missing new task: %q", string(data))
	}
}

func TestAddEmptyCancels(t *testing.T) {
	m := newTestModel(t, "one")
	press(m, keyRune('a'))
	typeText(m, "   ")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeNormal {
		t.Errorf("mode: got %v, want normal", m.mode)
	}
	if m.list.Len() != 1 {
		t.Errorf("Len: got %d, want 1", m.list.Len())
	}
	if _, err := os.Stat(m.path); !os.IsNotExist(err) {
		t.Errorf("file should not exist, stat err = %v", err)
	}
}

func TestEditPrefillsAndSaves(t *testing.T) {
	m := newTestModel(t, "alpha", "beta")
	press(m, keyRune('j'), keyRune('e'))

	if m.mode != modeInsert {
		t.Fatalf("mode after e: got %v, want insert", m.mode)
	}
	if got := m.input.Value(); got != "beta" {
		t.Fatalf("prefill: got %q, want %q", got, "beta")
	}
	typeText(m, " v2")
	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	task, _ := m.list.At(1)
	if task.Text != "beta v2" {
		t.Errorf("text: got %q, want %q", task.Text, "beta v2")
	}
	data, err := os.ReadFile(m.path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "beta v2") {
		t.Errorf("file missing edit: %q", string(data))
	}
}

func TestEscCancelsInsert(t *testing.T) {
	m := newTestModel(t, "one")
	press(m, keyRune('a'))
	typeText(m, "zzz")
	press(m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != modeNormal {
		t.Errorf("mode: got %v, want normal", m.mode)
	}
	if m.list.Len() != 1 {
		t.Errorf("Len: got %d, want 1", m.list.Len())
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("input not cleared: %q", got)
	}
}

func TestDeleteChord(t *testing.T) {
	m := newTestModel(t, "one", "two", "three")
	press(m, keyRune('d'))
	if !m.pendingDelete {
		t.Fatal("pendingDelete not armed after first d")
	}
	if m.status != "d again to delete" {
		t.Errorf("status: got %q", m.status)
	}
	press(m, keyRune('d'))
	if m.list.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", m.list.Len())
	}
	task, _ := m.list.At(0)
	if task.Text != "two" {
		t.Errorf("first task: got %q, want %q", task.Text, "two")
	}
}

func TestDeleteChordCancelConsumesKey(t *testing.T) {
	m := newTestModel(t, "one", "two")
	press(m, keyRune('d'), keyRune('j'))

	if m.pendingDelete {
		t.Error("pendingDelete still armed")
	}
	if m.list.Len() != 2 {
		t.Errorf("Len: got %d, want 2", m.list.Len())
	}
	// The cancelling key is consumed, not executed.
	if m.cursor != 0 {
		t.Errorf("cursor: got %d, want 0", m.cursor)
	}
}

func TestQuitDuringDeleteChord(t *testing.T) {
	m := newTestModel(t, "one", "two")
	press(m, keyRune('d'))
	cmd := press(m, keyRune('q'))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q: got %T, want tea.QuitMsg", cmd())
	}
	if m.list.Len() != 2 {
		t.Errorf("Len: got %d, want 2", m.list.Len())
	}
}

func TestDeleteLastTaskClampsCursor(t *testing.T) {
	m := newTestModel(t, "only")
	press(m, keyRune('d'), keyRune('d'))
	if m.list.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", m.list.Len())
	}
	if m.cursor != 0 {
		t.Errorf("cursor: got %d, want 0", m.cursor)
	}
	if !strings.Contains(m.View(), "No tasks yet") {
		t.Error("empty view hint missing")
	}
}

func TestDeleteWithEmptyListDoesNotArm(t *testing.T) {
	m := newTestModel(t)
	press(m, keyRune('d'))
	if m.pendingDelete {
		t.Error("pendingDelete armed on empty list")
	}
}

func TestQuitCommand(t *testing.T) {
	m := newTestModel(t, "one")
	cmd := press(m, keyRune('q'))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q: got %T, want tea.QuitMsg", cmd())
	}
}

func TestQuitTypesInInsertMode(t *testing.T) {
	m := newTestModel(t, "one")
	press(m, keyRune('a'), keyRune('q'))
	if m.mode != modeInsert {
		t.Fatalf("mode: got %v, want insert", m.mode)
	}
	if got := m.input.Value(); got != "q" {
		t.Errorf("input: got %q, want %q", got, "q")
	}
}

func TestCtrlCQuitsInsertMode(t *testing.T) {
	m := newTestModel(t, "one")
	press(m, keyRune('a'))
	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c: got %T, want tea.QuitMsg", cmd())
	}
}

func TestMoveReorders(t *testing.T) {
	m := newTestModel(t, "one", "two", "three")
	press(m, keyRune('J'))

	task, _ := m.list.At(1)
	if task.Text != "one" {
		t.Errorf("task 1: got %q, want %q", task.Text, "one")
	}
	if m.cursor != 1 {
		t.Errorf("cursor should follow task: got %d, want 1", m.cursor)
	}

	press(m, keyRune('K'))
	task, _ = m.list.At(0)
	if task.Text != "one" {
		t.Errorf("task 0: got %q, want %q", task.Text, "one")
	}
	if m.cursor != 0 {
		t.Errorf("cursor: got %d, want 0", m.cursor)
	}
}

func TestMoveAtEdgeDoesNothing(t *testing.T) {
	m := newTestModel(t, "one", "two")
	press(m, keyRune('K'))
	task, _ := m.list.At(0)
	if task.Text != "one" {
		t.Errorf("task 0: got %q, want %q", task.Text, "one")
	}
	// No mutation happened, so nothing was saved.
	if _, err := os.Stat(m.path); !os.IsNotExist(err) {
		t.Errorf("file should not exist, stat err = %v", err)
	}
}

func TestMoveDisabledInGroupedView(t *testing.T) {
	m := newTestModel(t, "one", "two")
	press(m, keyRune('v'), keyRune('J'))
	task, _ := m.list.At(0)
	if task.Text != "one" {
		t.Errorf("task 0: got %q, want %q", task.Text, "one")
	}
}

func TestGroupedNavigationMapsToActualIndex(t *testing.T) {
	m := newTestModel(t, "first", "second", "third")
	m.list.Toggle(1) // "second" is done, so grouped order is first, third, second

	press(m, keyRune('v'), keyRune('j'), keyRune('x'))

	task, _ := m.list.At(2)
	if !task.Done() {
		t.Errorf("third: got %q, want %q", task.Status, todo.StatusDone)
	}
	second, _ := m.list.At(1)
	if !second.Done() {
		t.Errorf("second should stay done, got %q", second.Status)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, "one")
	press(m, keyRune('?'))
	if !m.help.ShowAll {
		t.Error("ShowAll not enabled after ?")
	}
	press(m, keyRune('?'))
	if m.help.ShowAll {
		t.Error("ShowAll not disabled after second ?")
	}
}

func TestStatusClearedByNextKey(t *testing.T) {
	m := newTestModel(t, "one")
	press(m, keyRune('d'), keyRune('k'))
	if m.status != "" {
		t.Errorf("status: got %q, want empty", m.status)
	}
}

func TestSaveFailureSurfacesInStatus(t *testing.T) {
	m := newTestModel(t, "alpha")
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	m.path = filepath.Join(blocker, "tasks.md")

	press(m, keyRune('x'))

	if !strings.HasPrefix(m.status, "save failed:") {
		t.Errorf("status: got %q, want save failed prefix", m.status)
	}
	task, _ := m.list.At(0)
	if !task.Done() {
		t.Error("in-memory toggle lost on save failure")
	}
}

func TestInitReturnsBlink(t *testing.T) {
	m := newTestModel(t)
	if m.Init() == nil {
		t.Error("Init returned nil command")
	}
}

func TestIsTTY(t *testing.T) {
	var sb strings.Builder
	if IsTTY(&sb) {
		t.Error("strings.Builder reported as TTY")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error("regular file reported as TTY")
	}
}
