// Package todo holds the ordered task list and its markdown file format.
package todo

import "strings"

// Status represents a task status.
type Status string

const (
	StatusTodo      Status = "todo"
	StatusDoing     Status = "doing"
	StatusDone      Status = "done"
	StatusImportant Status = "important"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone, StatusImportant:
		return true
	}
	return false
}

// Next returns the status that follows s in the cycle
// todo -> doing -> done -> important -> todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusDoing
	case StatusDoing:
		return StatusDone
	case StatusDone:
		return StatusImportant
	default:
		return StatusTodo
	}
}

// marker returns the checkbox character written between the brackets.
func (s Status) marker() byte {
	switch s {
	case StatusDoing:
		return '~'
	case StatusDone:
		return 'x'
	case StatusImportant:
		return '!'
	default:
		return ' '
	}
}

// statusForMarker maps a checkbox character back to its status.
// 'X' is accepted as an alias for 'x'.
func statusForMarker(c byte) (Status, bool) {
	switch c {
	case ' ':
		return StatusTodo, true
	case '~':
		return StatusDoing, true
	case 'x', 'X':
		return StatusDone, true
	case '!':
		return StatusImportant, true
	}
	return "", false
}

// Task represents a single task in the todo list.
type Task struct {
	Text   string
	Status Status
}

// Done reports whether the task is complete.
func (t Task) Done() bool {
	return t.Status == StatusDone
}

// Toggle flips the task between done and not done. A done task becomes
// todo; a task in any other status becomes done, so toggling twice
// always restores the original completion state.
func (t *Task) Toggle() {
	if t.Status == StatusDone {
		t.Status = StatusTodo
	} else {
		t.Status = StatusDone
	}
}

// Markdown renders the task as a markdown checklist line,
// e.g. "- [x] call plumber".
func (t Task) Markdown() string {
	return "- [" + string(t.Status.marker()) + "] " + t.Text
}

// ParseLine parses a markdown checklist line into a Task. The leading
// "-" bullet is optional and surrounding whitespace is ignored. Lines
// that are not checklist entries return false.
func ParseLine(line string) (Task, bool) {
	s := strings.TrimSpace(line)
	if strings.HasPrefix(s, "-") {
		s = strings.TrimSpace(s[1:])
	}
	if len(s) < 3 || s[0] != '[' || s[2] != ']' {
		return Task{}, false
	}
	status, ok := statusForMarker(s[1])
	if !ok {
		return Task{}, false
	}
	return Task{Text: strings.TrimSpace(s[3:]), Status: status}, true
}

// List is an ordered collection of tasks. Insertion order is display
// order; tasks are addressed by position. The zero value is an empty
// list ready to use.
type List struct {
	Tasks []Task
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.Tasks)
}

// At returns the task at index i, or false if i is out of range.
func (l *List) At(i int) (Task, bool) {
	if i < 0 || i >= len(l.Tasks) {
		return Task{}, false
	}
	return l.Tasks[i], true
}

// Add appends a new task with StatusTodo and returns its index.
func (l *List) Add(text string) int {
	l.Tasks = append(l.Tasks, Task{Text: text, Status: StatusTodo})
	return len(l.Tasks) - 1
}

// Toggle flips completion of the task at index i. Out-of-range indices
// are ignored; the return value reports whether the list changed.
func (l *List) Toggle(i int) bool {
	if i < 0 || i >= len(l.Tasks) {
		return false
	}
	l.Tasks[i].Toggle()
	return true
}

// Cycle advances the task at index i to the next status in the cycle.
// Same bounds policy as Toggle.
func (l *List) Cycle(i int) bool {
	if i < 0 || i >= len(l.Tasks) {
		return false
	}
	l.Tasks[i].Status = l.Tasks[i].Status.Next()
	return true
}

// Edit replaces the text of the task at index i. Same bounds policy as
// Toggle.
func (l *List) Edit(i int, text string) bool {
	if i < 0 || i >= len(l.Tasks) {
		return false
	}
	l.Tasks[i].Text = text
	return true
}

// Remove deletes the task at index i, shifting later tasks down by one.
// Same bounds policy as Toggle.
func (l *List) Remove(i int) bool {
	if i < 0 || i >= len(l.Tasks) {
		return false
	}
	l.Tasks = append(l.Tasks[:i], l.Tasks[i+1:]...)
	return true
}

// Move swaps the task at index i with its neighbor. Direction is -1 to
// move the task up one position or +1 to move it down. It returns the
// task's new index; moves that would leave the list, or an out-of-range
// i, return i unchanged.
func (l *List) Move(i, direction int) int {
	if i < 0 || i >= len(l.Tasks) {
		return i
	}
	j := i + direction
	if j < 0 || j >= len(l.Tasks) {
		return i
	}
	l.Tasks[i], l.Tasks[j] = l.Tasks[j], l.Tasks[i]
	return j
}
