package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SkippedLine records a line in the tasks file that was not a valid
// checklist entry and was left out of the loaded list.
type SkippedLine struct {
	Number  int // 1-based line number
	Content string
}

// Load reads and parses a tasks file from path. A missing file is not
// an error and yields an empty list. Lines that fail to parse are
// skipped and returned so callers can warn about them; blank lines are
// ignored silently.
func Load(path string) (*List, []SkippedLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &List{}, nil, nil
		}
		return nil, nil, fmt.Errorf("read tasks file: %w", err)
	}

	list := &List{}
	var skipped []SkippedLine
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, ok := ParseLine(line)
		if !ok {
			skipped = append(skipped, SkippedLine{Number: n + 1, Content: line})
			continue
		}
		list.Tasks = append(list.Tasks, task)
	}
	return list, skipped, nil
}

// Save writes the list to path, one markdown checklist line per task
// with a trailing newline. The content goes to a temporary file in the
// same directory which is renamed over the target, so an interrupted
// write cannot truncate the previous contents. The parent directory is
// created if needed.
func (l *List) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create tasks dir: %w", err)
	}

	var b strings.Builder
	for _, t := range l.Tasks {
		b.WriteString(t.Markdown())
		b.WriteByte('\n')
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}
