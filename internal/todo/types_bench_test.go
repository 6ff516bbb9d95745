package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BenchmarkLoad benchmarks tasks file loading and parsing.
func BenchmarkLoad(b *testing.B) {
	content := "- [ ] buy milk\n- [~] write report\n- [x] call plumber\n"
	path := filepath.Join(b.TempDir(), "tasks.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		b.Fatalf("failed to create test file: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Load(path); err != nil {
			b.Fatalf("Load failed: %v", err)
		}
	}
}

// BenchmarkLoadLarge benchmarks loading a file with 100 tasks.
func BenchmarkLoadLarge(b *testing.B) {
	markers := []string{" ", "~", "x", "!"}
	var sb strings.Builder
	for i := 1; i <= 100; i++ {
		fmt.Fprintf(&sb, "- [%s] task number %d\n", markers[i%len(markers)], i)
	}
	path := filepath.Join(b.TempDir(), "tasks.md")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		b.Fatalf("failed to create test file: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Load(path); err != nil {
			b.Fatalf("Load failed: %v", err)
		}
	}
}

// BenchmarkParseLine benchmarks single-line parsing.
func BenchmarkParseLine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, ok := ParseLine("- [x] call the plumber about the kitchen sink"); !ok {
			b.Fatal("ParseLine failed")
		}
	}
}
