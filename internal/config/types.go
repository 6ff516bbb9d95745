// Package config handles configuration loading and defaults.
package config

// AppName is the directory name used under the OS config and data
// directories, and the binary name.
const AppName = "taskmd"

// DefaultLogLevel is used when no other source sets log_level.
const DefaultLogLevel = "warn"

// Config holds the full configuration for taskmd.
type Config struct {
	// TasksFile is the markdown checklist the UI edits.
	TasksFile string `toml:"tasks_file"`

	// LogFile receives diagnostic output. Nothing is ever logged to
	// the terminal, which the UI owns.
	LogFile string `toml:"log_file"`

	// LogLevel is the minimum level written to LogFile:
	// debug, info, warn, or error.
	LogLevel string `toml:"log_level"`
}
