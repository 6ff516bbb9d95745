// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (OS-specific config directory)
// 3. Project config file (taskmd.toml or .taskmd.toml in the working directory)
// 4. Environment variables (TASKMD_*)
//
// Each level overrides the previous one. A tasks-file path given on the
// command line overrides them all.
//
// User-level config locations:
// - Windows: %APPDATA%\taskmd\taskmd.toml
// - macOS: ~/Library/Application Support/taskmd/taskmd.toml
// - Linux/BSD: $XDG_CONFIG_HOME/taskmd/taskmd.toml or ~/.config/taskmd/taskmd.toml
//
// Recognized keys:
//
//	tasks_file = "~/notes/tasks.md"    # markdown checklist to edit
//	log_file   = "~/notes/taskmd.log"  # diagnostic log destination
//	log_level  = "warn"                # debug, info, warn, or error
//
// Environment variables: TASKMD_FILE, TASKMD_LOG_FILE, TASKMD_LOG_LEVEL.
//
// Path values may use ~, $VAR, and on Windows %VAR%; relative paths are
// resolved against the working directory. The default tasks file lives
// in the OS data directory, e.g. ~/.local/share/taskmd/tasks.md on
// Linux.
package config
