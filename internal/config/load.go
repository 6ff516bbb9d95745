package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS-specific config dir, e.g. ~/.config/taskmd/taskmd.toml)
// 3. Project config file (taskmd.toml or .taskmd.toml in current directory)
// 4. Environment variables (TASKMD_*)
func Load() (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	dataDir := filepath.Join(userDataDir(), AppName)
	cfg.TasksFile = filepath.Join(dataDir, "tasks.md")
	cfg.LogFile = filepath.Join(dataDir, AppName+".log")
	cfg.LogLevel = DefaultLogLevel
}

// loadConfigFile loads TOML config from the given file.
func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKMD_FILE"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("TASKMD_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TASKMD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// finalizeConfig expands and absolutizes the configured paths.
func finalizeConfig(cfg *Config) error {
	var err error
	if cfg.TasksFile, err = normalizePath(cfg.TasksFile); err != nil {
		return err
	}
	if cfg.LogFile, err = normalizePath(cfg.LogFile); err != nil {
		return err
	}
	return nil
}

// SetTasksFile replaces the tasks file path, applying the same
// expansion rules as configured values. Used for the command-line
// override.
func (c *Config) SetTasksFile(path string) error {
	p, err := normalizePath(path)
	if err != nil {
		return err
	}
	c.TasksFile = p
	return nil
}

// normalizePath expands ~ and environment variables and makes the path
// absolute relative to the working directory.
func normalizePath(p string) (string, error) {
	p = expandPath(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving path %s: %w", p, err)
	}
	return abs, nil
}
