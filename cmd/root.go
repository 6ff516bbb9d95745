// Package cmd implements the CLI command structure for taskmd.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"taskmd/internal/config"
	"taskmd/internal/logging"
	"taskmd/internal/todo"
	"taskmd/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskmd CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("taskmd", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// The first positional argument is the tasks file, except for the
	// help and version words. A file literally named "help" still works
	// through the config file or TASKMD_FILE.
	rest := fs.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case "help", "--help", "-h":
			printUsage(fs, os.Stdout)
			return nil
		case "version", "--version", "-v":
			return versionCommand()
		}
	}
	if len(rest) > 1 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n", rest[1])
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if len(rest) == 1 {
		if err := cfg.SetTasksFile(rest[0]); err != nil {
			return fmt.Errorf("resolving tasks file: %w", err)
		}
	}

	return openCommand(ctx, cfg)
}

// openCommand loads the tasks file and runs the interactive UI over it.
func openCommand(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closer.Close()

	list, skipped, err := todo.Load(cfg.TasksFile)
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	for _, line := range skipped {
		logger.Warn("skipped malformed line", "file", cfg.TasksFile, "line", line.Number, "content", line.Content)
	}
	logger.Info("opening tasks", "file", cfg.TasksFile, "tasks", list.Len())

	uiErr := ui.Run(ctx, list, cfg.TasksFile,
		ui.WithLogger(logger),
		ui.WithSkippedLines(len(skipped)),
	)
	if uiErr != nil && ctx.Err() == nil {
		// The UI refused to start or crashed; nothing was edited.
		return uiErr
	}

	// Save on the way out so an interrupt cannot lose edits.
	if err := list.Save(cfg.TasksFile); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	logger.Info("saved tasks", "file", cfg.TasksFile, "tasks", list.Len())
	return uiErr
}

func versionCommand() error {
	fmt.Printf("taskmd version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskmd - A terminal todo list stored in a markdown file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskmd [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  j/k or arrows  Move the cursor")
	fmt.Fprintln(w, "  g/G            Jump to first/last task")
	fmt.Fprintln(w, "  a              Add a task")
	fmt.Fprintln(w, "  e              Edit the selected task")
	fmt.Fprintln(w, "  x or space     Toggle done")
	fmt.Fprintln(w, "  c              Cycle status (todo/doing/done/important)")
	fmt.Fprintln(w, "  J/K            Move the selected task down/up")
	fmt.Fprintln(w, "  dd             Delete the selected task")
	fmt.Fprintln(w, "  v              Toggle the grouped view")
	fmt.Fprintln(w, "  ?              Toggle full help")
	fmt.Fprintln(w, "  q              Quit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TASKMD_FILE       Tasks file path")
	fmt.Fprintln(w, "  TASKMD_LOG_FILE   Log file path")
	fmt.Fprintln(w, "  TASKMD_LOG_LEVEL  Log level (debug|info|warn|error)")
}
