package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/stepliteral/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("stepliteral", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
stepliteral - Render workflow step objects as bash, R or Julia source.

Usage:
  stepliteral [options] STEP_PATH

Arguments:
  STEP_PATH
    Path to a single .hcl step file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	targetFlag := flagSet.String("target", "bash", "Script language. Options: 'bash', 'r', 'julia'.")
	tFlag := flagSet.String("t", "", "Script language (shorthand).")
	stepFlag := flagSet.String("step", "", "Render only the step with this rule name.")
	prefixFlag := flagSet.String("prefix", "snakemake", "Prefix for the generated variable names.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of steps rendered concurrently.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected a single STEP_PATH, got %d arguments", flagSet.NArg())}
	}
	path := flagSet.Arg(0)
	if path == "" {
		slog.Debug("No step path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	target := *targetFlag
	if *tFlag != "" {
		target = *tFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		StepPath:    path,
		StepName:    *stepFlag,
		Target:      strings.ToLower(target),
		Prefix:      *prefixFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WorkerCount: *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
