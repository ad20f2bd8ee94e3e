package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/dotlabel/internal/app"
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
	flagSet := flag.NewFlagSet("dotlabel", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
dotlabel - Labels the transitions of a model checker state graph with the
variables each transition changes.

Usage:
  dotlabel [options] GRAPH_PATH

Arguments:
  GRAPH_PATH
    Path to a single graph file, rewritten in place, or a directory whose
    graph files are all rewritten.

Options:
`)
		flagSet.PrintDefaults()
	}

	dialectFlag := flagSet.String("dialect", "", "Path to an HCL file describing the input dialect.")
	extFlag := flagSet.String("ext", app.DefaultExtension, "Extension of the graph files picked up when GRAPH_PATH is a directory.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print a unified diff of the changes instead of writing files.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() != 1 {
		slog.Debug("Wrong number of positional arguments.", "count", flagSet.NArg())
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected exactly one GRAPH_PATH argument, got %d", flagSet.NArg())}
	}
	path := flagSet.Arg(0)
	slog.Debug("Graph path determined.", "path", path)

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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GraphPath:   path,
		DialectPath: *dialectFlag,
		Extension:   *extFlag,
		DryRun:      *dryRunFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
