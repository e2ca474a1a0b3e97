package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/matgraph/internal/app"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("matgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
matgraph - Validate and evaluate material node graphs.

Usage:
  matgraph [options] [MATERIALS_PATH]

Arguments:
  MATERIALS_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	materialsFlag := flagSet.String("materials", "", "Path to the materials file or directory.")
	mFlag := flagSet.String("m", "", "Path to the materials file or directory (shorthand).")
	nameFlag := flagSet.String("material", "", "Only process the material with this name.")
	modeFlag := flagSet.String("mode", "auto", "Evaluation mode. Options: 'value', 'bsdf' or 'auto'.")
	samplesFlag := flagSet.Int("samples", 0, "Sample each material on an NxN UV grid. 0 only validates.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent sampling workers. 0 uses one per CPU.")
	modulesPathFlag := flagSet.String("modules-path", "", "Optional directory with additional bxdf manifests.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	otlpFlag := flagSet.String("otlp-endpoint", "", "OTLP/gRPC endpoint for traces, e.g. localhost:4317. Empty disables tracing.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *materialsFlag != "" {
		path = *materialsFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Materials path determined.", "path", path)

	if path == "" {
		slog.Debug("No materials path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		MaterialsPath: path,
		ModulesPath:   *modulesPathFlag,
		Material:      *nameFlag,
		Mode:          strings.ToLower(*modeFlag),
		Samples:       *samplesFlag,
		WorkerCount:   *workersFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		OTLPEndpoint:  *otlpFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
