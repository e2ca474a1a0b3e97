// Package cli parses command-line arguments into an app.Config and reports
// bad input as an ExitError carrying the process exit code.
package cli
