package root

import "github.com/spf13/cobra"

// ExitUsage is the exit code for malformed command lines.
const ExitUsage = 2

// UsageError reports a command line that could not be parsed. Usage holds
// the help text of the command that rejected it.
type UsageError struct {
	Err   error
	Usage string
}

func newUsageError(cmd *cobra.Command, err error) *UsageError {
	return &UsageError{Err: err, Usage: cmd.UsageString()}
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func (e *UsageError) ExitCode() int { return ExitUsage }
