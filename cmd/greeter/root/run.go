package root

import (
	"errors"
	"io"
	"strings"
)

type exitCoder interface {
	ExitCode() int
}

// Run executes the command and returns the process exit code. Failures are
// printed to stderr as a single line, followed by the usage text when the
// command line itself was rejected.
func Run(args []string, stdout, stderr io.Writer) int {
	err := Execute(args, stdout, stderr)
	if err == nil {
		return 0
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(stderr, "Error: "+msg+"\n")

	var ue *UsageError
	if errors.As(err, &ue) && ue.Usage != "" {
		_, _ = io.WriteString(stderr, ue.Usage)
	}

	code := 1
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	return code
}
