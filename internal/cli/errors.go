package cli

import "errors"

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1 // I/O or malformed task file
	ExitUsage = 2 // bad arguments, flags or config
)

const tooManyArgumentsMessage = "Arguments must not exceed three."

var (
	ErrMissingArgument  = errors.New("missing argument")
	ErrTooManyArguments = errors.New("too many arguments")
)

// UsageError is an invocation problem the user can fix by changing the
// command line or config. It always maps to ExitUsage.
type UsageError struct {
	Message string
	Err     error
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "usage error"
}

func (e *UsageError) Unwrap() error { return e.Err }

func usageError(err error) error {
	return &UsageError{Err: err}
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}
