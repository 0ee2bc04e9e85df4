package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var argNames = []string{"<file-path>", "<task-description>"}

// validateArgs requires exactly a file path and a task description.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) > len(argNames) {
		return &UsageError{Message: tooManyArgumentsMessage, Err: ErrTooManyArguments}
	}
	if len(args) < len(argNames) {
		return &UsageError{
			Message: fmt.Sprintf("%s: %s", ErrMissingArgument, argNames[len(args)]),
			Err:     ErrMissingArgument,
		}
	}
	return nil
}
