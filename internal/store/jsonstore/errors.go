package jsonstore

import (
	"errors"
	"fmt"
)

// ErrMalformed matches any MalformedError via errors.Is.
var ErrMalformed = errors.New("malformed task file")

// MalformedError reports non-blank file content that does not decode to a
// task list.
type MalformedError struct {
	Path     string // file that was read
	Location string // e.g. "[2].is_completed"; empty for syntax errors
	Err      error
}

func (e *MalformedError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("%s: %s: %s: %s", ErrMalformed, e.Path, e.Location, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformed, e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }
