package cli

import (
	"errors"
	"fmt"
)

const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ErrHelp is returned by Parse when usage was requested and printed.
var ErrHelp = errors.New("help requested")

// ExitError carries the message and status main should exit with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

func failure(format string, err error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf(format, err), Err: err}
}
