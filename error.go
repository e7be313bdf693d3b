package reorganizer

import (
	"errors"
	"fmt"
	"strings"
)

// CommandError reports a condition that aborts a whole step, for example an archive directory which cannot be
// created or a directory which cannot be listed. Failures of single entries are never a CommandError.
type CommandError struct {
	message string
	cause   error
}

func (e *CommandError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *CommandError) Unwrap() error {
	return e.cause
}

func newCommandError(message string, cause error) *CommandError {
	return &CommandError{message: message, cause: cause}
}

// ErrSourceMissing is wrapped by the error of Promote (and Run) if there is no source directory to promote.
var ErrSourceMissing = errors.New("source directory not found")
