package cmd

import (
	"errors"
	"fmt"

	"github.com/easyfocus/easyfocus/internal/selection"
)

// Process exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitNoWindows   = 2
	exitGrabFailed  = 3
	exitCancelled   = 4
	exitUnknownKey  = 5
	exitFocusFailed = 6
)

// exitError carries the exit code for a run that did not select a window.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// outcomeError maps the result of a picker run to the error Execute
// reports. A rapid run is expected to end by cancelling.
func outcomeError(out selection.Outcome, err error, rapid bool) error {
	if err != nil {
		return err
	}
	switch out.Status {
	case selection.StatusFocused, selection.StatusPrinted:
		return nil
	case selection.StatusCancelled:
		if rapid {
			return nil
		}
		return &exitError{code: exitCancelled, err: errors.New(out.Status.String())}
	case selection.StatusNoWindows:
		return &exitError{code: exitNoWindows, err: errors.New(out.Status.String())}
	case selection.StatusUnknownSelection:
		return &exitError{code: exitUnknownKey, err: fmt.Errorf("%s: %q", out.Status, out.Key)}
	case selection.StatusFocusFailed:
		return &exitError{code: exitFocusFailed, err: fmt.Errorf("%s: %w", out.Status, out.Err)}
	default:
		return fmt.Errorf("unexpected outcome: %s", out.Status)
	}
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var e *exitError
	switch {
	case errors.As(err, &e):
		return e.code
	case errors.Is(err, selection.ErrGrab):
		return exitGrabFailed
	case errors.Is(err, selection.ErrNotFound):
		return exitUnknownKey
	default:
		return exitFailure
	}
}
