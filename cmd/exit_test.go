package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/easyfocus/easyfocus/internal/selection"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name  string
		out   selection.Outcome
		err   error
		rapid bool
		want  int
	}{
		{"focused", selection.Outcome{Status: selection.StatusFocused}, nil, false, exitOK},
		{"printed", selection.Outcome{Status: selection.StatusPrinted}, nil, false, exitOK},
		{"cancelled", selection.Outcome{Status: selection.StatusCancelled}, nil, false, exitCancelled},
		{"rapid ends by cancel", selection.Outcome{Status: selection.StatusCancelled, Rounds: 3, Selected: 2}, nil, true, exitOK},
		{"no windows", selection.Outcome{Status: selection.StatusNoWindows}, nil, false, exitNoWindows},
		{"no windows in rapid mode", selection.Outcome{Status: selection.StatusNoWindows}, nil, true, exitNoWindows},
		{"unknown key", selection.Outcome{Status: selection.StatusUnknownSelection, Key: "q"}, nil, false, exitUnknownKey},
		{"focus failed", selection.Outcome{Status: selection.StatusFocusFailed, Err: errors.New("gone")}, nil, false, exitFocusFailed},
		{"grab", selection.Outcome{}, fmt.Errorf("%w: key %q", selection.ErrGrab, "a"), false, exitGrabFailed},
		{"query", selection.Outcome{}, fmt.Errorf("%w: get tree", selection.ErrQuery), false, exitFailure},
		{"connection", selection.Outcome{}, selection.ErrConnection, false, exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCode(outcomeError(tt.out, tt.err, tt.rapid))
			if got != tt.want {
				t.Errorf("exit code %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCode_FocusCommandErrors(t *testing.T) {
	if got := exitCode(fmt.Errorf("%w: label %q", selection.ErrNotFound, "q")); got != exitUnknownKey {
		t.Errorf("not found: got %d, want %d", got, exitUnknownKey)
	}
	if got := exitCode(errors.New("invalid configuration")); got != exitFailure {
		t.Errorf("generic error: got %d, want %d", got, exitFailure)
	}
}

func TestOutcomeError_Messages(t *testing.T) {
	err := outcomeError(selection.Outcome{Status: selection.StatusUnknownSelection, Key: "q"}, nil, false)
	if err == nil || err.Error() != `unknown selection: "q"` {
		t.Errorf("unexpected message: %v", err)
	}
	cause := errors.New("gone")
	err = outcomeError(selection.Outcome{Status: selection.StatusFocusFailed, Err: cause}, nil, false)
	if !errors.Is(err, cause) {
		t.Errorf("focus failure should wrap its cause: %v", err)
	}
}
