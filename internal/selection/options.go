package selection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/easyfocus/easyfocus/internal/label"
	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/platform"
)

// DefaultCancelKey ends a selection without choosing a window.
const DefaultCancelKey = "Escape"

// Fatal errors. Everything else ends a round with a Status.
var (
	ErrConnection = errors.New("connection error")
	ErrQuery      = errors.New("query failed")
	ErrGrab       = errors.New("cannot grab key or draw label")
)

// PrintKind selects which id is printed instead of focusing.
type PrintKind int

const (
	PrintNone PrintKind = iota
	PrintConID
	PrintWindowID
)

// ParsePrintKind converts a config value to a PrintKind.
func ParsePrintKind(s string) (PrintKind, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return PrintNone, nil
	case "con-id", "con":
		return PrintConID, nil
	case "window-id", "window":
		return PrintWindowID, nil
	default:
		return PrintNone, fmt.Errorf("unknown print mode: %q (expected con-id or window-id)", s)
	}
}

func (k PrintKind) String() string {
	switch k {
	case PrintConID:
		return "con-id"
	case PrintWindowID:
		return "window-id"
	default:
		return "none"
	}
}

// Options configures a selection run.
type Options struct {
	Area      layout.SearchArea
	Sort      layout.SortMethod
	Alphabet  label.Alphabet
	CancelKey string
	Modifiers platform.ModMask
	Rapid     bool
	Print     PrintKind
	// Timeout bounds the wait for a key press in each round. Zero waits
	// until a key is pressed.
	Timeout time.Duration
}

func (o Options) cancelKey() string {
	if o.CancelKey == "" {
		return DefaultCancelKey
	}
	return o.CancelKey
}

func (o Options) alphabet() label.Alphabet {
	a := o.Alphabet
	if len(a) == 0 {
		a = label.AlphabetFor(label.ModeAvy)
	}
	return a.Without(o.cancelKey())
}

// Status is how a round ended when no fatal error occurred.
type Status int

const (
	StatusFocused Status = iota
	StatusPrinted
	StatusNoWindows
	StatusCancelled
	StatusUnknownSelection
	StatusFocusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFocused:
		return "focused"
	case StatusPrinted:
		return "printed"
	case StatusNoWindows:
		return "no visible windows"
	case StatusCancelled:
		return "no selection"
	case StatusUnknownSelection:
		return "unknown selection"
	case StatusFocusFailed:
		return "cannot focus window"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome reports the last round of a run.
type Outcome struct {
	Status Status
	Key    string
	Window *layout.Node
	// Rounds counts the rounds run, Selected those that focused or printed a window.
	Rounds   int
	Selected int
	Err      error
}
