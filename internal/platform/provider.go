package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/easyfocus/easyfocus/internal/render"
)

// Provider bundles the window manager and display backends for one session.
type Provider struct {
	WindowManager WindowManager
	Display       Display
}

// Close releases both backends.
func (p *Provider) Close() error {
	var errs []error
	if p.Display != nil {
		errs = append(errs, p.Display.Close())
	}
	if p.WindowManager != nil {
		errs = append(errs, p.WindowManager.Close())
	}
	return errors.Join(errs...)
}

// DisplayOptions configures a display backend.
type DisplayOptions struct {
	Palette render.Palette
	// CancelKey is reported when the user interrupts a terminal display.
	CancelKey string
}

// ErrUnsupported is returned when no backend is registered under a name.
var ErrUnsupported = errors.New("backend not available in this build")

// NewWindowManagerFunc is set by the window manager backend via init().
// See internal/platform/i3ipc for the i3/sway registration.
var NewWindowManagerFunc func(ctx context.Context) (WindowManager, error)

var displays = map[string]func(DisplayOptions) (Display, error){}

// RegisterDisplay makes a display backend selectable by name. Backends call
// it from init().
func RegisterDisplay(name string, fn func(DisplayOptions) (Display, error)) {
	displays[name] = fn
}

// Displays lists the registered display backends.
func Displays() []string {
	names := make([]string, 0, len(displays))
	for n := range displays {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NewWindowManager connects to the running window manager.
func NewWindowManager(ctx context.Context) (WindowManager, error) {
	if NewWindowManagerFunc == nil {
		return nil, ErrUnsupported
	}
	return NewWindowManagerFunc(ctx)
}

// NewDisplay opens the named display backend. "auto" picks x11 on an X
// session and tty otherwise.
func NewDisplay(name string, opts DisplayOptions) (Display, error) {
	if name == "" || name == "auto" {
		name = DetectDisplay()
	}
	fn, ok := displays[name]
	if !ok {
		return nil, fmt.Errorf("%w: display %q (available: %s)", ErrUnsupported, name, strings.Join(Displays(), ", "))
	}
	return fn(opts)
}

// DetectDisplay chooses a display backend from the session environment.
func DetectDisplay() string {
	if os.Getenv("DISPLAY") != "" && os.Getenv("XDG_SESSION_TYPE") != "wayland" {
		return "x11"
	}
	return "tty"
}

// NewProvider opens the window manager and the named display.
func NewProvider(ctx context.Context, display string, opts DisplayOptions) (*Provider, error) {
	wm, err := NewWindowManager(ctx)
	if err != nil {
		return nil, err
	}
	d, err := NewDisplay(display, opts)
	if err != nil {
		wm.Close()
		return nil, err
	}
	return &Provider{WindowManager: wm, Display: d}, nil
}
