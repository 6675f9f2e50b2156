// Package selection runs the label-and-pick loop against a window manager
// and a display.
package selection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/easyfocus/easyfocus/internal/logging"
	"github.com/easyfocus/easyfocus/internal/platform"
)

// State is a step of the selection loop.
type State int

const (
	Idle State = iota
	Querying
	Labeling
	AwaitingInput
	Resolved
	Cancelled
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Querying:
		return "querying"
	case Labeling:
		return "labeling"
	case AwaitingInput:
		return "awaiting-input"
	case Resolved:
		return "resolved"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is everything a controller talks to.
type Session struct {
	WM      platform.WindowManager
	Display platform.Display
	Log     *logging.Logger
	// Out receives printed ids.
	Out io.Writer
}

// Controller drives selection rounds. A Controller runs one selection at a
// time and is not safe for concurrent use.
type Controller struct {
	session Session
	opts    Options
	state   State

	// OnState, if set, observes every state transition.
	OnState func(State)
}

// New returns a controller in the Idle state.
func New(s Session, opts Options) *Controller {
	if s.Log == nil {
		s.Log = logging.Nop()
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	return &Controller{session: s, opts: opts}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) setState(s State) {
	c.state = s
	if c.OnState != nil {
		c.OnState(s)
	}
}

// Run performs selection rounds until one ends the run: every round when
// not in rapid mode, otherwise a cancellation, a fatal error, or an empty
// screen. The returned error is non-nil only for fatal errors.
func (c *Controller) Run(ctx context.Context) (Outcome, error) {
	var selected int
	for rounds := 1; ; rounds++ {
		out, err := c.round(ctx)
		if out.Status == StatusFocused || out.Status == StatusPrinted {
			selected++
		}
		out.Rounds = rounds
		out.Selected = selected
		if err != nil {
			c.setState(Failed)
			return out, err
		}

		switch out.Status {
		case StatusCancelled:
			c.setState(Cancelled)
			return out, nil
		case StatusNoWindows:
			c.setState(Failed)
			return out, nil
		case StatusUnknownSelection, StatusFocusFailed:
			c.session.Log.Warn(out.Status.String(), "key", out.Key, "error", errString(out.Err))
		}

		if !c.opts.Rapid {
			if out.Status == StatusUnknownSelection {
				c.setState(Failed)
			}
			return out, nil
		}
	}
}

func (c *Controller) round(ctx context.Context) (Outcome, error) {
	log := c.session.Log

	c.setState(Querying)
	plan, err := BuildPlan(ctx, c.session.WM, c.opts)
	if err != nil {
		return Outcome{}, err
	}
	for _, d := range plan.Diagnostics {
		log.Warn(d.Message, "kind", string(d.Kind), "con_id", int64(d.NodeID))
	}
	if plan.Table.Len() == 0 {
		return Outcome{Status: StatusNoWindows}, nil
	}

	c.setState(Labeling)
	g := &grabs{display: c.session.Display, mods: c.opts.Modifiers}
	defer g.release()

	cancelKey := c.opts.cancelKey()
	if err := g.grab(cancelKey); err != nil {
		return Outcome{}, err
	}
	for _, e := range plan.Table.Entries() {
		if err := g.grab(e.Key); err != nil {
			return Outcome{}, err
		}
		n := e.Window.Node
		if err := g.overlay(platform.Label{
			Text:     e.Key,
			Position: n.Position,
			Emphasis: e.Window.Emphasis,
			Title:    n.Name,
		}); err != nil {
			return Outcome{}, err
		}
	}
	log.Debug("labels ready", "windows", plan.Table.Len(), "unlabeled", len(plan.Table.Unlabeled()))

	c.setState(AwaitingInput)
	ev, cancelled, err := c.await(ctx)
	g.release()
	if err != nil {
		return Outcome{}, err
	}
	if cancelled {
		return Outcome{Status: StatusCancelled}, nil
	}

	c.setState(Resolved)
	return c.resolve(ctx, plan, ev.Symbol), nil
}

// await blocks for one key press. Ambient events are skipped, except a
// change of the root geometry, which cancels the round like a timeout does.
func (c *Controller) await(ctx context.Context) (platform.Event, bool, error) {
	waitCtx := ctx
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	for {
		ev, err := c.session.Display.WaitForEvent(waitCtx)
		if err != nil {
			if waitCtx.Err() != nil {
				c.session.Log.Info("wait ended", "reason", waitCtx.Err().Error())
				return platform.Event{}, true, nil
			}
			return platform.Event{}, false, fmt.Errorf("%w: wait for input: %w", ErrConnection, err)
		}
		if ev.Kind == platform.EventKeyPress {
			return ev, false, nil
		}
		if ev.Ambient == platform.AmbientGeometryChange {
			c.session.Log.Info("screen geometry changed, cancelling")
			return platform.Event{}, true, nil
		}
		c.session.Log.Debug("ignoring event", "kind", ev.Ambient.String())
	}
}

func (c *Controller) resolve(ctx context.Context, plan *Plan, key string) Outcome {
	if key == c.opts.cancelKey() {
		return Outcome{Status: StatusCancelled, Key: key}
	}
	w, ok := plan.Table.Lookup(key)
	if !ok {
		return Outcome{Status: StatusUnknownSelection, Key: key}
	}
	n := w.Node

	switch c.opts.Print {
	case PrintConID:
		fmt.Fprintln(c.session.Out, int64(n.ID))
		return Outcome{Status: StatusPrinted, Key: key, Window: n}
	case PrintWindowID:
		fmt.Fprintln(c.session.Out, n.Window)
		return Outcome{Status: StatusPrinted, Key: key, Window: n}
	}

	if err := c.session.WM.Focus(ctx, n.ID); err != nil {
		c.session.Log.Error("cannot focus window", err, "con_id", int64(n.ID))
		return Outcome{Status: StatusFocusFailed, Key: key, Window: n, Err: err}
	}
	c.session.Log.Info("focused", "con_id", int64(n.ID), "title", n.Name)
	return Outcome{Status: StatusFocused, Key: key, Window: n}
}

// grabs tracks what one round acquired so it can all be released.
type grabs struct {
	display  platform.Display
	mods     platform.ModMask
	keys     []string
	overlays []platform.Overlay
}

func (g *grabs) grab(key string) error {
	if err := g.display.GrabKey(key, g.mods); err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrGrab, key, err)
	}
	g.keys = append(g.keys, key)
	return nil
}

func (g *grabs) overlay(l platform.Label) error {
	o, err := g.display.CreateLabelOverlay(l)
	if err != nil {
		return fmt.Errorf("%w: label %q: %w", ErrGrab, l.Text, err)
	}
	g.overlays = append(g.overlays, o)
	return nil
}

// release is idempotent.
func (g *grabs) release() {
	for i := len(g.overlays) - 1; i >= 0; i-- {
		g.display.DestroyOverlay(g.overlays[i])
	}
	for i := len(g.keys) - 1; i >= 0; i-- {
		g.display.UngrabKey(g.keys[i], g.mods)
	}
	g.overlays = nil
	g.keys = nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsFatal reports whether err ends a run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConnection) || errors.Is(err, ErrQuery) || errors.Is(err, ErrGrab)
}
