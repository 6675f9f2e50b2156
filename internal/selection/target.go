package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/model"
	"github.com/easyfocus/easyfocus/internal/platform"
)

// ErrNotFound is returned when a target names no window.
var ErrNotFound = errors.New("window not found")

// Target names a window without the interactive picker. Exactly one field
// should be set.
type Target struct {
	ConID layout.NodeID
	Label string
	Match string
}

func (t Target) String() string {
	switch {
	case t.ConID != 0:
		return fmt.Sprintf("con_id %d", t.ConID)
	case t.Label != "":
		return fmt.Sprintf("label %q", t.Label)
	default:
		return fmt.Sprintf("match %q", t.Match)
	}
}

// Lookup resolves t against plan. A con id may name any container of the
// tree; labels and title matches only consider visible windows.
func Lookup(plan *Plan, t Target) (model.Window, error) {
	windows := model.Windows(plan.Tree, plan.Table)
	switch {
	case t.ConID != 0:
		for _, w := range windows {
			if w.ConID == int64(t.ConID) {
				return w, nil
			}
		}
		if n := plan.Tree.Find(t.ConID); n != nil {
			return model.Window{ConID: int64(n.ID), XID: n.Window, Title: n.Name, Emphasis: n.Emphasis.String()}, nil
		}
	case t.Label != "":
		for _, w := range windows {
			if w.Label == t.Label {
				return w, nil
			}
		}
	case t.Match != "":
		if w, ok := model.BestMatch(windows, t.Match); ok {
			return w, nil
		}
	default:
		return model.Window{}, errors.New("no target given")
	}
	return model.Window{}, fmt.Errorf("%w: %s", ErrNotFound, t)
}

// FocusTarget builds a plan, resolves t and focuses the window it names.
func FocusTarget(ctx context.Context, wm platform.WindowManager, opts Options, t Target) (model.Window, error) {
	plan, err := BuildPlan(ctx, wm, opts)
	if err != nil {
		return model.Window{}, err
	}
	w, err := Lookup(plan, t)
	if err != nil {
		return model.Window{}, err
	}
	if err := wm.Focus(ctx, layout.NodeID(w.ConID)); err != nil {
		return w, fmt.Errorf("focus con_id %d: %w", w.ConID, err)
	}
	return w, nil
}
