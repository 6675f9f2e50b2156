package platform

import (
	"context"

	"github.com/easyfocus/easyfocus/internal/layout"
)

// WindowManager queries and controls the tiling window manager.
type WindowManager interface {
	// GetTree returns a fresh snapshot of the container tree.
	GetTree(ctx context.Context) (*layout.Node, error)

	GetWorkspaces(ctx context.Context) ([]layout.Workspace, error)
	GetOutputs(ctx context.Context) ([]layout.Output, error)

	// Focus moves input focus to the container with the given id.
	Focus(ctx context.Context, id layout.NodeID) error

	Close() error
}

// Display grabs keys, draws label overlays and reports input.
type Display interface {
	GrabKey(symbol string, mods ModMask) error
	UngrabKey(symbol string, mods ModMask)

	CreateLabelOverlay(l Label) (Overlay, error)
	DestroyOverlay(o Overlay)

	// WaitForEvent blocks until a key press or an ambient event arrives, or
	// ctx is done.
	WaitForEvent(ctx context.Context) (Event, error)

	Close() error
}
