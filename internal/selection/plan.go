package selection

import (
	"context"
	"fmt"

	"github.com/easyfocus/easyfocus/internal/label"
	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/platform"
)

// Plan is the labeled view of the window manager's state for one round.
type Plan struct {
	Tree        *layout.Node
	Windows     []layout.VisibleWindow
	Table       *label.Table
	Diagnostics []layout.Diagnostic
}

// BuildPlan queries the window manager and labels the visible windows of the
// configured search area.
func BuildPlan(ctx context.Context, wm platform.WindowManager, opts Options) (*Plan, error) {
	tree, err := wm.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: get tree: %w", ErrQuery, err)
	}

	p := &Plan{Tree: tree}
	switch opts.Area {
	case layout.AllOutputs:
		workspaces, err := wm.GetWorkspaces(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: get workspaces: %w", ErrQuery, err)
		}
		outputs, err := wm.GetOutputs(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: get outputs: %w", ErrQuery, err)
		}
		ordered, diags := layout.Order(workspaces, outputs, opts.Sort)
		p.Diagnostics = append(p.Diagnostics, diags...)
		for _, ws := range ordered {
			node := layout.WorkspaceByName(tree, ws.Name)
			if node == nil {
				p.Diagnostics = append(p.Diagnostics, layout.Diagnostic{
					Kind:    layout.MissingWorkspace,
					Message: fmt.Sprintf("workspace %q is not in the tree", ws.Name),
				})
				continue
			}
			windows, diags := layout.Visible(node)
			p.Windows = append(p.Windows, windows...)
			p.Diagnostics = append(p.Diagnostics, diags...)
		}
	default:
		if root := layout.SearchRoot(tree, opts.Area); root != nil {
			windows, diags := layout.Visible(root)
			p.Windows = windows
			p.Diagnostics = append(p.Diagnostics, diags...)
		}
	}

	p.Table = label.Assign(p.Windows, opts.alphabet())
	if n := len(p.Table.Unlabeled()); n > 0 {
		p.Diagnostics = append(p.Diagnostics, layout.Diagnostic{
			Kind:    layout.TooManyWindows,
			Message: fmt.Sprintf("%d of %d windows left unlabeled", n, len(p.Windows)),
		})
	}
	return p, nil
}
