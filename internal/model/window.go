package model

import (
	"github.com/easyfocus/easyfocus/internal/label"
	"github.com/easyfocus/easyfocus/internal/layout"
)

// Window is a visible window with the label it was given.
type Window struct {
	Label     string `yaml:"label,omitempty"     json:"label,omitempty"`
	ConID     int64  `yaml:"con_id"              json:"con_id"`
	XID       int64  `yaml:"window,omitempty"    json:"window,omitempty"`
	Title     string `yaml:"title,omitempty"     json:"title,omitempty"`
	Workspace string `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Emphasis  string `yaml:"emphasis"            json:"emphasis"`
	Position  [2]int `yaml:"position"            json:"position"` // label anchor [x, y]
}

// Windows lists the labeled windows of t in label order, followed by the
// windows left without a label.
func Windows(tree *layout.Node, t *label.Table) []Window {
	workspaces := workspaceNames(tree)
	conv := func(key string, vw layout.VisibleWindow) Window {
		n := vw.Node
		return Window{
			Label:     key,
			ConID:     int64(n.ID),
			XID:       n.Window,
			Title:     n.Name,
			Workspace: workspaces[n.ID],
			Emphasis:  vw.Emphasis.String(),
			Position:  [2]int{n.Position.X, n.Position.Y},
		}
	}

	var out []Window
	for _, e := range t.Entries() {
		out = append(out, conv(e.Key, e.Window))
	}
	for _, vw := range t.Unlabeled() {
		out = append(out, conv("", vw))
	}
	return out
}

// workspaceNames maps every container to the name of its workspace.
func workspaceNames(tree *layout.Node) map[layout.NodeID]string {
	names := map[layout.NodeID]string{}
	var visit func(n *layout.Node, ws string)
	visit = func(n *layout.Node, ws string) {
		if n.Type == layout.TypeWorkspace {
			ws = n.Name
		}
		if ws != "" {
			names[n.ID] = ws
		}
		for _, c := range n.Children {
			visit(c, ws)
		}
		for _, c := range n.Floating {
			visit(c, ws)
		}
	}
	if tree != nil {
		visit(tree, "")
	}
	return names
}
