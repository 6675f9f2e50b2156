package i3ipc

import "github.com/easyfocus/easyfocus/internal/layout"

type rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r rect) layout() layout.Rect {
	return layout.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// con is a container as encoded in a GET_TREE reply.
type con struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Layout         string  `json:"layout"`
	Nodes          []*con  `json:"nodes"`
	FloatingNodes  []*con  `json:"floating_nodes"`
	Focus          []int64 `json:"focus"`
	Focused        bool    `json:"focused"`
	Urgent         bool    `json:"urgent"`
	FullscreenMode int     `json:"fullscreen_mode"`
	Window         *int64  `json:"window"`
	Rect           rect    `json:"rect"`
	DecoRect       rect    `json:"deco_rect"`
}

type workspaceReply struct {
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Focused bool   `json:"focused"`
	Rect    rect   `json:"rect"`
	Output  string `json:"output"`
}

type outputReply struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Rect   rect   `json:"rect"`
}

type commandReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// convert builds a layout tree from c. parent is nil for the root.
func convert(c, parent *con) *layout.Node {
	n := &layout.Node{
		ID:         layout.NodeID(c.ID),
		Type:       layout.NodeType(c.Type),
		Kind:       layout.ParseKind(c.Layout),
		Name:       c.Name,
		Fullscreen: c.FullscreenMode != 0,
		Focused:    c.Focused,
		Rect:       c.Rect.layout(),
		Position:   anchor(c, parent),
		Emphasis:   emphasis(c),
	}
	if n.Type == layout.TypeFloatingCon && n.Kind == layout.KindUnknown {
		n.Kind = layout.KindFloating
	}
	if c.Window != nil {
		n.Window = *c.Window
	}
	n.FocusedChildID = focusedChild(c)

	for _, child := range c.Nodes {
		n.Children = append(n.Children, convert(child, c))
	}
	for _, child := range c.FloatingNodes {
		n.Floating = append(n.Floating, convert(child, c))
	}
	return n
}

// anchor is where a container's label goes: on its title bar when it has
// one, else its top-left corner.
func anchor(c, parent *con) layout.Point {
	if c.FullscreenMode != 0 || c.DecoRect.Height == 0 || parent == nil {
		return layout.Point{X: c.Rect.X, Y: c.Rect.Y}
	}
	return layout.Point{
		X: parent.Rect.X + c.DecoRect.X,
		Y: parent.Rect.Y + c.DecoRect.Y,
	}
}

func emphasis(c *con) layout.Emphasis {
	switch {
	case c.Urgent:
		return layout.Urgent
	case c.Focused:
		return layout.Focused
	default:
		return layout.Unfocused
	}
}

// focusedChild returns the first id on c's focus stack naming a tiling child.
func focusedChild(c *con) layout.NodeID {
	for _, id := range c.Focus {
		for _, child := range c.Nodes {
			if child.ID == id {
				return layout.NodeID(id)
			}
		}
	}
	return 0
}
