package model

import "github.com/easyfocus/easyfocus/internal/layout"

// Element is a container in the layout tree as printed by `tree`.
type Element struct {
	ID         int64     `yaml:"i"            json:"i"`            // con_id
	Type       string    `yaml:"t"            json:"t"`            // root, output, workspace, con, floating_con
	Layout     string    `yaml:"l,omitempty"  json:"l,omitempty"`  // splith, tabbed, ...; empty for windows
	Name       string    `yaml:"n,omitempty"  json:"n,omitempty"`  // window title or workspace name
	Window     int64     `yaml:"w,omitempty"  json:"w,omitempty"`  // X11 window id
	Bounds     [4]int    `yaml:"b"            json:"b"`            // [x, y, width, height]
	Focused    bool      `yaml:"f,omitempty"  json:"f,omitempty"`  // has input focus
	Fullscreen bool      `yaml:"fs,omitempty" json:"fs,omitempty"` // fullscreen mode
	Floating   bool      `yaml:"fl,omitempty" json:"fl,omitempty"` // child of a workspace's floating list
	Children   []Element `yaml:"c,omitempty"  json:"c,omitempty"`
}

// FromNode converts a layout tree into elements.
func FromNode(n *layout.Node) Element {
	return fromNode(n, false)
}

func fromNode(n *layout.Node, floating bool) Element {
	el := Element{
		ID:         int64(n.ID),
		Type:       string(n.Type),
		Name:       n.Name,
		Window:     n.Window,
		Bounds:     [4]int{n.Rect.X, n.Rect.Y, n.Rect.Width, n.Rect.Height},
		Focused:    n.Focused,
		Fullscreen: n.Fullscreen,
		Floating:   floating,
	}
	if !n.IsLeaf() && n.Kind != layout.KindUnknown {
		el.Layout = n.Kind.String()
	}
	for _, c := range n.Children {
		el.Children = append(el.Children, fromNode(c, false))
	}
	for _, c := range n.Floating {
		el.Children = append(el.Children, fromNode(c, true))
	}
	return el
}
