package layout

import (
	"fmt"
	"strings"
)

// NodeID identifies a container within one tree snapshot.
type NodeID int64

// NodeType is the window manager's container type.
type NodeType string

const (
	TypeRoot        NodeType = "root"
	TypeOutput      NodeType = "output"
	TypeWorkspace   NodeType = "workspace"
	TypeCon         NodeType = "con"
	TypeFloatingCon NodeType = "floating_con"
	TypeDockArea    NodeType = "dockarea"
)

// Kind is the layout of a container's children.
type Kind int

const (
	KindUnknown Kind = iota
	KindLeaf
	KindSplitH
	KindSplitV
	KindTabbed
	KindStacked
	KindFloating
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindLeaf:     "leaf",
	KindSplitH:   "splith",
	KindSplitV:   "splitv",
	KindTabbed:   "tabbed",
	KindStacked:  "stacked",
	KindFloating: "floating",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a window manager layout string to a Kind.
// Layouts that carry no child arrangement (output, dockarea, empty) map to KindUnknown.
func ParseKind(s string) Kind {
	switch strings.ToLower(s) {
	case "splith":
		return KindSplitH
	case "splitv":
		return KindSplitV
	case "tabbed":
		return KindTabbed
	case "stacked", "stacking":
		return KindStacked
	default:
		return KindUnknown
	}
}

// Emphasis drives label coloring.
type Emphasis int

const (
	Unfocused Emphasis = iota
	Focused
	Urgent
)

func (e Emphasis) String() string {
	switch e {
	case Focused:
		return "focused"
	case Urgent:
		return "urgent"
	default:
		return "unfocused"
	}
}

// Point is a screen position in pixels.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Node is one container of a tree snapshot. Trees are built once per query
// and never mutated afterwards.
type Node struct {
	ID             NodeID
	Type           NodeType
	Kind           Kind
	Name           string
	Children       []*Node
	Floating       []*Node
	FocusedChildID NodeID
	Fullscreen     bool
	Focused        bool
	Window         int64
	Rect           Rect
	Position       Point
	Emphasis       Emphasis
}

// IsLeaf reports whether n has neither tiling nor floating children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0 && len(n.Floating) == 0
}

// Walk visits n and its descendants in pre-order, tiling children before
// floating children. Returning false from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	for _, c := range n.Floating {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the node with the given id, or nil.
func (n *Node) Find(id NodeID) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// Workspace is a workspace as reported by the window manager.
type Workspace struct {
	Name    string
	Num     int
	Output  string
	Rect    Rect
	Visible bool
	Focused bool
}

// Output is a physical or virtual screen.
type Output struct {
	Name   string
	Rect   Rect
	Active bool
}

// VisibleWindow is one on-screen window selected by Resolve.
type VisibleWindow struct {
	Node     *Node
	Emphasis Emphasis
}
