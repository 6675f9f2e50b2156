package layout

import (
	"fmt"
	"strings"
)

// SearchArea selects which part of the tree is labeled.
type SearchArea int

const (
	CurrentOutput SearchArea = iota
	AllOutputs
	CurrentContainer
)

func (a SearchArea) String() string {
	switch a {
	case AllOutputs:
		return "all"
	case CurrentContainer:
		return "container"
	default:
		return "output"
	}
}

// ParseSearchArea converts a config value to a SearchArea.
func ParseSearchArea(s string) (SearchArea, error) {
	switch strings.ToLower(s) {
	case "", "output", "current-output":
		return CurrentOutput, nil
	case "all", "all-outputs":
		return AllOutputs, nil
	case "container", "current-container":
		return CurrentContainer, nil
	default:
		return CurrentOutput, fmt.Errorf("unknown search area: %q (expected output, all, or container)", s)
	}
}

// FocusedPath returns the chain of containers from root to the focused
// container, or nil when nothing is focused.
func FocusedPath(root *Node) []*Node {
	if root == nil {
		return nil
	}
	var path []*Node
	var search func(n *Node) bool
	search = func(n *Node) bool {
		path = append(path, n)
		if n.Focused {
			return true
		}
		for _, c := range n.Children {
			if search(c) {
				return true
			}
		}
		for _, c := range n.Floating {
			if search(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	if !search(root) {
		return nil
	}
	return path
}

// FocusedWorkspace returns the workspace holding the focused container. When
// the focused container is not inside a workspace it is returned itself.
func FocusedWorkspace(root *Node) *Node {
	path := FocusedPath(root)
	if len(path) == 0 {
		return nil
	}
	for i := len(path) - 1; i >= 0; i-- {
		if path[i].Type == TypeWorkspace {
			return path[i]
		}
	}
	return path[len(path)-1]
}

// FocusedContainer returns the parent of the focused container, bounded by
// its workspace.
func FocusedContainer(root *Node) *Node {
	path := FocusedPath(root)
	if len(path) == 0 {
		return nil
	}
	focused := path[len(path)-1]
	if focused.Type == TypeWorkspace || len(path) == 1 {
		return focused
	}
	parent := path[len(path)-2]
	switch parent.Type {
	case TypeCon, TypeFloatingCon, TypeWorkspace:
		return parent
	}
	return focused
}

// WorkspaceByName returns the workspace container with the given name.
func WorkspaceByName(root *Node, name string) *Node {
	var found *Node
	root.Walk(func(n *Node) bool {
		if n.Type == TypeWorkspace && n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// SearchRoot picks the subtree to resolve for the current output or the
// current container. AllOutputs is resolved per workspace by the caller.
func SearchRoot(root *Node, area SearchArea) *Node {
	if area == CurrentContainer {
		return FocusedContainer(root)
	}
	return FocusedWorkspace(root)
}
