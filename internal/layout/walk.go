package layout

import "fmt"

// Resolve returns the windows currently rendered under root, in traversal order.
//
// Split and floating containers contribute every child. Tabbed and stacked
// containers expand only the focused child in place; every other child stands
// for itself as a single window. Floating children are always expanded.
// Containers with an unknown layout contribute nothing and are reported.
func Resolve(root *Node) ([]VisibleWindow, []Diagnostic) {
	w := &walker{}
	if root != nil {
		w.visit(root)
	}
	return w.windows, w.diags
}

// Visible resolves the windows under searchRoot, starting from its fullscreen
// container instead when one exists.
func Visible(searchRoot *Node) ([]VisibleWindow, []Diagnostic) {
	if fs := FindFullscreen(searchRoot); fs != nil {
		return Resolve(fs)
	}
	return Resolve(searchRoot)
}

// FindFullscreen returns the first fullscreen container in pre-order under
// root. If that container holds a fullscreen descendant, the deepest one on
// that chain is returned.
func FindFullscreen(root *Node) *Node {
	found := firstFullscreen(root, true)
	if found == nil {
		return nil
	}
	for {
		deeper := firstFullscreen(found, false)
		if deeper == nil {
			return found
		}
		found = deeper
	}
}

func firstFullscreen(root *Node, includeRoot bool) *Node {
	var found *Node
	root.Walk(func(n *Node) bool {
		if n.Fullscreen && (includeRoot || n != root) {
			found = n
			return false
		}
		return true
	})
	return found
}

type walker struct {
	windows []VisibleWindow
	diags   []Diagnostic
}

func (w *walker) emit(n *Node) {
	w.windows = append(w.windows, VisibleWindow{Node: n, Emphasis: n.Emphasis})
}

func (w *walker) visit(n *Node) {
	if n.IsLeaf() {
		w.emit(n)
		return
	}

	switch n.Kind {
	case KindSplitH, KindSplitV, KindFloating:
		for _, c := range n.Children {
			w.visit(c)
		}
	case KindTabbed, KindStacked:
		focused := focusedChild(n)
		if focused == nil && len(n.Children) > 0 {
			w.diags = append(w.diags, Diagnostic{
				Kind:    NoFocusedTab,
				NodeID:  n.ID,
				Message: fmt.Sprintf("%s container has no focused child, showing every child as a tab", n.Kind),
			})
		}
		for _, c := range n.Children {
			if c == focused {
				w.visit(c)
			} else {
				w.emit(c)
			}
		}
	default:
		w.diags = append(w.diags, Diagnostic{
			Kind:    UnsupportedLayout,
			NodeID:  n.ID,
			Message: fmt.Sprintf("cannot resolve children of %s container", n.Kind),
		})
		return
	}

	for _, c := range n.Floating {
		w.visit(c)
	}
}

func focusedChild(n *Node) *Node {
	if n.FocusedChildID == 0 {
		return nil
	}
	for _, c := range n.Children {
		if c.ID == n.FocusedChildID {
			return c
		}
	}
	return nil
}
