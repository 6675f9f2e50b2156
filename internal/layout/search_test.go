package layout

import "testing"

// sampleTree builds root > output > workspace "1" > [10, split 20 > [21, 22*]]
// and a second workspace "2" with a single window.
func sampleTree() *Node {
	focused := leaf(22)
	focused.Focused = true
	inner := split(KindSplitV, 20, leaf(21), focused)
	ws1 := &Node{ID: 3, Type: TypeWorkspace, Kind: KindSplitH, Name: "1", Children: []*Node{leaf(10), inner}}
	ws2 := &Node{ID: 4, Type: TypeWorkspace, Kind: KindSplitH, Name: "2", Children: []*Node{leaf(40)}}
	out := &Node{ID: 2, Type: TypeOutput, Kind: KindUnknown, Name: "DP-1", Children: []*Node{ws1, ws2}}
	return &Node{ID: 1, Type: TypeRoot, Kind: KindSplitH, Children: []*Node{out}}
}

func TestFocusedPath(t *testing.T) {
	path := FocusedPath(sampleTree())
	want := []NodeID{1, 2, 3, 20, 22}
	if len(path) != len(want) {
		t.Fatalf("expected path of %d, got %d", len(want), len(path))
	}
	for i, id := range want {
		if path[i].ID != id {
			t.Errorf("path[%d]: expected %d, got %d", i, id, path[i].ID)
		}
	}
}

func TestFocusedPath_NoFocus(t *testing.T) {
	if path := FocusedPath(split(KindSplitH, 1, leaf(2))); path != nil {
		t.Errorf("expected nil path, got %v", path)
	}
}

func TestFocusedWorkspace(t *testing.T) {
	ws := FocusedWorkspace(sampleTree())
	if ws == nil || ws.Name != "1" {
		t.Fatalf("expected workspace 1, got %v", ws)
	}
}

func TestFocusedWorkspace_FallsBackToFocused(t *testing.T) {
	n := leaf(5)
	n.Focused = true
	root := split(KindSplitH, 1, n)
	if got := FocusedWorkspace(root); got != n {
		t.Errorf("expected focused node, got %v", got)
	}
}

func TestFocusedContainer(t *testing.T) {
	c := FocusedContainer(sampleTree())
	if c == nil || c.ID != 20 {
		t.Fatalf("expected container 20, got %v", c)
	}
}

func TestFocusedContainer_FocusedWorkspace(t *testing.T) {
	ws := &Node{ID: 3, Type: TypeWorkspace, Focused: true}
	root := &Node{ID: 1, Type: TypeRoot, Children: []*Node{{ID: 2, Type: TypeOutput, Children: []*Node{ws}}}}
	if got := FocusedContainer(root); got != ws {
		t.Errorf("expected the workspace itself, got %v", got)
	}
}

func TestWorkspaceByName(t *testing.T) {
	root := sampleTree()
	if ws := WorkspaceByName(root, "2"); ws == nil || ws.ID != 4 {
		t.Errorf("expected workspace 2 (id 4), got %v", ws)
	}
	if ws := WorkspaceByName(root, "nope"); ws != nil {
		t.Errorf("expected nil, got %v", ws)
	}
}

func TestSearchRoot(t *testing.T) {
	root := sampleTree()
	tests := []struct {
		area SearchArea
		want NodeID
	}{
		{CurrentOutput, 3},
		{CurrentContainer, 20},
	}
	for _, tt := range tests {
		got := SearchRoot(root, tt.area)
		if got == nil || got.ID != tt.want {
			t.Errorf("SearchRoot(%v): expected %d, got %v", tt.area, tt.want, got)
		}
	}
}

func TestParseSearchArea(t *testing.T) {
	tests := []struct {
		input string
		want  SearchArea
	}{
		{"", CurrentOutput},
		{"output", CurrentOutput},
		{"all", AllOutputs},
		{"ALL", AllOutputs},
		{"container", CurrentContainer},
	}
	for _, tt := range tests {
		got, err := ParseSearchArea(tt.input)
		if err != nil {
			t.Errorf("ParseSearchArea(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSearchArea(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if _, err := ParseSearchArea("screen"); err == nil {
		t.Error("expected error for unknown area")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"splith", KindSplitH},
		{"splitv", KindSplitV},
		{"tabbed", KindTabbed},
		{"stacked", KindStacked},
		{"stacking", KindStacked},
		{"output", KindUnknown},
		{"dockarea", KindUnknown},
		{"", KindUnknown},
	}
	for _, tt := range tests {
		if got := ParseKind(tt.input); got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNode_Find(t *testing.T) {
	root := sampleTree()
	if n := root.Find(21); n == nil || n.ID != 21 {
		t.Errorf("expected node 21, got %v", n)
	}
	if n := root.Find(1000); n != nil {
		t.Errorf("expected nil, got %v", n)
	}
}
