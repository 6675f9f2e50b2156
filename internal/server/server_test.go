package server

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/easyfocus/easyfocus/internal/label"
	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/output"
	"github.com/easyfocus/easyfocus/internal/selection"
)

type fakeWM struct {
	tree      *layout.Node
	focusErr  error
	treeCalls int
	focused   []layout.NodeID
}

func (f *fakeWM) GetTree(context.Context) (*layout.Node, error) {
	f.treeCalls++
	return f.tree, nil
}

func (f *fakeWM) GetWorkspaces(context.Context) ([]layout.Workspace, error) { return nil, nil }
func (f *fakeWM) GetOutputs(context.Context) ([]layout.Output, error)       { return nil, nil }
func (f *fakeWM) Close() error                                              { return nil }

func (f *fakeWM) Focus(_ context.Context, id layout.NodeID) error {
	if f.focusErr != nil {
		return f.focusErr
	}
	f.focused = append(f.focused, id)
	return nil
}

func sampleTree() *layout.Node {
	leaf := func(id layout.NodeID, name string) *layout.Node {
		return &layout.Node{ID: id, Type: layout.TypeCon, Kind: layout.KindLeaf, Name: name}
	}
	first := leaf(11, "Firefox")
	first.Focused = true
	first.Emphasis = layout.Focused
	ws := &layout.Node{ID: 3, Type: layout.TypeWorkspace, Kind: layout.KindSplitH, Name: "1",
		Children: []*layout.Node{first, leaf(12, "htop"), leaf(13, "mutt")}}
	return &layout.Node{ID: 1, Type: layout.TypeRoot, Kind: layout.KindSplitH, Children: []*layout.Node{
		{ID: 2, Type: layout.TypeOutput, Name: "DP-1", Children: []*layout.Node{ws}},
	}}
}

func newTestServer(wm *fakeWM, ttl time.Duration) *Server {
	opts := selection.Options{Alphabet: label.AlphabetFor(label.ModeAvy)}
	return New(wm, opts, nil, Config{CacheTTL: ttl})
}

func call(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: args}}
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty result")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content %T", res.Content[0])
	}
	return tc.Text
}

func TestVisibleWindows(t *testing.T) {
	s := newTestServer(&fakeWM{tree: sampleTree()}, 0)
	res, err := s.handleVisibleWindows(context.Background(), call(nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("unexpected error: %s", text(t, res))
	}
	var got output.ListResult
	if err := yaml.Unmarshal([]byte(text(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(got.Windows))
	}
	if got.Windows[1].Label != "s" || got.Windows[1].Title != "htop" {
		t.Errorf("unexpected second window: %+v", got.Windows[1])
	}
	if got.Windows[0].Emphasis != "focused" {
		t.Errorf("expected focused emphasis, got %q", got.Windows[0].Emphasis)
	}
}

func TestVisibleWindows_Match(t *testing.T) {
	s := newTestServer(&fakeWM{tree: sampleTree()}, 0)
	res, _ := s.handleVisibleWindows(context.Background(), call(map[string]interface{}{"match": "mtt"}))
	var got output.ListResult
	if err := yaml.Unmarshal([]byte(text(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Windows) != 1 || got.Windows[0].ConID != 13 {
		t.Errorf("expected only mutt, got %+v", got.Windows)
	}
}

func TestVisibleWindows_BadArea(t *testing.T) {
	s := newTestServer(&fakeWM{tree: sampleTree()}, 0)
	res, _ := s.handleVisibleWindows(context.Background(), call(map[string]interface{}{"area": "moon"}))
	if !res.IsError {
		t.Error("expected error result for unknown area")
	}
}

func TestFocusWindow(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		want layout.NodeID
	}{
		{"label", map[string]interface{}{"label": "d"}, 13},
		{"con id", map[string]interface{}{"con-id": float64(12)}, 12},
		{"match", map[string]interface{}{"match": "fire"}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wm := &fakeWM{tree: sampleTree()}
			s := newTestServer(wm, 0)
			res, err := s.handleFocusWindow(context.Background(), call(tt.args))
			if err != nil {
				t.Fatal(err)
			}
			if res.IsError {
				t.Fatalf("unexpected error: %s", text(t, res))
			}
			if len(wm.focused) != 1 || wm.focused[0] != tt.want {
				t.Errorf("focused %v, want [%d]", wm.focused, tt.want)
			}
			if !strings.Contains(text(t, res), "ok: true") {
				t.Errorf("expected ok in result: %s", text(t, res))
			}
		})
	}
}

func TestFocusWindow_Errors(t *testing.T) {
	s := newTestServer(&fakeWM{tree: sampleTree()}, 0)
	res, _ := s.handleFocusWindow(context.Background(), call(nil))
	if !res.IsError {
		t.Error("expected error without a target")
	}
	res, _ = s.handleFocusWindow(context.Background(), call(map[string]interface{}{"label": "q"}))
	if !res.IsError || !strings.Contains(text(t, res), "not found") {
		t.Errorf("expected not found, got %s", text(t, res))
	}

	wm := &fakeWM{tree: sampleTree(), focusErr: errors.New("gone")}
	res, _ = newTestServer(wm, 0).handleFocusWindow(context.Background(), call(map[string]interface{}{"label": "a"}))
	if !res.IsError {
		t.Error("expected error when focus fails")
	}
}

func TestFocusWindow_UsesLabelsFromLastListing(t *testing.T) {
	wm := &fakeWM{tree: sampleTree()}
	s := newTestServer(wm, time.Minute)
	if _, err := s.handleVisibleWindows(context.Background(), call(nil)); err != nil {
		t.Fatal(err)
	}
	// The tree changes between listing and focusing.
	wm.tree = &layout.Node{ID: 1, Type: layout.TypeRoot}

	res, _ := s.handleFocusWindow(context.Background(), call(map[string]interface{}{"label": "s"}))
	if res.IsError {
		t.Fatalf("label from listing should resolve: %s", text(t, res))
	}
	if len(wm.focused) != 1 || wm.focused[0] != 12 {
		t.Errorf("focused %v, want [12]", wm.focused)
	}
	if _, ok := s.cache.Latest(); ok {
		t.Error("focusing should invalidate cached plans")
	}
}

func TestLayoutTree(t *testing.T) {
	s := newTestServer(&fakeWM{tree: sampleTree()}, 0)
	res, _ := s.handleLayoutTree(context.Background(), call(map[string]interface{}{"flat": true}))
	var got output.TreeFlatResult
	if err := yaml.Unmarshal([]byte(text(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Elements) != 6 {
		t.Fatalf("expected 6 containers, got %d", len(got.Elements))
	}
	if got.Elements[3].Path != "splith > output:DP-1 > workspace:1 > con" {
		t.Errorf("unexpected path %q", got.Elements[3].Path)
	}

	res, _ = s.handleLayoutTree(context.Background(), call(map[string]interface{}{"flat": true, "focused": true}))
	got = output.TreeFlatResult{}
	if err := yaml.Unmarshal([]byte(text(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Elements) != 4 || got.Elements[3].ID != 11 {
		t.Errorf("expected path to the focused window, got %+v", got.Elements)
	}
}
