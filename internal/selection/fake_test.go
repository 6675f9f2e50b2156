package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/platform"
)

type fakeWM struct {
	tree       *layout.Node
	workspaces []layout.Workspace
	outputs    []layout.Output

	treeErr  error
	focusErr error

	treeCalls int
	focused   []layout.NodeID
}

func (f *fakeWM) GetTree(context.Context) (*layout.Node, error) {
	f.treeCalls++
	if f.treeErr != nil {
		return nil, f.treeErr
	}
	return f.tree, nil
}

func (f *fakeWM) GetWorkspaces(context.Context) ([]layout.Workspace, error) {
	return f.workspaces, nil
}

func (f *fakeWM) GetOutputs(context.Context) ([]layout.Output, error) {
	return f.outputs, nil
}

func (f *fakeWM) Focus(_ context.Context, id layout.NodeID) error {
	if f.focusErr != nil {
		return f.focusErr
	}
	f.focused = append(f.focused, id)
	return nil
}

func (f *fakeWM) Close() error { return nil }

type fakeDisplay struct {
	events  []platform.Event
	waitErr error

	grabFail    string
	overlayFail string

	grabbed  map[string]int
	overlays map[platform.Overlay]platform.Label
	next     platform.Overlay
	mods     []platform.ModMask

	// peak counts seen while waiting
	labelsAtWait []int
}

func newFakeDisplay(events ...platform.Event) *fakeDisplay {
	return &fakeDisplay{
		events:   events,
		grabbed:  map[string]int{},
		overlays: map[platform.Overlay]platform.Label{},
	}
}

func keys(symbols ...string) []platform.Event {
	out := make([]platform.Event, len(symbols))
	for i, s := range symbols {
		out[i] = platform.KeyPress(s)
	}
	return out
}

func (d *fakeDisplay) GrabKey(symbol string, mods platform.ModMask) error {
	if symbol == d.grabFail {
		return fmt.Errorf("no keycode for %s", symbol)
	}
	d.grabbed[symbol]++
	d.mods = append(d.mods, mods)
	return nil
}

func (d *fakeDisplay) UngrabKey(symbol string, _ platform.ModMask) {
	d.grabbed[symbol]--
	if d.grabbed[symbol] <= 0 {
		delete(d.grabbed, symbol)
	}
}

func (d *fakeDisplay) CreateLabelOverlay(l platform.Label) (platform.Overlay, error) {
	if l.Text == d.overlayFail {
		return 0, errors.New("cannot create window")
	}
	d.next++
	d.overlays[d.next] = l
	return d.next, nil
}

func (d *fakeDisplay) DestroyOverlay(o platform.Overlay) {
	delete(d.overlays, o)
}

func (d *fakeDisplay) WaitForEvent(ctx context.Context) (platform.Event, error) {
	d.labelsAtWait = append(d.labelsAtWait, len(d.overlays))
	if d.waitErr != nil {
		return platform.Event{}, d.waitErr
	}
	if len(d.events) == 0 {
		<-ctx.Done()
		return platform.Event{}, ctx.Err()
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, nil
}

func (d *fakeDisplay) Close() error { return nil }

func (d *fakeDisplay) clean() bool {
	return len(d.grabbed) == 0 && len(d.overlays) == 0
}

func leaf(id layout.NodeID, name string) *layout.Node {
	return &layout.Node{ID: id, Type: layout.TypeCon, Kind: layout.KindSplitH, Name: name, Window: int64(id) * 1000}
}

// singleWorkspace wraps children in root > output > focused workspace.
func singleWorkspace(kind layout.Kind, children ...*layout.Node) *layout.Node {
	ws := &layout.Node{ID: 3, Type: layout.TypeWorkspace, Kind: kind, Name: "1", Children: children}
	if len(children) > 0 {
		children[0].Focused = true
	} else {
		ws.Focused = true
	}
	out := &layout.Node{ID: 2, Type: layout.TypeOutput, Name: "DP-1", Children: []*layout.Node{ws}}
	return &layout.Node{ID: 1, Type: layout.TypeRoot, Kind: layout.KindSplitH, Children: []*layout.Node{out}}
}
