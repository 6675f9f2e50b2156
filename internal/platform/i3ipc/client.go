package i3ipc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/platform"
)

func init() {
	platform.NewWindowManagerFunc = func(ctx context.Context) (platform.WindowManager, error) {
		path, err := SocketPath(ctx)
		if err != nil {
			return nil, err
		}
		return Dial(ctx, path)
	}
}

var _ platform.WindowManager = (*Client)(nil)

// GetTree fetches and converts the container tree.
func (c *Client) GetTree(ctx context.Context) (*layout.Node, error) {
	var root con
	if err := c.query(ctx, GetTree, &root); err != nil {
		return nil, err
	}
	return convert(&root, nil), nil
}

// GetWorkspaces lists workspaces in the window manager's order.
func (c *Client) GetWorkspaces(ctx context.Context) ([]layout.Workspace, error) {
	var reply []workspaceReply
	if err := c.query(ctx, GetWorkspaces, &reply); err != nil {
		return nil, err
	}
	out := make([]layout.Workspace, 0, len(reply))
	for _, w := range reply {
		out = append(out, layout.Workspace{
			Name:    w.Name,
			Num:     w.Num,
			Output:  w.Output,
			Rect:    w.Rect.layout(),
			Visible: w.Visible,
			Focused: w.Focused,
		})
	}
	return out, nil
}

// GetOutputs lists outputs, including inactive ones.
func (c *Client) GetOutputs(ctx context.Context) ([]layout.Output, error) {
	var reply []outputReply
	if err := c.query(ctx, GetOutputs, &reply); err != nil {
		return nil, err
	}
	out := make([]layout.Output, 0, len(reply))
	for _, o := range reply {
		out = append(out, layout.Output{Name: o.Name, Rect: o.Rect.layout(), Active: o.Active})
	}
	return out, nil
}

// Focus focuses the container with the given id.
func (c *Client) Focus(ctx context.Context, id layout.NodeID) error {
	return c.Command(ctx, fmt.Sprintf("[con_id=%d] focus", id))
}

// Command runs a window manager command and fails on the first unsuccessful
// result.
func (c *Client) Command(ctx context.Context, cmd string) error {
	var results []commandReply
	if err := c.query(ctx, RunCommand, &results, []byte(cmd)...); err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("command %q: empty reply", cmd)
	}
	for _, r := range results {
		if !r.Success {
			return fmt.Errorf("command %q: %s", cmd, r.Error)
		}
	}
	return nil
}

func (c *Client) query(ctx context.Context, t MessageType, v interface{}, payload ...byte) error {
	reply, err := c.Send(ctx, t, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(reply, v); err != nil {
		return fmt.Errorf("decode %s reply: %w", t, err)
	}
	return nil
}
