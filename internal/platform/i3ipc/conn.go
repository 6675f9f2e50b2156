// Package i3ipc talks to i3 and sway over their IPC socket.
package i3ipc

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"
)

const magic = "i3-ipc"

const headerLen = len(magic) + 8

// maxPayload bounds a single reply.
const maxPayload = 64 << 20

// MessageType is an IPC request type.
type MessageType uint32

const (
	RunCommand    MessageType = 0
	GetWorkspaces MessageType = 1
	Subscribe     MessageType = 2
	GetOutputs    MessageType = 3
	GetTree       MessageType = 4
	GetVersion    MessageType = 7
)

// ErrNoSocket is returned when no window manager socket can be located.
var ErrNoSocket = errors.New("cannot find i3 or sway IPC socket (set I3SOCK or SWAYSOCK)")

// SocketPath returns the IPC socket of the running window manager, from
// I3SOCK, SWAYSOCK, or the window manager binary itself.
func SocketPath(ctx context.Context) (string, error) {
	for _, env := range []string{"I3SOCK", "SWAYSOCK"} {
		if p := os.Getenv(env); p != "" {
			return p, nil
		}
	}
	for _, bin := range []string{"i3", "sway"} {
		out, err := exec.CommandContext(ctx, bin, "--get-socketpath").Output()
		if err != nil {
			continue
		}
		if p := strings.TrimSpace(string(out)); p != "" {
			return p, nil
		}
	}
	return "", ErrNoSocket
}

// Client is a connection to the window manager. It is safe for concurrent
// use; requests are serialized.
type Client struct {
	mu   sync.Mutex
	conn net.Conn
}

// Dial connects to the socket at path.
func Dial(ctx context.Context, path string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", path, err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an established connection.
func NewClient(conn net.Conn) *Client {
	return &Client{conn: conn}
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Send writes one request and returns the payload of its reply.
func (c *Client) Send(ctx context.Context, t MessageType, payload []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	deadline, _ := ctx.Deadline()
	if err := c.conn.SetDeadline(deadline); err != nil && !errors.Is(err, os.ErrNoDeadline) {
		return nil, fmt.Errorf("set deadline: %w", err)
	}
	defer c.conn.SetDeadline(time.Time{})

	if err := writeMessage(c.conn, t, payload); err != nil {
		return nil, fmt.Errorf("send %s: %w", t, err)
	}

	rt, reply, err := readMessage(c.conn)
	if err != nil {
		return nil, fmt.Errorf("read %s reply: %w", t, err)
	}
	if rt != t {
		return nil, fmt.Errorf("read %s reply: got message type %d", t, uint32(rt))
	}
	return reply, nil
}

func (t MessageType) String() string {
	switch t {
	case RunCommand:
		return "RUN_COMMAND"
	case GetWorkspaces:
		return "GET_WORKSPACES"
	case Subscribe:
		return "SUBSCRIBE"
	case GetOutputs:
		return "GET_OUTPUTS"
	case GetTree:
		return "GET_TREE"
	case GetVersion:
		return "GET_VERSION"
	default:
		return fmt.Sprintf("message(%d)", uint32(t))
	}
}

func writeMessage(w io.Writer, t MessageType, payload []byte) error {
	msg := make([]byte, headerLen+len(payload))
	copy(msg, magic)
	binary.LittleEndian.PutUint32(msg[6:10], uint32(len(payload)))
	binary.LittleEndian.PutUint32(msg[10:14], uint32(t))
	copy(msg[headerLen:], payload)
	_, err := w.Write(msg)
	return err
}

func readMessage(r io.Reader) (MessageType, []byte, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	if !bytes.Equal(header[:len(magic)], []byte(magic)) {
		return 0, nil, fmt.Errorf("bad magic %q", header[:len(magic)])
	}
	n := binary.LittleEndian.Uint32(header[6:10])
	t := MessageType(binary.LittleEndian.Uint32(header[10:14]))
	if n > maxPayload {
		return 0, nil, fmt.Errorf("reply of %d bytes exceeds limit", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return t, payload, nil
}
