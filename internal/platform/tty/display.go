// Package tty is a display for sessions without an X server: labels are
// listed on the terminal and keys are read from it.
package tty

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/render"
)

func init() {
	platform.RegisterDisplay("tty", func(opts platform.DisplayOptions) (platform.Display, error) {
		return New(opts), nil
	})
}

const defaultCancelKey = "Escape"

// Display is a platform.Display on the controlling terminal.
type Display struct {
	palette   render.Palette
	cancelKey string

	// Input and Output override the terminal, mainly for tests.
	Input  io.Reader
	Output io.Writer

	mu      sync.Mutex
	grabbed map[string]string
	labels  map[platform.Overlay]platform.Label
	next    platform.Overlay
}

// New returns a terminal display. Nothing is drawn until WaitForEvent.
func New(opts platform.DisplayOptions) *Display {
	cancel := opts.CancelKey
	if cancel == "" {
		cancel = defaultCancelKey
	}
	return &Display{
		palette:   opts.Palette,
		cancelKey: cancel,
		Output:    os.Stderr,
		grabbed:   map[string]string{},
		labels:    map[platform.Overlay]platform.Label{},
	}
}

// GrabKey starts reporting symbol pressed with mods.
func (d *Display) GrabKey(symbol string, mods platform.ModMask) error {
	k, err := keyString(symbol, mods)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.grabbed[k] = symbol
	return nil
}

// UngrabKey stops reporting symbol.
func (d *Display) UngrabKey(symbol string, mods platform.ModMask) {
	k, err := keyString(symbol, mods)
	if err != nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.grabbed, k)
}

// CreateLabelOverlay adds a label to the next rendered list.
func (d *Display) CreateLabelOverlay(l platform.Label) (platform.Overlay, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	d.labels[d.next] = l
	return d.next, nil
}

// DestroyOverlay removes a label.
func (d *Display) DestroyOverlay(o platform.Overlay) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.labels, o)
}

// WaitForEvent runs the label list until a grabbed key is pressed, the
// terminal changes size or ctx is done.
func (d *Display) WaitForEvent(ctx context.Context) (platform.Event, error) {
	m := d.snapshot()

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(d.Output), tea.WithReportFocus()}
	if d.Input != nil {
		opts = append(opts, tea.WithInput(d.Input))
	} else {
		opts = append(opts, tea.WithInputTTY(), tea.WithAltScreen())
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return platform.Event{}, ctx.Err()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return platform.Event{}, context.Canceled
		}
		return platform.Event{}, fmt.Errorf("terminal: %w", err)
	}
	fm, ok := final.(model)
	if !ok || !fm.done {
		return platform.Event{}, errors.New("terminal closed without input")
	}
	return fm.event, nil
}

func (d *Display) snapshot() model {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]platform.Overlay, 0, len(d.labels))
	for id := range d.labels {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	labels := make([]platform.Label, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, d.labels[id])
	}
	keys := make(map[string]string, len(d.grabbed))
	for k, v := range d.grabbed {
		keys[k] = v
	}
	return newModel(labels, keys, d.cancelKey, d.palette)
}

// Close forgets all grabs and labels.
func (d *Display) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.grabbed = map[string]string{}
	d.labels = map[platform.Overlay]platform.Label{}
	return nil
}
