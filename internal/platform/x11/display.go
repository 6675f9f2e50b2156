// Package x11 draws labels as override-redirect windows and grabs keys on
// the X root window.
package x11

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/render"
)

func init() {
	platform.RegisterDisplay("x11", func(opts platform.DisplayOptions) (platform.Display, error) {
		return Open(opts)
	})
}

// ErrClosed is returned by WaitForEvent after the X connection went away.
var ErrClosed = errors.New("x11 connection closed")

type overlay struct {
	win *xwindow.Window
	img *xgraphics.Image
}

// Display is a platform.Display on an X server.
type Display struct {
	xu      *xgbutil.XUtil
	root    xproto.Window
	palette render.Palette

	mu       sync.Mutex
	grabbed  map[grabKey][]xproto.Keycode
	overlays map[platform.Overlay]*overlay

	events chan xgb.Event
	done   chan struct{}
	once   sync.Once
}

type grabKey struct {
	symbol string
	mods   platform.ModMask
}

// Open connects to $DISPLAY and starts reading events.
func Open(opts platform.DisplayOptions) (*Display, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("cannot open display: %w", err)
	}
	keybind.Initialize(xu)

	d := &Display{
		xu:       xu,
		root:     xu.RootWin(),
		palette:  opts.Palette,
		grabbed:  map[grabKey][]xproto.Keycode{},
		overlays: map[platform.Overlay]*overlay{},
		events:   make(chan xgb.Event, 64),
		done:     make(chan struct{}),
	}

	// Root geometry changes are reported as StructureNotify.
	err = xproto.ChangeWindowAttributesChecked(xu.Conn(), d.root,
		xproto.CwEventMask, []uint32{xproto.EventMaskStructureNotify}).Check()
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("cannot watch root window: %w", err)
	}

	go d.pump()
	return d, nil
}

func (d *Display) pump() {
	defer close(d.events)
	for {
		ev, xerr := d.xu.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return
		}
		if xerr != nil {
			continue
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// GrabKey grabs every keycode producing symbol on the root window.
func (d *Display) GrabKey(symbol string, mods platform.ModMask) error {
	codes := keybind.StrToKeycodes(d.xu, symbol)
	if len(codes) == 0 {
		return fmt.Errorf("no keycode for %q", symbol)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	var done []xproto.Keycode
	for _, code := range codes {
		if err := keybind.GrabChecked(d.xu, d.root, uint16(mods), code); err != nil {
			for _, c := range done {
				keybind.Ungrab(d.xu, d.root, uint16(mods), c)
			}
			return fmt.Errorf("grab %q: %w", symbol, err)
		}
		done = append(done, code)
	}
	k := grabKey{symbol, mods}
	d.grabbed[k] = append(d.grabbed[k], done...)
	return nil
}

// UngrabKey releases what GrabKey acquired for symbol and mods.
func (d *Display) UngrabKey(symbol string, mods platform.ModMask) {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := grabKey{symbol, mods}
	for _, code := range d.grabbed[k] {
		keybind.Ungrab(d.xu, d.root, uint16(mods), code)
	}
	delete(d.grabbed, k)
}

// CreateLabelOverlay maps a borderless window showing the label text.
func (d *Display) CreateLabelOverlay(l platform.Label) (platform.Overlay, error) {
	img := render.Label(l.Text, d.palette.For(l.Emphasis))
	b := img.Bounds()

	win, err := xwindow.Generate(d.xu)
	if err != nil {
		return 0, fmt.Errorf("cannot allocate window: %w", err)
	}
	err = win.CreateChecked(d.root, l.Position.X, l.Position.Y, b.Dx(), b.Dy(),
		xproto.CwOverrideRedirect, 1)
	if err != nil {
		return 0, fmt.Errorf("cannot create window: %w", err)
	}

	ximg := xgraphics.NewConvert(d.xu, img)
	if err := ximg.XSurfaceSet(win.Id); err != nil {
		win.Destroy()
		return 0, fmt.Errorf("cannot draw label: %w", err)
	}
	ximg.XDraw()
	win.Map()
	ximg.XPaint(win.Id)

	d.mu.Lock()
	d.overlays[platform.Overlay(win.Id)] = &overlay{win: win, img: ximg}
	d.mu.Unlock()
	return platform.Overlay(win.Id), nil
}

// DestroyOverlay unmaps and frees a label window.
func (d *Display) DestroyOverlay(o platform.Overlay) {
	d.mu.Lock()
	ov, ok := d.overlays[o]
	delete(d.overlays, o)
	d.mu.Unlock()
	if !ok {
		return
	}
	ov.img.Destroy()
	ov.win.Destroy()
}

// WaitForEvent returns the next key press or ambient event.
func (d *Display) WaitForEvent(ctx context.Context) (platform.Event, error) {
	for {
		select {
		case <-ctx.Done():
			return platform.Event{}, ctx.Err()
		case ev, ok := <-d.events:
			if !ok {
				return platform.Event{}, ErrClosed
			}
			if out, ok := translate(ev, d.root, d.lookup); ok {
				return out, nil
			}
		}
	}
}

func (d *Display) lookup(code xproto.Keycode) string {
	return keybind.LookupString(d.xu, 0, code)
}

// Close releases every grab and overlay and disconnects.
func (d *Display) Close() error {
	d.once.Do(func() {
		d.mu.Lock()
		ids := make([]platform.Overlay, 0, len(d.overlays))
		for id := range d.overlays {
			ids = append(ids, id)
		}
		keys := make([]grabKey, 0, len(d.grabbed))
		for k := range d.grabbed {
			keys = append(keys, k)
		}
		d.mu.Unlock()

		for _, id := range ids {
			d.DestroyOverlay(id)
		}
		for _, k := range keys {
			d.UngrabKey(k.symbol, k.mods)
		}
		close(d.done)
		d.xu.Conn().Close()
	})
	return nil
}

// translate maps an X event to a display event. Key releases and events
// the selection loop has no use for are dropped.
func translate(ev xgb.Event, root xproto.Window, lookup func(xproto.Keycode) string) (platform.Event, bool) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		sym := lookup(e.Detail)
		if sym == "" {
			return platform.Event{}, false
		}
		return platform.KeyPress(sym), true
	case xproto.KeyReleaseEvent:
		return platform.Event{}, false
	case xproto.ConfigureNotifyEvent:
		if e.Window == root {
			return platform.Ambient(platform.AmbientGeometryChange), true
		}
		return platform.Ambient(platform.AmbientOther), true
	case xproto.ExposeEvent:
		return platform.Ambient(platform.AmbientExpose), true
	case xproto.FocusInEvent, xproto.FocusOutEvent:
		return platform.Ambient(platform.AmbientFocusChange), true
	default:
		return platform.Ambient(platform.AmbientOther), true
	}
}
