package platform

import (
	"fmt"
	"strings"

	"github.com/easyfocus/easyfocus/internal/layout"
)

// ModMask is an X11 key modifier mask.
type ModMask uint16

const (
	ModShift ModMask = 1 << iota
	ModLock
	ModControl
	Mod1
	Mod2
	Mod3
	Mod4
	Mod5
)

var modNames = []struct {
	name string
	mask ModMask
}{
	{"shift", ModShift},
	{"lock", ModLock},
	{"ctrl", ModControl},
	{"mod1", Mod1},
	{"mod2", Mod2},
	{"mod3", Mod3},
	{"mod4", Mod4},
	{"mod5", Mod5},
}

// ParseModifiers converts a "mod1+shift" style string to a mask. An empty
// string means no modifier.
func ParseModifiers(s string) (ModMask, error) {
	var mask ModMask
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	for _, part := range strings.Split(s, "+") {
		switch name := strings.ToLower(strings.TrimSpace(part)); name {
		case "shift":
			mask |= ModShift
		case "lock":
			mask |= ModLock
		case "ctrl", "control":
			mask |= ModControl
		case "mod1", "alt":
			mask |= Mod1
		case "mod2":
			mask |= Mod2
		case "mod3":
			mask |= Mod3
		case "mod4", "super":
			mask |= Mod4
		case "mod5":
			mask |= Mod5
		default:
			return 0, fmt.Errorf("unknown modifier: %q (expected ctrl, shift, mod1-mod5, combined with +)", part)
		}
	}
	return mask, nil
}

func (m ModMask) String() string {
	var parts []string
	for _, n := range modNames {
		if m&n.mask != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "+")
}

// Label is one on-screen tag.
type Label struct {
	Text     string
	Position layout.Point
	Emphasis layout.Emphasis
	Title    string
}

// Overlay is a handle to a drawn label.
type Overlay uint32

// EventKind distinguishes key presses from other display events.
type EventKind int

const (
	EventKeyPress EventKind = iota
	EventAmbient
)

// AmbientKind classifies events that are not key presses.
type AmbientKind int

const (
	AmbientOther AmbientKind = iota
	AmbientFocusChange
	AmbientGeometryChange
	AmbientExpose
)

func (k AmbientKind) String() string {
	switch k {
	case AmbientFocusChange:
		return "focus-change"
	case AmbientGeometryChange:
		return "geometry-change"
	case AmbientExpose:
		return "expose"
	default:
		return "other"
	}
}

// Event is one input event from the display.
type Event struct {
	Kind    EventKind
	Symbol  string
	Ambient AmbientKind
}

// KeyPress returns a key press event for symbol.
func KeyPress(symbol string) Event {
	return Event{Kind: EventKeyPress, Symbol: symbol}
}

// Ambient returns an ambient event of the given kind.
func Ambient(kind AmbientKind) Event {
	return Event{Kind: EventAmbient, Ambient: kind}
}
