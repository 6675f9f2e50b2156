package render

import (
	"fmt"
	"strings"

	"github.com/easyfocus/easyfocus/internal/layout"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scheme is the colors of one label.
type Scheme struct {
	Background colorful.Color
	Foreground colorful.Color
}

// Palette holds a scheme per emphasis.
type Palette struct {
	Urgent    Scheme
	Focused   Scheme
	Unfocused Scheme
}

// DefaultPalette matches i3's default client colors.
func DefaultPalette() Palette {
	return Palette{
		Urgent:    Scheme{Background: mustHex("#900000"), Foreground: mustHex("#ffffff")},
		Focused:   Scheme{Background: mustHex("#285577"), Foreground: mustHex("#ffffff")},
		Unfocused: Scheme{Background: mustHex("#222222"), Foreground: mustHex("#888888")},
	}
}

// For returns the scheme used for windows with emphasis e.
func (p Palette) For(e layout.Emphasis) Scheme {
	switch e {
	case layout.Urgent:
		return p.Urgent
	case layout.Focused:
		return p.Focused
	default:
		return p.Unfocused
	}
}

// ParseColor parses an RGB hex color, with or without a leading '#'.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("cannot parse rgb string: %q (expected RRGGBB)", strings.TrimPrefix(s, "#"))
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("cannot parse rgb string: %q: %w", strings.TrimPrefix(s, "#"), err)
	}
	return c, nil
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
