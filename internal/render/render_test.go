package render

import (
	"image/color"
	"testing"

	"github.com/easyfocus/easyfocus/internal/layout"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b uint8
	}{
		{"FF00FF", 255, 0, 255},
		{"#285577", 0x28, 0x55, 0x77},
		{"000000", 0, 0, 0},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.input, err)
			continue
		}
		r, g, b := c.RGB255()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ParseColor(%q) = %d,%d,%d, want %d,%d,%d", tt.input, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "FFF", "GG0000", "#12345678"} {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("ParseColor(%q) should fail", s)
		}
	}
}

func TestPalette_For(t *testing.T) {
	p := DefaultPalette()
	if p.For(layout.Urgent) != p.Urgent {
		t.Error("urgent scheme mismatch")
	}
	if p.For(layout.Focused) != p.Focused {
		t.Error("focused scheme mismatch")
	}
	if p.For(layout.Unfocused) != p.Unfocused {
		t.Error("unfocused scheme mismatch")
	}
}

func TestLabel_Size(t *testing.T) {
	w1, h1 := Size("a")
	w2, h2 := Size("ab")
	if w2 <= w1 {
		t.Errorf("wider text should give wider label: %d vs %d", w1, w2)
	}
	if h1 != h2 {
		t.Errorf("label height should not depend on text: %d vs %d", h1, h2)
	}
}

func TestLabel_Colors(t *testing.T) {
	s := DefaultPalette().Urgent
	img := Label("x", s)
	w, h := Size("x")
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}
	bg := img.RGBAAt(0, 0)
	if bg != (color.RGBA{R: 0x90, G: 0, B: 0, A: 255}) {
		t.Errorf("expected urgent background at corner, got %v", bg)
	}

	found := false
	for y := 0; y < h && !found; y++ {
		for x := 0; x < w; x++ {
			if img.RGBAAt(x, y) != bg {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected glyph pixels in label")
	}
}
