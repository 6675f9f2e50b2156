package tty

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/easyfocus/easyfocus/internal/layout"
	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/render"
)

func testModel() model {
	labels := []platform.Label{
		{Text: "s", Title: "editor", Position: layout.Point{X: 800, Y: 0}},
		{Text: "a", Title: "browser", Position: layout.Point{X: 0, Y: 0}, Emphasis: layout.Focused},
	}
	keys := map[string]string{"a": "a", "s": "s", "esc": "Escape"}
	return newModel(labels, keys, "Escape", render.DefaultPalette())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_GrabbedKeyQuits(t *testing.T) {
	next, cmd := testModel().Update(runes("s"))
	m := next.(model)
	if !m.done || m.event != platform.KeyPress("s") {
		t.Fatalf("expected key press s, got %+v", m.event)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModel_UngrabbedKeyIgnored(t *testing.T) {
	next, cmd := testModel().Update(runes("z"))
	if next.(model).done || cmd != nil {
		t.Error("ungrabbed key must not end the wait")
	}
}

func TestModel_EscapeAndInterrupt(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := testModel().Update(tt.msg)
			if got := next.(model).event; got != platform.KeyPress("Escape") {
				t.Errorf("got %+v, want Escape", got)
			}
		})
	}
}

func TestModel_ResizeIsGeometryChange(t *testing.T) {
	next, cmd := testModel().Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if next.(model).done || cmd != nil {
		t.Fatal("initial size must not end the wait")
	}
	next, _ = next.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if next.(model).done {
		t.Fatal("same size must not end the wait")
	}
	next, _ = next.Update(tea.WindowSizeMsg{Width: 120, Height: 24})
	if got := next.(model).event; got != platform.Ambient(platform.AmbientGeometryChange) {
		t.Errorf("got %+v, want geometry change", got)
	}
}

func TestModel_ViewListsLabelsInScreenOrder(t *testing.T) {
	view := testModel().View()
	browser := strings.Index(view, "browser")
	editor := strings.Index(view, "editor")
	if browser < 0 || editor < 0 {
		t.Fatalf("expected both titles in view:\n%s", view)
	}
	if browser > editor {
		t.Errorf("expected leftmost window first:\n%s", view)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		symbol string
		mods   platform.ModMask
		want   string
	}{
		{"a", 0, "a"},
		{"1", 0, "1"},
		{"Escape", 0, "esc"},
		{"Return", 0, "enter"},
		{"a", platform.ModControl, "ctrl+a"},
		{"a", platform.Mod1, "alt+a"},
		{"a", platform.ModControl | platform.Mod1, "alt+ctrl+a"},
	}
	for _, tt := range tests {
		got, err := keyString(tt.symbol, tt.mods)
		if err != nil {
			t.Errorf("keyString(%q, %v): %v", tt.symbol, tt.mods, err)
			continue
		}
		if got != tt.want {
			t.Errorf("keyString(%q, %v) = %q, want %q", tt.symbol, tt.mods, got, tt.want)
		}
	}
	if _, err := keyString("a", platform.Mod4); err == nil {
		t.Error("expected error for mod4 on a terminal")
	}
}

func TestDisplay_GrabAndOverlayBookkeeping(t *testing.T) {
	d := New(platform.DisplayOptions{Palette: render.DefaultPalette()})
	if err := d.GrabKey("a", platform.Mod1); err != nil {
		t.Fatal(err)
	}
	if err := d.GrabKey("a", platform.Mod4); err == nil {
		t.Error("expected mod4 grab to fail")
	}
	o, err := d.CreateLabelOverlay(platform.Label{Text: "a", Title: "one"})
	if err != nil {
		t.Fatal(err)
	}
	m := d.snapshot()
	if m.keys["alt+a"] != "a" || len(m.labels) != 1 {
		t.Errorf("unexpected snapshot: %+v", m)
	}
	d.UngrabKey("a", platform.Mod1)
	d.DestroyOverlay(o)
	m = d.snapshot()
	if len(m.keys) != 0 || len(m.labels) != 0 {
		t.Errorf("expected empty snapshot, got %+v", m)
	}
}

func TestDisplay_WaitForEventReadsInput(t *testing.T) {
	d := New(platform.DisplayOptions{Palette: render.DefaultPalette()})
	d.Input = strings.NewReader("s")
	d.Output = &bytes.Buffer{}
	for _, k := range []string{"a", "s", "Escape"} {
		if err := d.GrabKey(k, 0); err != nil {
			t.Fatal(err)
		}
	}

	ev, err := d.WaitForEvent(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if ev != platform.KeyPress("s") {
		t.Errorf("got %+v, want key press s", ev)
	}
}

func TestDisplay_DefaultCancelKey(t *testing.T) {
	d := New(platform.DisplayOptions{})
	if d.cancelKey != "Escape" {
		t.Errorf("expected Escape, got %q", d.cancelKey)
	}
}
