package tty

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/easyfocus/easyfocus/internal/platform"
	"github.com/easyfocus/easyfocus/internal/render"
)

// model shows the current labels and waits for one grabbed key.
type model struct {
	labels    []platform.Label
	keys      map[string]string
	cancelKey string
	palette   render.Palette

	width, height int
	sized         bool

	event platform.Event
	done  bool
}

func newModel(labels []platform.Label, keys map[string]string, cancelKey string, p render.Palette) model {
	sorted := append([]platform.Label(nil), labels...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Position, sorted[j].Position
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return model{labels: sorted, keys: keys, cancelKey: cancelKey, palette: p}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := msg.String()
		if sym, ok := m.keys[k]; ok {
			return m.finish(platform.KeyPress(sym))
		}
		if k == "ctrl+c" {
			return m.finish(platform.KeyPress(m.cancelKey))
		}
	case tea.WindowSizeMsg:
		resized := m.sized && (msg.Width != m.width || msg.Height != m.height)
		m.width, m.height, m.sized = msg.Width, msg.Height, true
		if resized {
			return m.finish(platform.Ambient(platform.AmbientGeometryChange))
		}
	case tea.FocusMsg, tea.BlurMsg:
		return m.finish(platform.Ambient(platform.AmbientFocusChange))
	}
	return m, nil
}

func (m model) finish(ev platform.Event) (tea.Model, tea.Cmd) {
	m.event = ev
	m.done = true
	return m, tea.Quit
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	hintStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

func (m model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select a window"))
	b.WriteString("\n")
	for _, l := range m.labels {
		s := m.palette.For(l.Emphasis)
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(s.Background.Hex())).
			Foreground(lipgloss.Color(s.Foreground.Hex())).
			Padding(0, 1).
			Render(l.Text)
		fmt.Fprintf(&b, "%s %s\n", chip, l.Title)
	}
	b.WriteString(hintStyle.Render(fmt.Sprintf("%s to cancel", m.cancelKey)))
	return b.String()
}

// keyString returns the key name bubbletea reports for symbol pressed with
// mods. Only ctrl and alt can be seen on a terminal.
func keyString(symbol string, mods platform.ModMask) (string, error) {
	if extra := mods &^ (platform.ModControl | platform.Mod1); extra != 0 {
		return "", fmt.Errorf("modifier %s is not available on a terminal", extra)
	}
	k := keyName(symbol)
	if mods&platform.ModControl != 0 {
		k = "ctrl+" + k
	}
	if mods&platform.Mod1 != 0 {
		k = "alt+" + k
	}
	return k, nil
}

var keyNames = map[string]string{
	"Escape":    "esc",
	"Return":    "enter",
	"Tab":       "tab",
	"space":     " ",
	"BackSpace": "backspace",
	"Delete":    "delete",
	"Up":        "up",
	"Down":      "down",
	"Left":      "left",
	"Right":     "right",
	"Home":      "home",
	"End":       "end",
}

func keyName(symbol string) string {
	if n, ok := keyNames[symbol]; ok {
		return n
	}
	return strings.ToLower(symbol)
}
