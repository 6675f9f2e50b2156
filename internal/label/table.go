package label

import "github.com/easyfocus/easyfocus/internal/layout"

// Entry pairs a key with the window it selects.
type Entry struct {
	Key    string
	Window layout.VisibleWindow
}

// Table maps keys to windows for one selection round.
type Table struct {
	entries   []Entry
	byKey     map[string]int
	unlabeled []layout.VisibleWindow
}

// Assign labels windows in order with the alphabet's keys. Windows beyond
// the alphabet's length stay unlabeled.
func Assign(windows []layout.VisibleWindow, alphabet Alphabet) *Table {
	t := &Table{byKey: make(map[string]int, len(alphabet))}
	for i, w := range windows {
		if i >= len(alphabet) {
			t.unlabeled = append(t.unlabeled, windows[i:]...)
			break
		}
		t.byKey[alphabet[i]] = len(t.entries)
		t.entries = append(t.entries, Entry{Key: alphabet[i], Window: w})
	}
	return t
}

// Lookup returns the window labeled with key.
func (t *Table) Lookup(key string) (layout.VisibleWindow, bool) {
	i, ok := t.byKey[key]
	if !ok {
		return layout.VisibleWindow{}, false
	}
	return t.entries[i].Window, true
}

// KeyFor returns the key assigned to the window with the given id.
func (t *Table) KeyFor(id layout.NodeID) (string, bool) {
	for _, e := range t.entries {
		if e.Window.Node.ID == id {
			return e.Key, true
		}
	}
	return "", false
}

// Entries returns the labeled windows in assignment order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len is the number of labeled windows.
func (t *Table) Len() int {
	return len(t.entries)
}

// Unlabeled returns the windows that did not receive a key.
func (t *Table) Unlabeled() []layout.VisibleWindow {
	return append([]layout.VisibleWindow(nil), t.unlabeled...)
}
