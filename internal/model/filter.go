package model

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterWindows returns the windows whose title fuzzily matches query, in
// their original order. An empty query matches everything.
func FilterWindows(windows []Window, query string) []Window {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return windows
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles(windows))
	matches := make(map[int]bool, len(ranks))
	for _, r := range ranks {
		matches[r.OriginalIndex] = true
	}
	var result []Window
	for i, w := range windows {
		if matches[i] {
			result = append(result, w)
		}
	}
	return result
}

// BestMatch picks the window whose title best matches query: an exact
// title first, then a prefix, then the closest fuzzy match. Ties go to the
// earlier window.
func BestMatch(windows []Window, query string) (Window, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(windows) == 0 {
		return Window{}, false
	}
	for _, w := range windows {
		if strings.EqualFold(w.Title, trimmed) {
			return w, true
		}
	}
	lower := strings.ToLower(trimmed)
	for _, w := range windows {
		if strings.HasPrefix(strings.ToLower(w.Title), lower) {
			return w, true
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles(windows))
	if len(ranks) == 0 {
		return Window{}, false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return windows[best.OriginalIndex], true
}

// FilterElements keeps the elements whose name fuzzily matches query along
// with their ancestors. Non-matching subtrees are dropped.
func FilterElements(elements []Element, query string) []Element {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return elements
	}
	var result []Element
	for _, el := range elements {
		childMatches := FilterElements(el.Children, trimmed)
		matched := el.Name != "" && fuzzy.MatchNormalizedFold(trimmed, el.Name)
		if matched || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

// FilterByFocused keeps the path from the roots to the focused element.
func FilterByFocused(elements []Element) []Element {
	var result []Element
	for _, el := range elements {
		childMatches := FilterByFocused(el.Children)
		if el.Focused || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

func titles(windows []Window) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.Title
	}
	return out
}
