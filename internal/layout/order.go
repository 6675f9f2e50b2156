package layout

import (
	"fmt"
	"sort"
	"strings"
)

// SortMethod orders workspaces across outputs.
type SortMethod int

const (
	ByLocation SortMethod = iota
	ByNumber
)

func (m SortMethod) String() string {
	if m == ByNumber {
		return "num"
	}
	return "location"
}

// ParseSortMethod converts a config value to a SortMethod.
func ParseSortMethod(s string) (SortMethod, error) {
	switch strings.ToLower(s) {
	case "", "location":
		return ByLocation, nil
	case "num", "number":
		return ByNumber, nil
	default:
		return ByLocation, fmt.Errorf("unknown sort method: %q (expected location or num)", s)
	}
}

// Order sorts workspaces and keeps only the visible ones.
//
// ByLocation reads outputs row by row, top to bottom then left to right.
// Workspaces whose output is unknown follow the others in their original
// order. ByNumber sorts by workspace number. Both sorts are stable.
func Order(workspaces []Workspace, outputs []Output, method SortMethod) ([]Workspace, []Diagnostic) {
	var diags []Diagnostic
	var sorted []Workspace

	switch method {
	case ByNumber:
		sorted = append(sorted, workspaces...)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Num < sorted[j].Num
		})
	default:
		rects := make(map[string]Rect, len(outputs))
		for _, o := range outputs {
			rects[o.Name] = o.Rect
		}
		var resolved, unresolved []Workspace
		for _, ws := range workspaces {
			if _, ok := rects[ws.Output]; ok {
				resolved = append(resolved, ws)
				continue
			}
			unresolved = append(unresolved, ws)
			diags = append(diags, Diagnostic{
				Kind:    UnresolvedOutput,
				Message: fmt.Sprintf("workspace %q is on unknown output %q", ws.Name, ws.Output),
			})
		}
		sort.SliceStable(resolved, func(i, j int) bool {
			a, b := rects[resolved[i].Output], rects[resolved[j].Output]
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		})
		sorted = append(resolved, unresolved...)
	}

	var visible []Workspace
	for _, ws := range sorted {
		if ws.Visible {
			visible = append(visible, ws)
		}
	}
	return visible, diags
}
