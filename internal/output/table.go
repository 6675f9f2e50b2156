package output

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Tabler is implemented by results that have a table rendering.
type Tabler interface {
	Table() *uitable.Table
}

// PrintTable writes t's table to Out.
func PrintTable(t Tabler) error {
	_, err := fmt.Fprintln(Out, t.Table())
	return err
}

var (
	bold      = color.New(color.Bold)
	labelText = color.New(color.FgHiYellow, color.Bold)
	emphasis  = map[string]*color.Color{
		"urgent":    color.New(color.FgRed),
		"focused":   color.New(color.FgCyan),
		"unfocused": color.New(color.Faint),
	}
)

// Table renders the windows one per row.
func (r ListResult) Table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("LABEL"), bold.Sprint("CON_ID"), bold.Sprint("WINDOW"), bold.Sprint("EMPHASIS"), bold.Sprint("WORKSPACE"), bold.Sprint("TITLE"))
	for _, w := range r.Windows {
		lbl := "-"
		if w.Label != "" {
			lbl = labelText.Sprint(w.Label)
		}
		xid := ""
		if w.XID != 0 {
			xid = strconv.FormatInt(w.XID, 10)
		}
		em := w.Emphasis
		if c, ok := emphasis[em]; ok {
			em = c.Sprint(em)
		}
		tbl.AddRow(lbl, strconv.FormatInt(w.ConID, 10), xid, em, w.Workspace, w.Title)
	}
	return tbl
}

// Table renders the flattened tree one container per row.
func (r TreeFlatResult) Table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.AddRow(bold.Sprint("CON_ID"), bold.Sprint("PATH"), bold.Sprint("NAME"))
	for _, el := range r.Elements {
		name := el.Name
		if el.Focused {
			name = labelText.Sprint(name)
		}
		tbl.AddRow(strconv.FormatInt(el.ID, 10), el.Path, name)
	}
	return tbl
}
