package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/sports/internal/controller"
	"github.com/idilsaglam/sports/internal/model"
	"github.com/idilsaglam/sports/internal/store"
)

// row adapts a model.Item to bubbles/list.Item.
type row struct {
	item  model.Item
	glyph string
}

func (r row) Title() string       { return r.item.Title }
func (r row) Description() string { return r.item.Description }
func (r row) FilterValue() string { return r.item.Title }

// rowDelegate draws a sport as two lines: glyph and title, then description.
type rowDelegate struct {
	grabbed *bool
}

func (d rowDelegate) Height() int                               { return 2 }
func (d rowDelegate) Spacing() int                              { return 1 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	prefix := "  "
	title := rowTitleStyle.Render(r.item.Title)
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		if d.grabbed != nil && *d.grabbed {
			prefix = grabbedStyle.Render("≡ ")
			title = grabbedStyle.Render(r.item.Title)
		}
	}
	clip := lipgloss.NewStyle().MaxWidth(max(m.Width(), 1))
	line1 := clip.Render(fmt.Sprintf("%s%s %s", prefix, r.glyph, title))
	line2 := clip.Render("    " + mutedStyle.Render(r.item.Description))
	fmt.Fprint(w, line1+"\n"+line2)
}

// rowView is the list renderer. It reads the store only through the
// RowSource it is bound to and applies change events row by row.
type rowView struct {
	list    list.Model
	rows    store.RowSource
	glyph   func(model.ImageRef) string
	pending []tea.Cmd
}

var _ controller.Renderer = (*rowView)(nil)

func newRowView(glyph func(model.ImageRef) string, grabbed *bool, extraHelp func() []key.Binding) *rowView {
	l := list.New(nil, rowDelegate{grabbed: grabbed}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("sport", "sports")
	if extraHelp != nil {
		l.AdditionalShortHelpKeys = extraHelp
		l.AdditionalFullHelpKeys = extraHelp
	}
	return &rowView{list: l, glyph: glyph}
}

func (v *rowView) Bind(rows store.RowSource) { v.rows = rows }

func (v *rowView) ItemMoved(from, to int) {
	v.list.RemoveItem(from)
	v.queue(v.list.InsertItem(to, v.bind(to)))
}

func (v *rowView) ItemRemoved(at int) {
	v.list.RemoveItem(at)
	v.clampCursor()
}

func (v *rowView) FullReload() {
	items := make([]list.Item, v.rows.Len())
	for i := range items {
		items[i] = v.bind(i)
	}
	v.queue(v.list.SetItems(items))
	v.clampCursor()
}

// Len is the number of painted rows.
func (v *rowView) Len() int { return len(v.list.Items()) }

// Titles lists painted row titles in order.
func (v *rowView) Titles() []string {
	out := make([]string, 0, v.Len())
	for _, it := range v.list.Items() {
		if r, ok := it.(row); ok {
			out = append(out, r.item.Title)
		}
	}
	return out
}

// drain returns commands produced by list mutations since the last call.
func (v *rowView) drain() tea.Cmd {
	if len(v.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(v.pending...)
	v.pending = nil
	return cmd
}

func (v *rowView) bind(i int) list.Item {
	it := v.rows.At(i)
	return row{item: it, glyph: v.glyph(it.Image)}
}

func (v *rowView) queue(cmd tea.Cmd) {
	if cmd != nil {
		v.pending = append(v.pending, cmd)
	}
}

func (v *rowView) clampCursor() {
	if n := v.Len(); n > 0 && v.list.Index() >= n {
		v.list.Select(n - 1)
	}
}
