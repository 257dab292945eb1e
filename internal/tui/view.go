package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/datatable/internal/table"
	"github.com/alexisbeaulieu97/datatable/internal/ui"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := m.Theme()
	view := m.store.View()

	sections := []string{
		theme.Title.Render("Table"),
		m.controlsView(theme),
		m.gridView(theme, view),
		PaginationView(theme, view),
	}
	if m.status != "" {
		sections = append(sections, theme.Muted.Render(m.status))
	}
	sections = append(sections, m.help.View(helpKeys{keys: m.keys, focus: m.focus}))

	return lipgloss.NewStyle().
		Background(theme.Palette.Background).
		Foreground(theme.Palette.Text).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) controlsView(theme ui.Theme) string {
	toggle := "[ ]"
	if m.store.Dark() {
		toggle = "[x]"
	}
	dark := theme.Label.Render(toggle + " Dark Mode")
	return lipgloss.JoinHorizontal(lipgloss.Center, dark, "   ", m.search.View())
}

func (m Model) gridView(theme ui.Theme, view table.View) string {
	cells := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		cells = append(cells, m.rowCells(theme, row))
	}
	cursor := -1
	if m.focus != focusSearch {
		cursor = m.cursor
	}
	grid := renderGrid(theme, cells, cursor, m.editingIndex(view))
	if len(view.Rows) == 0 {
		grid = lipgloss.JoinVertical(lipgloss.Left, grid, theme.Empty.Render("No rows to display"))
	}
	return grid
}

func (m Model) editingIndex(view table.View) int {
	id, ok := m.store.Editing()
	if !ok {
		return -1
	}
	for i, row := range view.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// rowCells renders one row. The edited row shows inputs for the editable
// fields; its id stays read-only.
func (m Model) rowCells(theme ui.Theme, row table.Row) []string {
	cols := table.Columns()
	out := make([]string, 0, len(cols))
	editing := m.store.IsEditing(row.ID)
	for _, col := range cols {
		switch {
		case col.Synthetic():
			out = append(out, theme.Buttons(m.store.Actions(row.ID)...))
		case editing && col.ID != table.FieldID:
			out = append(out, m.inputs[fieldIndex(col.ID)].View())
		default:
			out = append(out, row.Field(col.ID))
		}
	}
	return out
}

func fieldIndex(field string) int {
	for i, f := range editable {
		if f == field {
			return i
		}
	}
	return 0
}

// renderGrid draws the header and cells with the theme. cursor and editing
// are indexes into cells, or -1.
func renderGrid(theme ui.Theme, cells [][]string, cursor, editing int) string {
	cols := table.Columns()
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.DisplayName
	}

	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Border).
		BorderRow(true).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			width := cellWidth(cols[col])
			switch {
			case row == lgtable.HeaderRow:
				return theme.Header.Width(width)
			case row == editing:
				return theme.Editing.Width(width)
			case row == cursor:
				return theme.Cursor.Width(width)
			default:
				return theme.Cell.Width(width)
			}
		}).
		Render()
}

// cellWidth converts a column's pixel minimum into terminal cells, plus one
// cell of padding on each side.
func cellWidth(col table.Column) int {
	return col.MinWidth/10 + 2
}

// PaginationView renders the rows-per-page selector and the range label,
// e.g. "Rows per page: 10   1–2 of 2   page 1/1".
func PaginationView(theme ui.Theme, view table.View) string {
	sizes := make([]string, 0, len(table.PageSizes))
	for _, size := range table.PageSizes {
		label := fmt.Sprintf("%d", size)
		if size == view.PageSize {
			label = theme.Label.Render("(" + label + ")")
		}
		sizes = append(sizes, label)
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = max(view.PageSize, 1)
	p.SetTotalPages(view.Total)
	p.Page = view.Page

	return strings.Join([]string{
		"Rows per page: " + strings.Join(sizes, " "),
		RangeLabel(view),
		"page " + p.View(),
	}, "   ")
}

// RangeLabel reports the visible slice of the filtered rows the way a web
// table footer does. A page past the end shows a start above the total.
func RangeLabel(view table.View) string {
	if view.Total == 0 || view.PageSize <= 0 {
		return fmt.Sprintf("0–0 of %d", view.Total)
	}
	// Past the last page the label reads "from–total", with from saturating
	// instead of overflowing.
	if view.Page >= view.Pages() {
		from := math.MaxInt
		if view.Page <= (math.MaxInt-1)/view.PageSize {
			from = view.Page*view.PageSize + 1
		}
		return fmt.Sprintf("%d–%d of %d", from, view.Total, view.Total)
	}
	from := view.Page*view.PageSize + 1
	to := min(view.Total, (view.Page+1)*view.PageSize)
	return fmt.Sprintf("%d–%d of %d", from, to, view.Total)
}

// RenderStatic draws the current page of store without any interactive
// chrome. With plain set, ANSI styling is stripped.
func RenderStatic(store *table.Store, plain bool) string {
	theme := ui.For(store.Dark())
	view := store.View()

	cells := make([][]string, 0, len(view.Rows))
	for _, row := range view.Rows {
		line := make([]string, 0, len(table.Columns()))
		for _, col := range table.Columns() {
			if col.Synthetic() {
				line = append(line, theme.Buttons(store.Actions(row.ID)...))
				continue
			}
			line = append(line, row.Field(col.ID))
		}
		cells = append(cells, line)
	}

	sections := []string{renderGrid(theme, cells, -1, -1)}
	if len(view.Rows) == 0 {
		sections = append(sections, theme.Empty.Render("No rows to display"))
	}
	sections = append(sections, PaginationView(theme, view))
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if plain {
		out = ansi.Strip(out)
	}
	return out + "\n"
}
