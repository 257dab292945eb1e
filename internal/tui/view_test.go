package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datatable/internal/table"
	"github.com/alexisbeaulieu97/datatable/internal/ui"
)

func TestViewShowsRowsAndActions(t *testing.T) {
	out := ansi.Strip(newTestModel(table.SeedRows()).View())

	for _, want := range []string{"Table", "Dark Mode", "Search:", "ID", "Name", "Email", "Action",
		"John Doe", "jane@example.com", "[Edit]", "[Delete]", "1–2 of 2"} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "[Save]")
}

func TestViewShowsSaveCancelForEditedRow(t *testing.T) {
	m := press(t, newTestModel(table.SeedRows()), runes("e"))
	out := ansi.Strip(m.View())

	require.Equal(t, 1, strings.Count(out, "[Save]"))
	require.Equal(t, 1, strings.Count(out, "[Cancel]"))
	require.Equal(t, 1, strings.Count(out, "[Edit]"), "the other row keeps its buttons")
}

func TestViewEmptyState(t *testing.T) {
	m := press(t, newTestModel(table.SeedRows()), runes("/"), runes("nobody"))
	out := ansi.Strip(m.View())
	require.Contains(t, out, "No rows to display")
	require.Contains(t, out, "0–0 of 0")
}

func TestViewStatusLine(t *testing.T) {
	m := press(t, newTestModel(table.SeedRows()), runes("d"))
	require.Contains(t, ansi.Strip(m.View()), "Deleted row 1")
}

func TestViewDarkModeToggleLabel(t *testing.T) {
	m := newTestModel(table.SeedRows())
	require.Contains(t, ansi.Strip(m.View()), "[ ] Dark Mode")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	require.Contains(t, ansi.Strip(m.View()), "[x] Dark Mode")
}

func TestRangeLabel(t *testing.T) {
	cases := []struct {
		view table.View
		want string
	}{
		{view: table.View{Total: 0, Page: 0, PageSize: 10}, want: "0–0 of 0"},
		{view: table.View{Total: 2, Page: 0, PageSize: 10}, want: "1–2 of 2"},
		{view: table.View{Total: 12, Page: 1, PageSize: 5}, want: "6–10 of 12"},
		{view: table.View{Total: 12, Page: 2, PageSize: 5}, want: "11–12 of 12"},
		{view: table.View{Total: 1, Page: 1, PageSize: 1}, want: "2–1 of 1"},
		{view: table.View{Total: 2, Page: 1 << 62, PageSize: 4}, want: "9223372036854775807–2 of 2"},
		{view: table.View{Total: 2, Page: 3689348814741910323, PageSize: 5}, want: "9223372036854775807–2 of 2"},
		{view: table.View{Total: 2, Page: 0, PageSize: 0}, want: "0–0 of 2"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, RangeLabel(tc.view))
	}
}

func TestPaginationView(t *testing.T) {
	out := ansi.Strip(PaginationView(ui.LightTheme(), table.View{Total: 12, Page: 1, PageSize: 5}))
	require.Contains(t, out, "Rows per page: (5) 10 20")
	require.Contains(t, out, "6–10 of 12")
	require.Contains(t, out, "page 2/3")
}

func TestRenderStatic(t *testing.T) {
	store := table.NewStore(table.SeedRows())
	store.SetSearch("john")

	out := RenderStatic(store, true)
	require.Equal(t, out, ansi.Strip(out), "plain output has no escape codes")
	require.Contains(t, out, "John Doe")
	require.NotContains(t, out, "Jane Smith")
	require.Contains(t, out, "1–1 of 1")

	store.SetSearch("zzz")
	require.Contains(t, RenderStatic(store, true), "No rows to display")
}
