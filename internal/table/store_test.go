package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreDefaults(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	require.Equal(t, 0, s.Page())
	require.Equal(t, DefaultPageSize, s.PageSize())
	require.Equal(t, "", s.Search())
	require.False(t, s.Dark())
	_, editing := s.Editing()
	require.False(t, editing)
	require.Equal(t, SeedRows(), s.Rows())
}

func TestNewStoreCopiesInput(t *testing.T) {
	t.Parallel()

	rows := SeedRows()
	s := NewStore(rows)
	rows[0].Name = "changed"
	require.Equal(t, "John Doe", s.Rows()[0].Name)

	out := s.Rows()
	out[1].Name = "changed"
	require.Equal(t, "Jane Smith", s.Rows()[1].Name)
}

func TestPageSizeResetsPage(t *testing.T) {
	t.Parallel()

	s := NewStore(sampleRows())
	s.SetPageSize(2)
	s.SetPage(2)
	require.Equal(t, 2, s.Page())

	s.SetPageSize(5)
	require.Equal(t, 0, s.Page())
	require.Equal(t, 5, s.PageSize())

	s.SetPage(1)
	s.SetPageSize(0)
	require.Equal(t, 1, s.Page(), "ignored size leaves page alone")
	require.Equal(t, 5, s.PageSize())
}

func TestSetPageIgnoresNegative(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	s.SetPage(1)
	s.SetPage(-3)
	require.Equal(t, 1, s.Page())
}

func TestViewOnHugePage(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	s.SetPageSize(5)
	s.SetPage(3689348814741910323)

	v := s.View()
	require.Empty(t, v.Rows)
	require.Equal(t, 2, v.Total)
	require.Equal(t, 3689348814741910323, v.Page)
}

func TestSearchDoesNotResetPage(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	s.SetPageSize(1)

	s.SetPage(0)
	require.Equal(t, []int{1}, ids(s.View().Rows))
	s.SetPage(1)
	require.Equal(t, []int{2}, ids(s.View().Rows))

	s.SetSearch("jane")
	v := s.View()
	require.Equal(t, 1, s.Page())
	require.Empty(t, v.Rows, "row 2 matches but sits on page 0")
	require.Equal(t, 1, v.Total)

	s.SetPageSize(1)
	require.Equal(t, []int{2}, ids(s.View().Rows))
}

func TestThemeFlag(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	before := s.View()
	s.ToggleDark()
	require.True(t, s.Dark())
	require.Equal(t, before, s.View(), "theme has no effect on data")
	s.SetDark(false)
	require.False(t, s.Dark())
}

func TestViewTracksMutations(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	require.Equal(t, 2, s.View().Total)

	s.Delete(1)
	require.Equal(t, 1, s.View().Total)

	s.BeginEdit(2)
	s.SetField(FieldName, "Janet")
	require.Equal(t, "Jane Smith", s.View().Rows[0].Name, "buffer is not visible before save")
	s.Save()
	require.Equal(t, "Janet", s.View().Rows[0].Name)
}

func TestViewReturnsIndependentRows(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	v := s.View()
	v.Rows[0].Name = "mutated"
	require.Equal(t, "John Doe", s.View().Rows[0].Name)
}

func TestNextPageSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10, NextPageSize(5))
	require.Equal(t, 20, NextPageSize(10))
	require.Equal(t, 5, NextPageSize(20))
	require.Equal(t, 5, NextPageSize(7))
	require.True(t, ValidPageSize(20))
	require.False(t, ValidPageSize(1))
}

func TestColumns(t *testing.T) {
	t.Parallel()

	cols := Columns()
	require.Len(t, cols, 4)
	require.Equal(t, []string{"ID", "Name", "Email", "Action"},
		[]string{cols[0].DisplayName, cols[1].DisplayName, cols[2].DisplayName, cols[3].DisplayName})
	require.True(t, cols[3].Synthetic())
	require.False(t, cols[0].Synthetic())

	cols[0].DisplayName = "changed"
	require.Equal(t, "ID", Columns()[0].DisplayName)
}

func TestRowField(t *testing.T) {
	t.Parallel()

	row := Row{ID: 7, Name: "n", Email: "e"}
	require.Equal(t, "7", row.Field(FieldID))
	require.Equal(t, "n", row.Field(FieldName))
	require.Equal(t, "e", row.Field(FieldEmail))
	require.Equal(t, "", row.Field(ColumnAction))
}
