package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditSave(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	require.True(t, s.BeginEdit(1))

	buf, ok := s.Buffer()
	require.True(t, ok)
	require.Equal(t, SeedRows()[0], buf)

	require.True(t, s.SetField(FieldName, "Jonathan Doe"))
	require.True(t, s.Save())

	require.Equal(t, []Row{
		{ID: 1, Name: "Jonathan Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}, s.Rows())
	_, editing := s.Editing()
	require.False(t, editing)
	_, ok = s.Buffer()
	require.False(t, ok)
}

func TestEditCancelLeavesRows(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	before := s.Rows()

	require.True(t, s.BeginEdit(2))
	s.SetField(FieldEmail, "someone@else.org")
	s.Cancel()

	require.Equal(t, before, s.Rows())
	_, editing := s.Editing()
	require.False(t, editing)
}

func TestEditAcceptsEmptyValues(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	s.BeginEdit(1)
	s.SetField(FieldName, "")
	s.SetField(FieldEmail, "")
	s.Save()

	require.Equal(t, Row{ID: 1}, s.Rows()[0])
}

func TestEditIdentityFieldIsReadOnly(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	s.BeginEdit(1)
	require.False(t, s.SetField(FieldID, "2"))
	require.False(t, s.SetField("nickname", "jd"))
	s.Save()

	require.Equal(t, SeedRows(), s.Rows())
}

func TestEditOutsideSessionIsNoop(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	require.False(t, s.SetField(FieldName, "x"))
	require.False(t, s.Save())
	s.Cancel()
	require.False(t, s.BeginEdit(99))
	require.Equal(t, SeedRows(), s.Rows())
}

func TestBeginEditSwitchesRows(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	s.BeginEdit(1)
	s.SetField(FieldName, "discarded")
	s.BeginEdit(2)

	id, editing := s.Editing()
	require.True(t, editing)
	require.Equal(t, 2, id)
	buf, _ := s.Buffer()
	require.Equal(t, "Jane Smith", buf.Name)

	s.Save()
	require.Equal(t, SeedRows(), s.Rows())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	require.True(t, s.Delete(1))
	require.Equal(t, []Row{{ID: 2, Name: "Jane Smith", Email: "jane@example.com"}}, s.Rows())

	require.False(t, s.Delete(1), "already gone")
	require.Equal(t, 1, s.Len())
}

func TestDeleteWhileEditingOtherRow(t *testing.T) {
	t.Parallel()

	s := NewStore(sampleRows())
	s.BeginEdit(3)
	s.SetField(FieldName, "Countess")

	require.True(t, s.Delete(1))
	require.False(t, s.Delete(3), "row under edit stays")

	buf, ok := s.Buffer()
	require.True(t, ok)
	require.Equal(t, "Countess", buf.Name)

	s.Save()
	require.Equal(t, []int{2, 3, 4, 5}, ids(s.Rows()))
	require.Equal(t, "Countess", s.Rows()[1].Name)
}

func TestSaveAfterTargetVanished(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	s.BeginEdit(1)
	// Bypass the delete guard to model a collection that lost the row.
	s.rows = s.rows[1:]
	require.False(t, s.Save())
	_, editing := s.Editing()
	require.False(t, editing)
	require.Equal(t, []int{2}, ids(s.Rows()))
}

func TestActions(t *testing.T) {
	t.Parallel()

	s := NewStore(SeedRows())
	require.Equal(t, []string{ActionEdit, ActionDelete}, s.Actions(1))

	s.BeginEdit(1)
	require.Equal(t, []string{ActionSave, ActionCancel}, s.Actions(1))
	require.Equal(t, []string{ActionEdit, ActionDelete}, s.Actions(2))
}
