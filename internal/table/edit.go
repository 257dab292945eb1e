package table

// Action labels rendered in the action column.
const (
	ActionEdit   = "Edit"
	ActionDelete = "Delete"
	ActionSave   = "Save"
	ActionCancel = "Cancel"
)

// Editing returns the id of the row being edited.
func (s *Store) Editing() (int, bool) {
	return s.target, s.editing
}

// IsEditing reports whether id is the row under edit.
func (s *Store) IsEditing(id int) bool {
	return s.editing && s.target == id
}

// Buffer returns the in-progress copy of the edited row.
func (s *Store) Buffer() (Row, bool) {
	if !s.editing {
		return Row{}, false
	}
	return s.buffer, true
}

// BeginEdit opens an edit session on id, copying the row into the buffer.
// An open session on another row is discarded. Unknown ids are ignored.
func (s *Store) BeginEdit(id int) bool {
	row, ok := s.Row(id)
	if !ok {
		return false
	}
	s.editing = true
	s.target = id
	s.buffer = row
	return true
}

// SetField writes value into the buffer. Only name and email are editable;
// the id field and unknown names are ignored, as is any call outside an edit.
func (s *Store) SetField(field, value string) bool {
	if !s.editing {
		return false
	}
	switch field {
	case FieldName:
		s.buffer.Name = value
	case FieldEmail:
		s.buffer.Email = value
	default:
		return false
	}
	return true
}

// Save replaces the edited row with the buffer, in place, and ends the edit.
// It reports whether a row was replaced.
func (s *Store) Save() bool {
	if !s.editing {
		return false
	}
	replaced := false
	if i := s.index(s.target); i >= 0 {
		s.rows[i] = s.buffer
		s.touch()
		replaced = true
	}
	s.clearEdit()
	return replaced
}

// Cancel drops the buffer without touching the rows.
func (s *Store) Cancel() {
	s.clearEdit()
}

// Delete removes the row with the given id. Missing ids and the row currently
// under edit are left alone; deleting any other row keeps the edit session.
func (s *Store) Delete(id int) bool {
	if s.IsEditing(id) {
		return false
	}
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.touch()
	return true
}

// Actions returns the action buttons offered for the row with id.
func (s *Store) Actions(id int) []string {
	if s.IsEditing(id) {
		return []string{ActionSave, ActionCancel}
	}
	return []string{ActionEdit, ActionDelete}
}

func (s *Store) clearEdit() {
	s.editing = false
	s.target = 0
	s.buffer = Row{}
}
