package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datatable/internal/table"
	"github.com/alexisbeaulieu97/datatable/pkg/diff"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.focus {
		case focusSearch:
			return m.handleSearchKeys(msg)
		case focusEdit:
			return m.handleEditKeys(msg)
		default:
			return m.handleTableKeys(msg)
		}
	}

	return m, nil
}

func (m Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.store.View().Rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage):
		if page := m.store.Page(); page > 0 {
			m.store.SetPage(page - 1)
			m.cursor = 0
			m.log.Debug("page changed", "page", page-1)
		}

	case key.Matches(msg, m.keys.NextPage):
		view := m.store.View()
		if view.Page+1 < view.Pages() {
			m.store.SetPage(view.Page + 1)
			m.cursor = 0
			m.log.Debug("page changed", "page", view.Page+1)
		}

	case key.Matches(msg, m.keys.PageSize):
		size := table.NextPageSize(m.store.PageSize())
		m.store.SetPageSize(size)
		m.cursor = 0
		m.status = fmt.Sprintf("%d rows per page", size)
		m.log.Debug("page size changed", "page_size", size)

	case key.Matches(msg, m.keys.Theme):
		m.store.ToggleDark()
		m.applyTheme()
		m.log.Debug("theme toggled", "theme", m.Theme().Name)

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.search.Blur()
		m.focus = focusTable
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.store.Search() {
		m.store.SetSearch(value)
		m.clampCursor()
		m.log.Debug("search changed", "search", value, "matches", m.store.View().Total)
	}
	return m, cmd
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		id, _ := m.store.Editing()
		before, _ := m.store.Row(id)
		after, _ := m.store.Buffer()
		if m.store.Save() {
			changes := diff.Summary(diff.Fields(editable, before.Field, after.Field))
			m.status = fmt.Sprintf("Saved row %d (%s)", id, changes)
			m.log.Info("row saved", "row_id", id, "changes", changes)
		}
		m.endEdit()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		id, _ := m.store.Editing()
		m.store.Cancel()
		m.status = fmt.Sprintf("Discarded changes to row %d", id)
		m.log.Debug("edit cancelled", "row_id", id)
		m.endEdit()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		cmd := m.focusField((m.field + 1) % len(m.inputs))
		return m, cmd

	case key.Matches(msg, m.keys.PrevField):
		cmd := m.focusField((m.field + len(m.inputs) - 1) % len(m.inputs))
		return m, cmd

	case key.Matches(msg, m.keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.RowDown):
		if m.cursor < len(m.store.View().Rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.DeleteRow):
		m.deleteSelected()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	m.store.SetField(editable[m.field], m.inputs[m.field].Value())
	return m, cmd
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	row, ok := m.selected()
	if !ok || !m.store.BeginEdit(row.ID) {
		return m, nil
	}
	buf, _ := m.store.Buffer()
	for i, field := range editable {
		m.inputs[i].SetValue(buf.Field(field))
		m.inputs[i].CursorEnd()
	}
	m.focus = focusEdit
	m.status = ""
	m.log.Debug("edit started", "row_id", row.ID)
	cmd := m.focusField(0)
	return m, tea.Batch(cmd, textinput.Blink)
}

func (m *Model) focusField(i int) tea.Cmd {
	m.field = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m *Model) endEdit() {
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].Reset()
	}
	m.field = 0
	m.focus = focusTable
	m.clampCursor()
}

func (m *Model) deleteSelected() {
	row, ok := m.selected()
	if !ok {
		return
	}
	if !m.store.Delete(row.ID) {
		m.status = fmt.Sprintf("Row %d is being edited", row.ID)
		return
	}
	m.status = fmt.Sprintf("Deleted row %d", row.ID)
	m.log.Info("row deleted", "row_id", row.ID)
	m.clampCursor()
}
