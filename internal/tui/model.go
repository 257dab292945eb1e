package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datatable/internal/logger"
	"github.com/alexisbeaulieu97/datatable/internal/table"
	"github.com/alexisbeaulieu97/datatable/internal/ui"
)

type focus int

const (
	focusTable focus = iota
	focusSearch
	focusEdit
)

// editable lists the fields that get an input while a row is edited.
var editable = []string{table.FieldName, table.FieldEmail}

// Model contains the Bubbletea state for the interactive table.
type Model struct {
	store *table.Store
	log   *logger.Logger

	keys   keyMap
	help   help.Model
	search textinput.Model
	inputs []textinput.Model
	field  int

	focus    focus
	cursor   int
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel constructs a TUI model driving store. A nil logger is allowed.
func NewModel(store *table.Store, log *logger.Logger) Model {
	if store == nil {
		store = table.NewStore(table.SeedRows())
	}

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "name or email"
	search.CharLimit = 128
	search.Width = 32
	search.SetValue(store.Search())

	inputs := make([]textinput.Model, len(editable))
	for _, col := range table.Columns() {
		if col.Synthetic() || col.ID == table.FieldID {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		// Leave room for the cursor inside the cell.
		in.Width = col.MinWidth/10 - 1
		inputs[fieldIndex(col.ID)] = in
	}

	m := Model{
		store:  store,
		log:    log,
		keys:   defaultKeyMap(),
		help:   help.New(),
		search: search,
		inputs: inputs,
		width:  100,
		height: 24,
	}
	m.applyTheme()
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Store exposes the underlying table state.
func (m Model) Store() *table.Store {
	return m.store
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Theme returns the theme selected by the dark mode flag.
func (m Model) Theme() ui.Theme {
	return ui.For(m.store.Dark())
}

// selected returns the row under the cursor on the visible page.
func (m Model) selected() (table.Row, bool) {
	rows := m.store.View().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return table.Row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.store.View().Rows)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) applyTheme() {
	theme := m.Theme()

	m.search.PromptStyle = theme.Input.Prompt
	m.search.TextStyle = theme.Input.Text
	m.search.PlaceholderStyle = theme.Input.Placeholder
	for i := range m.inputs {
		m.inputs[i].TextStyle = theme.Input.Focus
		m.inputs[i].PlaceholderStyle = theme.Input.Placeholder
	}
	m.help.Styles.ShortKey = theme.Label
	m.help.Styles.ShortDesc = theme.Muted
	m.help.Styles.FullKey = theme.Label
	m.help.Styles.FullDesc = theme.Muted
}
