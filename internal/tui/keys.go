package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	PageSize  key.Binding
	Theme     key.Binding
	Search    key.Binding
	Blur      key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Save      key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	DeleteRow key.Binding
	RowUp     key.Binding
	RowDown   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:  key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		PageSize:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "rows per page")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dark mode")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:      key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "back to table")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Save:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		// ctrl+d stays with the text input as forward delete.
		DeleteRow: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "delete other row")),
		RowUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		RowDown:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpKeys exposes the bindings that apply in the current focus.
type helpKeys struct {
	keys  keyMap
	focus focus
}

func (h helpKeys) ShortHelp() []key.Binding {
	switch h.focus {
	case focusSearch:
		return []key.Binding{h.keys.Blur}
	case focusEdit:
		return []key.Binding{h.keys.Save, h.keys.Cancel, h.keys.NextField}
	default:
		return []key.Binding{h.keys.Search, h.keys.Edit, h.keys.Delete, h.keys.NextPage, h.keys.Help, h.keys.Quit}
	}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	switch h.focus {
	case focusSearch:
		return [][]key.Binding{{h.keys.Blur}}
	case focusEdit:
		return [][]key.Binding{
			{h.keys.Save, h.keys.Cancel},
			{h.keys.NextField, h.keys.PrevField},
			{h.keys.RowUp, h.keys.RowDown, h.keys.DeleteRow},
		}
	default:
		return [][]key.Binding{
			{h.keys.Up, h.keys.Down, h.keys.Edit, h.keys.Delete},
			{h.keys.PrevPage, h.keys.NextPage, h.keys.PageSize},
			{h.keys.Search, h.keys.Theme, h.keys.Help, h.keys.Quit},
		}
	}
}
