// Package ui holds the light and dark themes of the table. Themes only decide
// how things look; nothing in here reads or changes table data.
package ui

import "github.com/charmbracelet/lipgloss"

// Palette lists the colours a theme is built from.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Border     lipgloss.Color
	HeaderBg   lipgloss.Color
	HeaderFg   lipgloss.Color
	Highlight  lipgloss.Color
}

// Theme is a resolved set of styles for one mode.
type Theme struct {
	Name    string
	Dark    bool
	Palette Palette

	Title     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Cursor    lipgloss.Style
	Editing   lipgloss.Style
	Border    lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Empty     lipgloss.Style
	Input     InputStyles
	Primary   lipgloss.Style
	Secondary lipgloss.Style
}

// InputStyles describes default/focus styles for text inputs.
type InputStyles struct {
	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Focus       lipgloss.Style
}

var (
	lightPalette = Palette{
		Background: "#f5f5f5",
		Surface:    "#ffffff",
		Text:       "#000000",
		Muted:      "#6b7280",
		Primary:    "#1976d2",
		Secondary:  "#9c27b0",
		Border:     "#008000",
		HeaderBg:   "#000000",
		HeaderFg:   "#ffffff",
		Highlight:  "#dbeafe",
	}

	darkPalette = Palette{
		Background: "#121212",
		Surface:    "#424242",
		Text:       "#ffffff",
		Muted:      "#9ca3af",
		Primary:    "#90caf9",
		Secondary:  "#ce93d8",
		Border:     "#008000",
		HeaderBg:   "#000000",
		HeaderFg:   "#ffffff",
		Highlight:  "#1e3a8a",
	}
)

// LightTheme returns the default light theme.
func LightTheme() Theme {
	return build("light", false, lightPalette)
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	return build("dark", true, darkPalette)
}

// For returns the theme matching the dark mode flag.
func For(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}

func build(name string, dark bool, p Palette) Theme {
	cell := lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)

	return Theme{
		Name:    name,
		Dark:    dark,
		Palette: p,

		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Text).Padding(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Foreground(p.HeaderFg).Background(p.HeaderBg).Padding(0, 1),
		Cell:   cell,
		Cursor: cell.Background(p.Highlight).Bold(true),
		Editing: cell.
			Foreground(p.Primary).
			Italic(true),
		Border: lipgloss.NewStyle().Foreground(p.Border),
		Label:  lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(p.Muted),
		Empty:  lipgloss.NewStyle().Foreground(p.Muted).Italic(true).Padding(1, 2),
		Input: InputStyles{
			Prompt:      lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
			Text:        lipgloss.NewStyle().Foreground(p.Text),
			Placeholder: lipgloss.NewStyle().Foreground(p.Muted),
			Focus:       lipgloss.NewStyle().Foreground(p.Primary).Underline(true),
		},
		Primary:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
	}
}
