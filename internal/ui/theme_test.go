package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightTheme(t *testing.T) {
	theme := LightTheme()

	assert.False(t, theme.Dark)
	assert.Equal(t, "light", theme.Name)
	assert.Equal(t, lipgloss.Color("#f5f5f5"), theme.Palette.Background)
	assert.Equal(t, lipgloss.Color("#ffffff"), theme.Palette.Surface)
	assert.True(t, theme.Header.GetBold(), "header should be bold")
}

func TestDarkTheme(t *testing.T) {
	light := LightTheme()
	dark := DarkTheme()

	assert.True(t, dark.Dark)
	assert.Equal(t, lipgloss.Color("#121212"), dark.Palette.Background)
	assert.NotEqual(t, light.Palette.Text, dark.Palette.Text, "dark theme should invert text colour")
	assert.NotEqual(t, light.Cell.GetForeground(), dark.Cell.GetForeground())
}

func TestFor(t *testing.T) {
	require.Equal(t, "dark", For(true).Name)
	require.Equal(t, "light", For(false).Name)
}

func TestButtons(t *testing.T) {
	theme := LightTheme()

	out := theme.Buttons("Save", "Cancel")
	assert.Contains(t, out, "[Save]")
	assert.Contains(t, out, "[Cancel]")
	assert.Empty(t, theme.Buttons())
	assert.Contains(t, theme.Button("Edit", ButtonSecondary), "[Edit]")
}
