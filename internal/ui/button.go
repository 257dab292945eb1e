package ui

import "strings"

// ButtonVariant selects a button colour.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
)

// Button renders a bracketed label such as "[Edit]".
func (t Theme) Button(label string, variant ButtonVariant) string {
	style := t.Primary
	if variant == ButtonSecondary {
		style = t.Secondary
	}
	return style.Render("[" + label + "]")
}

// Buttons renders labels side by side. The first label is primary and the
// rest secondary, matching a confirm/dismiss pair.
func (t Theme) Buttons(labels ...string) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		variant := ButtonSecondary
		if i == 0 {
			variant = ButtonPrimary
		}
		parts = append(parts, t.Button(label, variant))
	}
	return strings.Join(parts, " ")
}
