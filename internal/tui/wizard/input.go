package wizard

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

// inputWidth is the width of a numeric field.
const inputWidth = 10

// newNumberInput creates a styled single-line input for numeric entry.
func newNumberInput(placeholder string) textinput.Model {
	t := theme.Current()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 16
	ti.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	ti.SetWidth(inputWidth)
	return ti
}

// fieldBox wraps an input view in a rounded border, highlighted when focused.
func fieldBox(view string, focused bool) string {
	t := theme.Current()
	border := t.BgSurface2
	if focused {
		border = t.Tertiary
	}
	return lipgloss.NewStyle().
		Width(inputWidth + 4).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Render(view)
}
