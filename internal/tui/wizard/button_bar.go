package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Default action for the step
)

// Button represents a single button in the button bar.
type Button struct {
	Label string
	Key   string // Key that activates the button, shown next to the label
	State ButtonState
}

// ButtonBar renders a row of buttons with consistent styling.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Render renders the button bar centered in its width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()
	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		label := btn.Label
		if btn.Key != "" {
			label += " (" + btn.Key + ")"
		}
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateCancelNextButtons creates the Cancel/Next set for the first step.
func CreateCancelNextButtons() []Button {
	return []Button{
		{Label: "Cancel", Key: "esc", State: ButtonNormal},
		{Label: "Next", Key: "enter", State: ButtonFocused},
	}
}

// CreateBackNextButtons creates the standard Back/Next set.
// nextLabel customizes the forward button (e.g. "Calculate").
func CreateBackNextButtons(nextLabel string) []Button {
	return []Button{
		{Label: "← Back", Key: "esc", State: ButtonNormal},
		{Label: nextLabel, Key: "enter", State: ButtonFocused},
	}
}

// CreateBackRestartButtons creates the Back/Restart/Done set for the result step.
func CreateBackRestartButtons() []Button {
	return []Button{
		{Label: "← Back", Key: "esc", State: ButtonNormal},
		{Label: "Restart", Key: "r", State: ButtonNormal},
		{Label: "Done", Key: "enter", State: ButtonFocused},
	}
}
