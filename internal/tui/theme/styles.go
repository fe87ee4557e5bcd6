package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	// Modal
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style

	// Form
	Label  lipgloss.Style
	Suffix lipgloss.Style
	Error  lipgloss.Style

	// Result
	ResultTotal lipgloss.Style
	ResultValue lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style
}
