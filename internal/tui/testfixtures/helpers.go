package testfixtures

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output so rendered text is comparable
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Common key presses.
var (
	KeyEnter    = tea.KeyPressMsg{Code: tea.KeyEnter}
	KeyEsc      = tea.KeyPressMsg{Code: tea.KeyEscape}
	KeyTab      = tea.KeyPressMsg{Code: tea.KeyTab}
	KeyShiftTab = tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	KeyDown     = tea.KeyPressMsg{Code: tea.KeyDown}
	KeyUp       = tea.KeyPressMsg{Code: tea.KeyUp}
	KeyF1       = tea.KeyPressMsg{Code: tea.KeyF1}
	KeyCtrlC    = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	KeyCtrlR    = tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
)

// Rune returns the key press for a printable character.
func Rune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Contains checks if a string contains a substring.
// This is a simple helper to make test assertions more readable.
func Contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
