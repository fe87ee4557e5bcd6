package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

// CountStep collects the number of components.
type CountStep struct {
	input  textinput.Model
	max    int    // Configured maximum component count
	err    string // Validation message from the last submit
	width  int
	height int
}

// NewCountStep creates the count step. value pre-fills the input.
func NewCountStep(max int, value string) *CountStep {
	ti := newNumberInput(fmt.Sprintf("1-%d", max))
	ti.CharLimit = 4
	ti.SetValue(value)

	return &CountStep{
		input:  ti,
		max:    max,
		width:  60,
		height: 10,
	}
}

// Init focuses the input.
func (c *CountStep) Init() tea.Cmd {
	return c.input.Focus()
}

// SetSize updates the dimensions for the count step.
func (c *CountStep) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetError shows a validation message under the input.
func (c *CountStep) SetError(msg string) {
	c.err = msg
}

// Value returns the raw input.
func (c *CountStep) Value() string {
	return c.input.Value()
}

// Update handles messages for the count step.
func (c *CountStep) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if keyMsg.String() == "enter" {
			value := strings.TrimSpace(c.input.Value())
			return func() tea.Msg {
				return CountSubmittedMsg{Input: value}
			}
		}
		c.err = ""
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the count step.
func (c *CountStep) View() string {
	s := theme.Current().S()

	label := s.Label.Render(fmt.Sprintf("Number of components (1-%d):", c.max))
	row := lipgloss.JoinHorizontal(lipgloss.Center, label, " ", fieldBox(c.input.View(), c.input.Focused()))

	parts := []string{row}
	if c.err != "" {
		parts = append(parts, "", renderError(c.err))
	}
	parts = append(parts, "", renderHintBar("enter", "next", "esc", "quit", "ctrl+r", "restart", "f1", "about"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
