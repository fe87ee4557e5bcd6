package wizard

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/techangelx/gradewiz/internal/grade"
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

// ResultStep shows the module mark and each component's contribution.
type ResultStep struct {
	result  grade.FormattedResult
	weights []float64
	width   int
	height  int
}

// NewResultStep creates the result step from a formatted result.
func NewResultStep(result grade.FormattedResult, weights []float64) *ResultStep {
	return &ResultStep{
		result:  result,
		weights: weights,
		width:   60,
		height:  10,
	}
}

// SetSize updates the dimensions for the result step.
func (r *ResultStep) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// Update handles messages for the result step.
func (r *ResultStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "r":
		return func() tea.Msg { return RestartMsg{} }
	case "enter", "q":
		return func() tea.Msg { return FinishMsg{} }
	}
	return nil
}

// Total returns the formatted module mark.
func (r *ResultStep) Total() string {
	return r.result.Total
}

// View renders the result step.
func (r *ResultStep) View() string {
	s := theme.Current().S()

	rows := []string{
		s.ResultTotal.Render("Total module mark: " + r.result.Total),
		"",
	}

	labelStyle := s.Label.Width(22)
	for i, c := range r.result.Contributions {
		label := fmt.Sprintf("Component %d mark:", i+1)
		weight := ""
		if i < len(r.weights) {
			weight = s.Suffix.Render(fmt.Sprintf("  (%g%% weighting)", r.weights[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label),
			s.ResultValue.Render(c),
			weight,
		))
	}

	rows = append(rows, "", renderHintBar("esc", "back", "r", "restart", "enter", "done", "f1", "about"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
