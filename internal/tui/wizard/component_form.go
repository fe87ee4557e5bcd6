package wizard

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

// formKind selects what a ComponentForm collects.
type formKind int

const (
	formWeights formKind = iota
	formMarks
)

// ComponentForm collects one numeric value per component. It backs both the
// weightings step and the marks step.
type ComponentForm struct {
	kind       formKind
	inputs     []textinput.Model
	labels     []string
	suffixes   []string
	focusIndex int
	err        string // Validation message from the last submit
	width      int
	height     int
}

// NewWeightsForm creates the weightings form for count components.
// prev pre-fills fields by position.
func NewWeightsForm(count int, prev []string) *ComponentForm {
	f := newComponentForm(formWeights, count, prev)
	for i := range f.labels {
		f.labels[i] = fmt.Sprintf("Component %d:", i+1)
		f.suffixes[i] = "%"
	}
	return f
}

// NewMarksForm creates the marks form. Each field shows the component's
// committed weighting next to it.
func NewMarksForm(weights []float64, prev []string) *ComponentForm {
	f := newComponentForm(formMarks, len(weights), prev)
	for i, w := range weights {
		f.labels[i] = fmt.Sprintf("Component %d mark:", i+1)
		f.suffixes[i] = strconv.FormatFloat(w, 'f', -1, 64) + "%"
	}
	return f
}

func newComponentForm(kind formKind, count int, prev []string) *ComponentForm {
	f := &ComponentForm{
		kind:     kind,
		inputs:   make([]textinput.Model, count),
		labels:   make([]string, count),
		suffixes: make([]string, count),
		width:    60,
		height:   10,
	}
	placeholder := "0"
	if kind == formWeights {
		placeholder = "%"
	}
	for i := range f.inputs {
		f.inputs[i] = newNumberInput(placeholder)
		if i < len(prev) {
			f.inputs[i].SetValue(prev[i])
		}
	}
	return f
}

// Init focuses the first field.
func (f *ComponentForm) Init() tea.Cmd {
	f.focusIndex = 0
	return f.updateFocus()
}

// SetSize updates the dimensions for the form.
func (f *ComponentForm) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetError shows a validation message under the form.
func (f *ComponentForm) SetError(msg string) {
	f.err = msg
}

// Values returns the raw field values in component order.
func (f *ComponentForm) Values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = f.inputs[i].Value()
	}
	return out
}

// Len returns the number of fields.
func (f *ComponentForm) Len() int {
	return len(f.inputs)
}

// Update handles messages for the form.
func (f *ComponentForm) Update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "enter":
			values := f.Values()
			if f.kind == formWeights {
				return func() tea.Msg { return WeightsSubmittedMsg{Inputs: values} }
			}
			return func() tea.Msg { return MarksSubmittedMsg{Inputs: values} }
		case "tab", "down":
			f.focusIndex = (f.focusIndex + 1) % len(f.inputs)
			return f.updateFocus()
		case "shift+tab", "up":
			f.focusIndex = (f.focusIndex - 1 + len(f.inputs)) % len(f.inputs)
			return f.updateFocus()
		}
		f.err = ""
	}

	var cmd tea.Cmd
	f.inputs[f.focusIndex], cmd = f.inputs[f.focusIndex].Update(msg)
	return cmd
}

// updateFocus focuses the current field and blurs the rest.
func (f *ComponentForm) updateFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focusIndex {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// View renders the form.
func (f *ComponentForm) View() string {
	s := theme.Current().S()

	heading := "Enter % weightings for each component:"
	nextHint := "next"
	if f.kind == formMarks {
		heading = "Enter marks for each component:"
		nextHint = "calculate"
	}

	labelWidth := 0
	for _, l := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	labelStyle := s.Label.Width(labelWidth + 1)

	rows := []string{s.Label.Render(heading), ""}
	for i := range f.inputs {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			labelStyle.Render(f.labels[i]),
			fieldBox(f.inputs[i].View(), i == f.focusIndex),
			" ",
			s.Suffix.Render(f.suffixes[i]),
		))
	}

	if f.err != "" {
		rows = append(rows, "", renderError(f.err))
	}
	rows = append(rows, "", renderHintBar("tab/↑↓", "field", "enter", nextHint, "esc", "back", "ctrl+r", "restart"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
