package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/techangelx/gradewiz/internal/config"
	"github.com/techangelx/gradewiz/internal/grade"
	"github.com/techangelx/gradewiz/internal/logger"
	"github.com/techangelx/gradewiz/internal/tui/about"
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

// ErrCancelled is returned by Run when the user quits before finishing.
var ErrCancelled = errors.New("wizard cancelled by user")

// Outcome holds the inputs and result of a completed wizard run.
type Outcome struct {
	Weights   []float64
	Marks     []float64
	Result    grade.Result
	Formatted grade.FormattedResult
}

// WizardModel is the main BubbleTea model for the grade wizard.
// It renders the step the session is on: count → weightings → marks → result.
type WizardModel struct {
	session   *grade.Session
	rounding  grade.Rounding
	cancelled bool     // User quit before finishing
	finished  bool     // User confirmed the result
	outcome   *Outcome // Set whenever a result is computed
	width     int      // Terminal width
	height    int      // Terminal height

	// Step components. Kept across Back so raw input survives.
	countStep   *CountStep
	weightsStep *ComponentForm
	marksStep   *ComponentForm
	resultStep  *ResultStep

	showAbout bool
}

// New creates a wizard model with a fresh session built from cfg.
func New(cfg *config.Config) *WizardModel {
	return &WizardModel{
		session:  cfg.NewSession(),
		rounding: cfg.RoundingPolicy(),
	}
}

// Run is the entry point for the grade wizard.
// It creates a standalone BubbleTea program, runs it, and returns the outcome.
// Returns ErrCancelled if the user quits before confirming a result.
func Run(cfg *config.Config) (*Outcome, error) {
	m := New(cfg)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	if wizModel.cancelled || !wizModel.finished {
		return nil, ErrCancelled
	}

	return wizModel.outcome, nil
}

// Init initializes the wizard model.
func (m *WizardModel) Init() tea.Cmd {
	m.countStep = NewCountStep(m.session.MaxComponents(), "")
	return m.countStep.Init()
}

// Step returns the step the session is on.
func (m *WizardModel) Step() grade.Step {
	return m.session.Step()
}

// Outcome returns the most recently computed outcome, or nil.
func (m *WizardModel) Outcome() *Outcome {
	return m.outcome
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if m.showAbout {
			switch msg.String() {
			case "ctrl+c":
				m.cancelled = true
				return m, tea.Quit
			case "esc", "enter", "f1", "q":
				m.showAbout = false
			}
			// Ignore other keys while the about box is open
			return m, nil
		}

		// Global keybindings
		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "f1":
			m.showAbout = true
			return m, nil
		case "ctrl+r":
			return m.restart()
		case "esc":
			if m.session.Step() == grade.StepCollectCount {
				// On first step, exit wizard
				m.cancelled = true
				return m, tea.Quit
			}
			return m.goBack()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case CountSubmittedMsg:
		// Drop submissions that arrive after the user navigated away
		if m.session.Step() != grade.StepCollectCount || m.countStep == nil {
			logger.Debug("Ignoring stale count submission on %s", m.session.Step())
			return m, nil
		}
		if err := m.session.SetComponentCount(msg.Input); err != nil {
			logger.Debug("Component count rejected: %v", err)
			m.countStep.SetError(grade.UserMessage(err))
			return m, nil
		}
		logger.Debug("Component count set to %d", m.session.ComponentCount())

		var prev []string
		if m.weightsStep != nil {
			prev = m.weightsStep.Values()
		}
		m.weightsStep = NewWeightsForm(m.session.ComponentCount(), prev)
		m.marksStep = nil
		m.resultStep = nil
		m.updateCurrentStepSize()
		return m, m.weightsStep.Init()

	case WeightsSubmittedMsg:
		if m.session.Step() != grade.StepCollectWeights || m.weightsStep == nil {
			logger.Debug("Ignoring stale weightings submission on %s", m.session.Step())
			return m, nil
		}
		if err := m.session.SetWeightings(msg.Inputs); err != nil {
			logger.Debug("Weightings rejected: %v", err)
			m.weightsStep.SetError(grade.UserMessage(err))
			return m, nil
		}
		logger.Debug("Weightings set to %v", m.session.Weights())

		var prev []string
		if m.marksStep != nil && m.marksStep.Len() == m.session.ComponentCount() {
			prev = m.marksStep.Values()
		}
		m.marksStep = NewMarksForm(m.session.Weights(), prev)
		m.resultStep = nil
		m.updateCurrentStepSize()
		return m, m.marksStep.Init()

	case MarksSubmittedMsg:
		if m.session.Step() != grade.StepCollectMarks || m.marksStep == nil {
			logger.Debug("Ignoring stale marks submission on %s", m.session.Step())
			return m, nil
		}
		if err := m.session.SetMarks(msg.Inputs); err != nil {
			logger.Debug("Marks rejected: %v", err)
			m.marksStep.SetError(grade.UserMessage(err))
			return m, nil
		}
		logger.Debug("Marks set to %v", m.session.Marks())

		result, err := m.session.ComputeResult()
		if err != nil {
			// Unreachable after a successful SetMarks
			logger.Error("Compute result failed: %v", err)
			m.marksStep.SetError(err.Error())
			return m, nil
		}
		formatted := result.Format(m.rounding)
		logger.Info("Module mark computed: %s", formatted.Total)

		m.outcome = &Outcome{
			Weights:   m.session.Weights(),
			Marks:     m.session.Marks(),
			Result:    result,
			Formatted: formatted,
		}
		m.resultStep = NewResultStep(formatted, m.session.Weights())
		m.updateCurrentStepSize()
		return m, nil

	case RestartMsg:
		return m.restart()

	case FinishMsg:
		if m.session.Step() != grade.StepShowResult {
			return m, nil
		}
		m.finished = true
		return m, tea.Quit
	}

	return m, m.updateCurrentStep(msg)
}

// goBack moves the session to the previous step and refocuses its view.
func (m *WizardModel) goBack() (tea.Model, tea.Cmd) {
	from := m.session.Step()
	m.session.GoBack()
	logger.Debug("Back: %s -> %s", from, m.session.Step())
	m.updateCurrentStepSize()
	return m, m.focusCurrentStep()
}

// restart discards the session and all step components.
func (m *WizardModel) restart() (tea.Model, tea.Cmd) {
	logger.Debug("Restarting wizard from %s", m.session.Step())
	m.session.Restart()
	m.outcome = nil
	m.weightsStep = nil
	m.marksStep = nil
	m.resultStep = nil
	m.countStep = NewCountStep(m.session.MaxComponents(), "")
	m.updateCurrentStepSize()
	return m, m.countStep.Init()
}

// focusCurrentStep returns the focus command for the current step.
func (m *WizardModel) focusCurrentStep() tea.Cmd {
	switch m.session.Step() {
	case grade.StepCollectCount:
		if m.countStep == nil {
			m.countStep = NewCountStep(m.session.MaxComponents(), strconv.Itoa(m.session.ComponentCount()))
		}
		return m.countStep.Init()
	case grade.StepCollectWeights:
		if m.weightsStep != nil {
			return m.weightsStep.Init()
		}
	case grade.StepCollectMarks:
		if m.marksStep != nil {
			return m.marksStep.Init()
		}
	}
	return nil
}

// updateCurrentStep forwards msg to the current step component.
func (m *WizardModel) updateCurrentStep(msg tea.Msg) tea.Cmd {
	switch m.session.Step() {
	case grade.StepCollectCount:
		if m.countStep != nil {
			return m.countStep.Update(msg)
		}
	case grade.StepCollectWeights:
		if m.weightsStep != nil {
			return m.weightsStep.Update(msg)
		}
	case grade.StepCollectMarks:
		if m.marksStep != nil {
			return m.marksStep.Update(msg)
		}
	case grade.StepShowResult:
		if m.resultStep != nil {
			return m.resultStep.Update(msg)
		}
	}
	return nil
}

// updateCurrentStepSize updates the size of the current step component.
func (m *WizardModel) updateCurrentStepSize() {
	contentWidth, contentHeight := m.contentSize()

	switch m.session.Step() {
	case grade.StepCollectCount:
		if m.countStep != nil {
			m.countStep.SetSize(contentWidth, contentHeight)
		}
	case grade.StepCollectWeights:
		if m.weightsStep != nil {
			m.weightsStep.SetSize(contentWidth, contentHeight)
		}
	case grade.StepCollectMarks:
		if m.marksStep != nil {
			m.marksStep.SetSize(contentWidth, contentHeight)
		}
	case grade.StepShowResult:
		if m.resultStep != nil {
			m.resultStep.SetSize(contentWidth, contentHeight)
		}
	}
}

// contentSize returns the space available inside the modal.
func (m *WizardModel) contentSize() (int, int) {
	// Reserve space for modal container (padding, borders, title, buttons)
	return max(m.width-10, 40), max(m.height-10, 10)
}

// View renders the wizard UI.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.WindowTitle = about.Title

	if m.width == 0 || m.height == 0 {
		// Not ready to render
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderModal(m.renderCurrentStep(), m.buttons())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// renderCurrentStep renders the body of the modal.
func (m *WizardModel) renderCurrentStep() string {
	if m.showAbout {
		contentWidth, _ := m.contentSize()
		return about.Render(min(contentWidth, 76)) + "\n\n" + renderHintBar("esc", "close")
	}

	switch m.session.Step() {
	case grade.StepCollectCount:
		if m.countStep != nil {
			return m.countStep.View()
		}
	case grade.StepCollectWeights:
		if m.weightsStep != nil {
			return m.weightsStep.View()
		}
	case grade.StepCollectMarks:
		if m.marksStep != nil {
			return m.marksStep.View()
		}
	case grade.StepShowResult:
		if m.resultStep != nil {
			return m.resultStep.View()
		}
	}
	return ""
}

// buttons returns the button set for the current step.
func (m *WizardModel) buttons() []Button {
	if m.showAbout {
		return []Button{{Label: "OK", Key: "esc", State: ButtonFocused}}
	}
	switch m.session.Step() {
	case grade.StepCollectCount:
		return CreateCancelNextButtons()
	case grade.StepCollectWeights:
		return CreateBackNextButtons("Next")
	case grade.StepCollectMarks:
		return CreateBackNextButtons("Calculate")
	default:
		return CreateBackRestartButtons()
	}
}

// renderModal wraps the step content in a modal container with title.
func (m *WizardModel) renderModal(stepContent string, buttons []Button) string {
	s := theme.Current().S()

	title := fmt.Sprintf("%s - Step %d of 4: %s", about.Title, int(m.session.Step())+1, m.session.Step().Title())
	if m.showAbout {
		title = "About " + about.Title
	}

	// Calculate modal dimensions based on terminal size
	modalWidth := min(max(m.width-10, 60), 90)

	bar := NewButtonBar(buttons)
	bar.SetWidth(modalWidth - 6)

	content := strings.Join([]string{
		s.ModalTitle.Render(title),
		"",
		stepContent,
		"",
		bar.Render(),
	}, "\n")

	modalContent := s.ModalContainer.Width(modalWidth).Render(content)

	// Center the modal on screen
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		modalContent,
	)
}
