package wizard

// CountSubmittedMsg is sent when the user submits the component count.
type CountSubmittedMsg struct {
	Input string
}

// WeightsSubmittedMsg is sent when the user submits the weightings form.
type WeightsSubmittedMsg struct {
	Inputs []string
}

// MarksSubmittedMsg is sent when the user submits the marks form.
type MarksSubmittedMsg struct {
	Inputs []string
}

// RestartMsg resets the wizard to the count step.
type RestartMsg struct{}

// FinishMsg closes the wizard, keeping the computed result.
type FinishMsg struct{}
