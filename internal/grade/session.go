// Package grade implements the grade wizard state machine: a session that
// collects a component count, weightings and marks, and computes the
// weighted module mark.
package grade

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultMaxComponents is the component limit used when none is configured.
const DefaultMaxComponents = 5

// weightEpsilon is the tolerance for the weightings summing to 100.
const weightEpsilon = 1e-5

// Step identifies where a session is in the wizard.
type Step int

const (
	StepCollectCount Step = iota
	StepCollectWeights
	StepCollectMarks
	StepShowResult
)

// String returns the identifier of a step.
func (s Step) String() string {
	switch s {
	case StepCollectCount:
		return "collect-count"
	case StepCollectWeights:
		return "collect-weights"
	case StepCollectMarks:
		return "collect-marks"
	case StepShowResult:
		return "show-result"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Title returns a human-readable step name.
func (s Step) Title() string {
	switch s {
	case StepCollectCount:
		return "Number of Components"
	case StepCollectWeights:
		return "Component Weightings"
	case StepCollectMarks:
		return "Component Marks"
	case StepShowResult:
		return "Result"
	default:
		return s.String()
	}
}

// Session is the mutable state of one wizard run. The zero value is not
// usable; create sessions with NewSession.
type Session struct {
	maxComponents int
	step          Step
	count         int
	weights       []float64
	marks         []float64
}

// Option configures a Session.
type Option func(*Session)

// WithMaxComponents sets the upper bound for the component count.
// Values below 1 are ignored.
func WithMaxComponents(n int) Option {
	return func(s *Session) {
		if n >= 1 {
			s.maxComponents = n
		}
	}
}

// NewSession returns a fresh session on the count step.
func NewSession(opts ...Option) *Session {
	s := &Session{maxComponents: DefaultMaxComponents}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// MaxComponents returns the configured component limit.
func (s *Session) MaxComponents() int { return s.maxComponents }

// ComponentCount returns the committed component count, 0 before it is set.
func (s *Session) ComponentCount() int { return s.count }

// Weights returns a copy of the committed weightings.
func (s *Session) Weights() []float64 { return cloneFloats(s.weights) }

// Marks returns a copy of the committed marks.
func (s *Session) Marks() []float64 { return cloneFloats(s.marks) }

// SetComponentCount parses input as the number of components and advances
// to the weightings step. Previously entered weightings and marks are
// discarded.
func (s *Session) SetComponentCount(input string) error {
	if s.step != StepCollectCount {
		return fmt.Errorf("set component count from %s: %w", s.step, ErrWrongStep)
	}

	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > s.maxComponents {
		return &ValidationError{Kind: ErrInvalidCount, Index: -1, Input: input, Max: s.maxComponents}
	}

	s.count = n
	s.weights = make([]float64, n)
	s.marks = make([]float64, n)
	s.step = StepCollectWeights
	return nil
}

// SetWeightings parses one percentage weighting per component. All values
// must be non-negative and sum to 100. Nothing is committed unless every
// check passes.
func (s *Session) SetWeightings(inputs []string) error {
	if s.step != StepCollectWeights {
		return fmt.Errorf("set weightings from %s: %w", s.step, ErrWrongStep)
	}
	if len(inputs) != s.count {
		return &ValidationError{
			Kind:  ErrInvalidWeight,
			Index: -1,
			Input: fmt.Sprintf("expected %d weightings, got %d", s.count, len(inputs)),
		}
	}

	parsed := make([]float64, s.count)
	var total float64
	for i, in := range inputs {
		v, ok := parseNumber(in)
		if !ok || v < 0 {
			return &ValidationError{Kind: ErrInvalidWeight, Index: i, Input: in}
		}
		parsed[i] = v
		total += v
	}

	if math.Abs(total-100) >= weightEpsilon {
		return &ValidationError{Kind: ErrWeightSumMismatch, Index: -1, Sum: total}
	}

	s.weights = parsed
	s.step = StepCollectMarks
	return nil
}

// SetMarks parses one mark per component and advances to the result step.
// Marks carry no range or sign constraint.
func (s *Session) SetMarks(inputs []string) error {
	if s.step != StepCollectMarks {
		return fmt.Errorf("set marks from %s: %w", s.step, ErrWrongStep)
	}
	if len(inputs) != s.count {
		return &ValidationError{
			Kind:  ErrInvalidMark,
			Index: -1,
			Input: fmt.Sprintf("expected %d marks, got %d", s.count, len(inputs)),
		}
	}

	parsed := make([]float64, s.count)
	for i, in := range inputs {
		v, ok := parseNumber(in)
		if !ok {
			return &ValidationError{Kind: ErrInvalidMark, Index: i, Input: in}
		}
		parsed[i] = v
	}

	s.marks = parsed
	s.step = StepShowResult
	return nil
}

// ComputeResult returns the weighted module mark. It has no side effects and
// is only available on the result step.
func (s *Session) ComputeResult() (Result, error) {
	if s.step != StepShowResult {
		return Result{}, fmt.Errorf("compute result from %s: %w", s.step, ErrNotAtResult)
	}

	contributions := make([]float64, s.count)
	var total float64
	for i := range contributions {
		contributions[i] = s.marks[i] * (s.weights[i] / 100)
		total += contributions[i]
	}
	return Result{
		Total:         total,
		Contributions: contributions,
		Weights:       cloneFloats(s.weights),
		Marks:         cloneFloats(s.marks),
	}, nil
}

// Calculate drives a fresh session through every step with one raw input
// per component and returns the result. The count is taken from weights.
func Calculate(weights, marks []string, opts ...Option) (Result, error) {
	s := NewSession(opts...)
	if err := s.SetComponentCount(strconv.Itoa(len(weights))); err != nil {
		return Result{}, err
	}
	if err := s.SetWeightings(weights); err != nil {
		return Result{}, err
	}
	if err := s.SetMarks(marks); err != nil {
		return Result{}, err
	}
	return s.ComputeResult()
}

// GoBack moves to the previous step without validating or changing data.
// It does nothing on the count step.
func (s *Session) GoBack() {
	if s.step > StepCollectCount {
		s.step--
	}
}

// Restart discards all entered data and returns to the count step.
func (s *Session) Restart() {
	*s = Session{maxComponents: s.maxComponents}
}

// parseNumber parses a decimal number, rejecting NaN and infinities.
func parseNumber(in string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func cloneFloats(in []float64) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
