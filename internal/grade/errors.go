package grade

import (
	"errors"
	"fmt"
)

// Validation error kinds. Each is recoverable: the session stays on its
// current step and the caller shows the user message.
var (
	ErrInvalidCount      = errors.New("invalid component count")
	ErrInvalidWeight     = errors.New("invalid weighting")
	ErrWeightSumMismatch = errors.New("weightings do not sum to 100")
	ErrInvalidMark       = errors.New("invalid mark")
)

// Misuse errors, returned when a transition is called out of order.
var (
	ErrWrongStep   = errors.New("transition not allowed in current step")
	ErrNotAtResult = errors.New("result is only available on the result step")
)

// ValidationError describes rejected user input.
type ValidationError struct {
	Kind  error   // One of the ErrInvalid*/ErrWeightSumMismatch sentinels
	Index int     // Offending component (0-based), -1 when not per-component
	Input string  // Raw input that failed, if any
	Max   int     // Configured maximum component count (count errors only)
	Sum   float64 // Parsed weighting sum (sum mismatch only)
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ErrInvalidCount:
		return fmt.Sprintf("%v: %q (want 1-%d)", e.Kind, e.Input, e.Max)
	case ErrWeightSumMismatch:
		return fmt.Sprintf("%v: got %g", e.Kind, e.Sum)
	}
	if e.Index >= 0 {
		return fmt.Sprintf("%v: component %d: %q", e.Kind, e.Index+1, e.Input)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Input)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// UserMessage returns the text shown to the user for this error.
func (e *ValidationError) UserMessage() string {
	switch e.Kind {
	case ErrInvalidCount:
		return fmt.Sprintf("Please enter a number of components between 1 and %d.", e.Max)
	case ErrInvalidWeight, ErrWeightSumMismatch:
		return "Please enter valid weighting numbers that sum up to 100%."
	case ErrInvalidMark:
		return "Please enter valid numbers for the scores."
	default:
		return e.Error()
	}
}

// IsValidation reports whether err is a user input validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UserMessage returns the user-facing text for err. Non-validation errors
// fall back to err.Error().
func UserMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.UserMessage()
	}
	return err.Error()
}
