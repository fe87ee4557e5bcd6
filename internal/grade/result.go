package grade

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Result is the outcome of a completed session. Weights and Marks are the
// committed inputs the contributions were computed from.
type Result struct {
	Total         float64   `yaml:"total"`
	Contributions []float64 `yaml:"contributions"`
	Weights       []float64 `yaml:"weights"`
	Marks         []float64 `yaml:"marks"`
}

// Rounding selects how values are rounded to two decimals for display.
type Rounding int

const (
	// RoundHalfUp rounds halves away from zero (0.125 -> 0.13).
	RoundHalfUp Rounding = iota
	// RoundHalfEven rounds halves to the even neighbour (0.125 -> 0.12).
	RoundHalfEven
)

// String returns the configuration name of the policy.
func (r Rounding) String() string {
	switch r {
	case RoundHalfUp:
		return "half-up"
	case RoundHalfEven:
		return "half-even"
	default:
		return fmt.Sprintf("rounding(%d)", int(r))
	}
}

// ParseRounding parses a rounding policy name. The empty string selects
// RoundHalfUp.
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "half-up", "half_up":
		return RoundHalfUp, nil
	case "half-even", "half_even", "bankers":
		return RoundHalfEven, nil
	default:
		return RoundHalfUp, fmt.Errorf("invalid rounding policy: %s", s)
	}
}

// FormatMark renders v with two decimal places using policy r.
//
// Half-up rounds v*100 away from zero, so 2.675 renders as 2.68. Half-even
// rounds the exact binary value, so 2.675 (stored just below the tie) renders
// as 2.67. Values too large to scale are formatted directly.
func FormatMark(v float64, r Rounding) string {
	var out string
	scaled := v * 100
	if r == RoundHalfEven || math.IsInf(scaled, 0) {
		out = strconv.FormatFloat(v, 'f', 2, 64)
	} else {
		out = strconv.FormatFloat(math.Round(scaled)/100, 'f', 2, 64)
	}
	if strings.Trim(out, "-0.") == "" {
		return "0.00" // drop negative zero
	}
	return out
}

// FormattedResult is a Result rendered for display.
type FormattedResult struct {
	Total         string   `yaml:"total"`
	Contributions []string `yaml:"contributions"`
}

// Format renders the total and each contribution with policy r.
func (r Result) Format(policy Rounding) FormattedResult {
	out := FormattedResult{
		Total:         FormatMark(r.Total, policy),
		Contributions: make([]string, len(r.Contributions)),
	}
	for i, c := range r.Contributions {
		out.Contributions[i] = FormatMark(c, policy)
	}
	return out
}

// Summary renders a formatted result as plain text: the total on the first
// line, then one line per component with its weighting.
func Summary(r FormattedResult, weights []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total module mark: %s", r.Total)
	for i, c := range r.Contributions {
		fmt.Fprintf(&b, "\n  Component %d: %s", i+1, c)
		if i < len(weights) {
			fmt.Fprintf(&b, " (%s%% weighting)", strconv.FormatFloat(weights[i], 'f', -1, 64))
		}
	}
	return b.String()
}
