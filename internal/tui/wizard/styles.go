package wizard

import (
	"github.com/techangelx/gradewiz/internal/tui/theme"
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("tab", "next field", "enter", "next", "esc", "back")
// Returns: "tab next field • enter next • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + s.HintSeparator.Render("•") + " "
		}
		result += s.HintKey.Render(pairs[i]) + " " + s.HintDesc.Render(pairs[i+1])
	}

	return result
}

// renderError renders a validation message, or nothing when msg is empty.
func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return theme.Current().S().Error.Render("✗ " + msg)
}
