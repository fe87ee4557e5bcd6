// Package about holds the GradeWiz about text and renders it for the terminal.
package about

import (
	"strings"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
)

// Title is the application title shown in the window title and modal header.
const Title = "GradeWiz ✔"

// Markdown is the about text.
const Markdown = `# GradeWiz ✔

A simple app that calculates a final module mark based on component
weightings and component marks.

1. Enter the number of components.
2. Enter the percentage weighting of each component (they must sum to 100%).
3. Enter the mark for each component.

The module mark is the sum of each mark multiplied by its weighting.

© 2024 Ricki Angel · https://github.com/TechAngelX

Licensed under the GNU General Public License v3.0
`

// Render renders the about text with glamour, wrapped to width.
// Falls back to plain wrapped text if rendering fails.
func Render(width int) string {
	// Cap width to 80 for readability
	if width <= 0 || width > 80 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plain(width)
	}

	rendered, err := r.Render(Markdown)
	if err != nil {
		return plain(width)
	}

	return strings.Trim(rendered, "\n")
}

func plain(width int) string {
	return lipgloss.NewStyle().Width(width).Render(Markdown)
}
