package tui

import "github.com/charmbracelet/lipgloss"

const (
	ColorAccent    = "86"  // titles, active tab
	ColorHighlight = "205" // cursor
	ColorDanger    = "196" // load failure
	ColorMuted     = "241" // description, hints
	ColorText      = "252"
)

var Styles = struct {
	Heading     lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Question    lipgloss.Style
	Cursor      lipgloss.Style
	Answer      lipgloss.Style
	Empty       lipgloss.Style
	Error       lipgloss.Style
	Hint        lipgloss.Style
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		MarginBottom(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Description: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		MarginBottom(1),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	ActiveTab: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true).
		Padding(0, 1),
	Question: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Cursor: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Answer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		PaddingLeft(4),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		MarginTop(1),
}
