// Package styles holds the lipgloss styles for CLI status output.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/designtokens/internal/contrast"
)

// Color palette
var (
	Primary = lipgloss.Color("#7C3AED") // Purple

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red
	Info    = lipgloss.Color("#3B82F6") // Blue

	// Text colors
	TextMuted = lipgloss.Color("#6B7280")
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
)

// Status line styles
var (
	StatusOK = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusWarn = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StatusInfo = lipgloss.NewStyle().
			Foreground(Info)
)

// statusLabelWidth aligns the messages of consecutive status lines.
const statusLabelWidth = 10

// StatusLine renders "label  message" with the label padded to a fixed
// visible width.
func StatusLine(style lipgloss.Style, label, message string) string {
	return Pad(style.Render(label), statusLabelWidth) + message
}

// Pad right-pads s with spaces to width visible cells. Escape sequences do
// not count towards the width.
func Pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

var levelColors = map[contrast.Level]lipgloss.Color{
	contrast.LevelAAA:  Success,
	contrast.LevelAA:   Info,
	contrast.LevelFail: Error,
}

// LevelBadge renders a WCAG level as a colored badge.
func LevelBadge(level contrast.Level) string {
	bg, ok := levelColors[level]
	if !ok {
		bg = TextMuted
	}
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(lipgloss.Color(ReadableText(string(bg)))).
		Bold(true).
		Padding(0, 1).
		Render(string(level))
}

// Chip renders hex as a small color sample labeled with its own value.
func Chip(hex string) string {
	norm, err := contrast.NormalizeHex(hex)
	if err != nil {
		return Muted.Render(hex)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(norm)).
		Foreground(lipgloss.Color(ReadableText(norm))).
		Padding(0, 1).
		Render(norm)
}
