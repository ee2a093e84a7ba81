package diag

import "github.com/charmbracelet/lipgloss"

// Color palette for terminal diagnostics
var (
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorNote    = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	NoteStyle    = lipgloss.NewStyle().Foreground(ColorNote)
	SpanStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	CaretStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	GutterStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
)

func severityStyle(sev Severity) lipgloss.Style {
	switch sev {
	case SeverityWarning:
		return WarningStyle
	case SeverityNote:
		return NoteStyle
	default:
		return ErrorStyle
	}
}
