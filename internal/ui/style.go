package ui

import "github.com/charmbracelet/lipgloss"

// Severity ranks how urgently an ingredient needs attention.
type Severity int

const (
	SeverityNone Severity = iota
	SeveritySoon
	SeverityUrgent
	SeverityExpired
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	soonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	urgentStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	expiredStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1"))
)

// Heading renders a section heading.
func Heading(text string) string {
	return render(headingStyle, text)
}

// Muted renders de-emphasized text such as placeholders.
func Muted(text string) string {
	return render(mutedStyle, text)
}

// Label renders a status label colored by severity.
func Label(text string, severity Severity) string {
	switch severity {
	case SeverityExpired:
		return render(expiredStyle, text)
	case SeverityUrgent:
		return render(urgentStyle, text)
	case SeveritySoon:
		return render(soonStyle, text)
	default:
		return text
	}
}

func render(style lipgloss.Style, text string) string {
	if text == "" || !ansiEnabled() {
		return text
	}
	return style.Render(text)
}
