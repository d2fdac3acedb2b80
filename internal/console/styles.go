package console

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#6C7A89")
)

// Icons prefixed to result messages.
const (
	iconSuccess = "✓"
	iconWarning = "⚠"
	iconError   = "✗"
	iconPending = "○"
)

// styles holds the lipgloss styles bound to one output renderer.
type styles struct {
	Title     lipgloss.Style
	Option    lipgloss.Style
	Prompt    lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Label     lipgloss.Style
	Pending   lipgloss.Style
	Completed lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		Title:     r.NewStyle().Bold(true).Foreground(colorAccent),
		Option:    r.NewStyle(),
		Prompt:    r.NewStyle().Foreground(colorAccent),
		Muted:     r.NewStyle().Foreground(colorMuted),
		Success:   r.NewStyle().Foreground(colorSuccess),
		Warning:   r.NewStyle().Foreground(colorWarning),
		Error:     r.NewStyle().Foreground(colorError),
		Label:     r.NewStyle().Bold(true),
		Pending:   r.NewStyle().Foreground(colorWarning),
		Completed: r.NewStyle().Foreground(colorSuccess),
	}
}
