package console

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Secondary = lipgloss.Color("#10B981") // Green
	Info      = lipgloss.Color("#60A5FA") // Blue
	Error     = lipgloss.Color("#EF4444") // Red
)

// Status markers, kept from the original script output
const (
	MarkOK  = " 🟢 "
	MarkNew = " 🔵 "
	MarkErr = " 🔴 "
)

// Styles groups the styles bound to one output renderer
type Styles struct {
	OK  lipgloss.Style
	New lipgloss.Style
	Err lipgloss.Style
}

// NewStyles creates the status styles for a renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		OK:  r.NewStyle().Foreground(Secondary),
		New: r.NewStyle().Foreground(Info).Bold(true),
		Err: r.NewStyle().Foreground(Error).Bold(true),
	}
}
