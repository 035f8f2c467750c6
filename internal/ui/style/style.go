// Package style provides the shared colors, icons, and text styles used by the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Arrow   = "→"
	Branch  = "├── "
	Last    = "└── "
	Pipe    = "│   "
	Indent  = "    "
)

// Styles bundles the text styles bound to one lipgloss renderer.
type Styles struct {
	Heading lipgloss.Style
	Name    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
}

// New returns the styles rendered through r.
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Bold(true).Foreground(Iris),
		Name:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(Slate),
		Success: r.NewStyle().Foreground(Green),
	}
}
