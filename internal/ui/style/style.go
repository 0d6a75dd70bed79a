// Package style provides the brand colors and icons shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Color is a hex terminal color.
type Color = lipgloss.Color

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
	Dot     = "●"
)

// Bold renders s in bold using the brand accent color.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Iris).Render(s)
}
