package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber     = lipgloss.Color("#F5A623")
	SlateDark = lipgloss.Color("#1F2937")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Ink       = lipgloss.Color("#111827")
	Green     = lipgloss.Color("#10B981")
	Red       = lipgloss.Color("#EF4444")
)

// Theme is the small set of styles the views draw with. Built per configured
// theme rather than mutated globally.
type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Favorite  lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Selected  lipgloss.Style
	Pane      lipgloss.Style
}

// NewTheme builds the style set for "dark" or "light".
func NewTheme(name string) Theme {
	fg, dim := White, DimGray
	if name == "light" {
		fg, dim = Ink, LightGray
	}
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(fg).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(LightGray),
		Dim:      lipgloss.NewStyle().Foreground(dim),
		Accent:   lipgloss.NewStyle().Foreground(Amber),
		Error:    lipgloss.NewStyle().Foreground(Red),
		Favorite: lipgloss.NewStyle().Foreground(Green),
		TabActive: lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true).
			Padding(0, 1),
		TabIdle: lipgloss.NewStyle().
			Foreground(dim).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(Ink).
			Background(Amber),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1),
	}
}
