package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pthm/codegauge/internal/rules"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Severity styles
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Suggestion lipgloss.Style
	Info       lipgloss.Style
	Success    lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Path      lipgloss.Style
	Label     lipgloss.Style
	BarStyle  lipgloss.Style
	Code      lipgloss.Style
	Separator lipgloss.Style

	// Rating badges
	ratings map[rules.Rating]lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError      string
	IconWarning    string
	IconSuggestion string
	IconInfo       string
	IconSuccess    string
	BarFull        string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled, ratings: make(map[rules.Rating]lipgloss.Style)}

	if enabled {
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))       // Red
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
		s.Suggestion = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // Cyan
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))       // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))    // Green

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Width(18)
		s.BarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
		s.Code = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("0"))
		s.ratings[rules.Excellent] = badge.Background(lipgloss.Color("#40d96a"))
		s.ratings[rules.Good] = badge.Background(lipgloss.Color("#33bbee"))
		s.ratings[rules.Fair] = badge.Background(lipgloss.Color("#f4b03d"))
		s.ratings[rules.Poor] = badge.Background(lipgloss.Color("#e04848"))

		s.IconError = "✗"
		s.IconWarning = "⚠"
		s.IconSuggestion = "\U0001f4a1"
		s.IconInfo = "ℹ"
		s.IconSuccess = "✓"
		s.BarFull = "█"
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Suggestion = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle().Width(18)
		s.BarStyle = lipgloss.NewStyle()
		s.Code = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconSuggestion = "HINT:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
		s.BarFull = "#"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Rating renders a quality rating as a badge
func (s *Styles) Rating(r rules.Rating) string {
	style, ok := s.ratings[r]
	if !ok {
		return "[" + string(r) + "]"
	}
	return style.Render(string(r))
}

// ForSeverity returns the style and icon used for a severity
func (s *Styles) ForSeverity(sev rules.Severity) (lipgloss.Style, string) {
	switch sev {
	case rules.Error:
		return s.Error, s.IconError
	case rules.Warning:
		return s.Warning, s.IconWarning
	case rules.Suggestion:
		return s.Suggestion, s.IconSuggestion
	default:
		return s.Info, s.IconInfo
	}
}
