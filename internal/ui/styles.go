package ui

import "github.com/charmbracelet/lipgloss"

// Styles is the style set the reporters render with. A disabled set keeps
// every style a no-op and downgrades icons to ASCII so piped output stays
// clean.
type Styles struct {
	enabled bool

	// Score band styles
	Pass    lipgloss.Style
	Partial lipgloss.Style
	Fail    lipgloss.Style

	// Layout styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Rule      lipgloss.Style
	Separator lipgloss.Style

	// Band icons
	IconPass    string
	IconPartial string
	IconFail    string
}

// NewStyles builds the style set. Disabled styles render text unchanged.
func NewStyles(enabled bool) *Styles {
	plain := lipgloss.NewStyle()
	s := &Styles{
		enabled:     enabled,
		Pass:        plain,
		Partial:     plain,
		Fail:        plain,
		Header:      plain,
		Subheader:   plain,
		Rule:        plain,
		Separator:   plain,
		IconPass:    "PASS:",
		IconPartial: "PART:",
		IconFail:    "FAIL:",
	}
	if !enabled {
		return s
	}

	s.Pass = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.Partial = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	s.Fail = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s.Subheader = gray
	s.Rule = gray
	s.Separator = gray

	s.IconPass = "\u2713"    // ✓
	s.IconPartial = "\u26a0" // ⚠
	s.IconFail = "\u2717"    // ✗

	return s
}

// Enabled reports whether styling is on.
func (s *Styles) Enabled() bool { return s.enabled }
