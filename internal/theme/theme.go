package theme

import "github.com/charmbracelet/lipgloss"

// Scheme is a platform color scheme name.
type Scheme string

const (
	BrightLight Scheme = "bright_light"
	SpaceGray   Scheme = "space_gray"
	ClientLight Scheme = "client_light"
	ClientDark  Scheme = "client_dark"
)

// Parse maps a scheme name to a known scheme, falling back to BrightLight.
func Parse(name string) Scheme {
	switch s := Scheme(name); s {
	case BrightLight, SpaceGray, ClientLight, ClientDark:
		return s
	default:
		return BrightLight
	}
}

// Dark reports whether the scheme has a dark background.
func (s Scheme) Dark() bool {
	return s == SpaceGray || s == ClientDark
}

// Palette holds the styles used by every screen.
type Palette struct {
	Scheme    Scheme
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Correct   lipgloss.Style
	Wrong     lipgloss.Style
	Timer     lipgloss.Style
	Urgent    lipgloss.Style
	Alert     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
}

// For returns the palette of a scheme.
func For(s Scheme) Palette {
	accent, text, muted := lipgloss.Color("27"), lipgloss.Color("235"), lipgloss.Color("245")
	if s.Dark() {
		accent, text, muted = lipgloss.Color("39"), lipgloss.Color("252"), lipgloss.Color("242")
	}

	return Palette{
		Scheme:    s,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Text:      lipgloss.NewStyle().Foreground(text),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Selected:  lipgloss.NewStyle().Reverse(true),
		Correct:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green for correct answers
		Wrong:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // Red for wrong answers
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Urgent:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Alert:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true).Padding(0, 1),
	}
}
