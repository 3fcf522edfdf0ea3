// Package theme provides theme definitions and management for the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used in the application UI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	AccentFg   lipgloss.Color // Foreground color for text on Accent background
	AccentDim  lipgloss.Color
	Border     lipgloss.Color
	BorderDim  lipgloss.Color
	MutedFg    lipgloss.Color
	TextFg     lipgloss.Color
	ErrorFg    lipgloss.Color
	AddedFg    lipgloss.Color // Added diff lines
	AddedBg    lipgloss.Color // Background wash for added lines
	RemovedFg  lipgloss.Color // Removed diff lines
	RemovedBg  lipgloss.Color // Background wash for removed lines
	GutterFg   lipgloss.Color // Line numbers in the diff gutter
}

// Theme names.
const (
	DraculaName         = "dracula"
	DraculaLightName    = "dracula-light"
	NordName            = "nord"
	GruvboxDarkName     = "gruvbox-dark"
	SolarizedLightName  = "solarized-light"
	CatppuccinMochaName = "catppuccin-mocha"
)

// Dracula returns the Dracula theme (dark background, vibrant colors).
func Dracula() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282A36"),
		Accent:     lipgloss.Color("#BD93F9"),
		AccentFg:   lipgloss.Color("#282A36"),
		AccentDim:  lipgloss.Color("#44475A"),
		Border:     lipgloss.Color("#6272A4"),
		BorderDim:  lipgloss.Color("#44475A"),
		MutedFg:    lipgloss.Color("#6272A4"),
		TextFg:     lipgloss.Color("#F8F8F2"),
		ErrorFg:    lipgloss.Color("#FF5555"),
		AddedFg:    lipgloss.Color("#50FA7B"),
		AddedBg:    lipgloss.Color("#1D3323"),
		RemovedFg:  lipgloss.Color("#FF5555"),
		RemovedBg:  lipgloss.Color("#3B2023"),
		GutterFg:   lipgloss.Color("#6272A4"),
	}
}

// DraculaLight returns the Dracula theme adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FFFFFF"),
		Accent:     lipgloss.Color("#c6dbe5"),
		AccentFg:   lipgloss.Color("#24292F"),
		AccentDim:  lipgloss.Color("#F3E8FF"),
		Border:     lipgloss.Color("#D0D7DE"),
		BorderDim:  lipgloss.Color("#E8E8E8"),
		MutedFg:    lipgloss.Color("#6E7781"),
		TextFg:     lipgloss.Color("#24292F"),
		ErrorFg:    lipgloss.Color("#DC2626"),
		AddedFg:    lipgloss.Color("#059669"),
		AddedBg:    lipgloss.Color("#E6FFEC"),
		RemovedFg:  lipgloss.Color("#DC2626"),
		RemovedBg:  lipgloss.Color("#FFEBE9"),
		GutterFg:   lipgloss.Color("#6E7781"),
	}
}

// Nord returns the Nord theme (arctic, bluish dark palette).
func Nord() *Theme {
	return &Theme{
		Background: lipgloss.Color("#2E3440"),
		Accent:     lipgloss.Color("#88C0D0"),
		AccentFg:   lipgloss.Color("#2E3440"),
		AccentDim:  lipgloss.Color("#3B4252"),
		Border:     lipgloss.Color("#4C566A"),
		BorderDim:  lipgloss.Color("#3B4252"),
		MutedFg:    lipgloss.Color("#616E88"),
		TextFg:     lipgloss.Color("#ECEFF4"),
		ErrorFg:    lipgloss.Color("#BF616A"),
		AddedFg:    lipgloss.Color("#A3BE8C"),
		AddedBg:    lipgloss.Color("#37404A"),
		RemovedFg:  lipgloss.Color("#BF616A"),
		RemovedBg:  lipgloss.Color("#40343B"),
		GutterFg:   lipgloss.Color("#616E88"),
	}
}

// GruvboxDark returns the Gruvbox dark theme.
func GruvboxDark() *Theme {
	return &Theme{
		Background: lipgloss.Color("#282828"),
		Accent:     lipgloss.Color("#FABD2F"),
		AccentFg:   lipgloss.Color("#282828"),
		AccentDim:  lipgloss.Color("#3C3836"),
		Border:     lipgloss.Color("#504945"),
		BorderDim:  lipgloss.Color("#3C3836"),
		MutedFg:    lipgloss.Color("#928374"),
		TextFg:     lipgloss.Color("#EBDBB2"),
		ErrorFg:    lipgloss.Color("#FB4934"),
		AddedFg:    lipgloss.Color("#B8BB26"),
		AddedBg:    lipgloss.Color("#32361A"),
		RemovedFg:  lipgloss.Color("#FB4934"),
		RemovedBg:  lipgloss.Color("#3C1F1E"),
		GutterFg:   lipgloss.Color("#928374"),
	}
}

// SolarizedLight returns the Solarized light theme.
func SolarizedLight() *Theme {
	return &Theme{
		Background: lipgloss.Color("#FDF6E3"),
		Accent:     lipgloss.Color("#268BD2"),
		AccentFg:   lipgloss.Color("#FDF6E3"),
		AccentDim:  lipgloss.Color("#EEE8D5"),
		Border:     lipgloss.Color("#93A1A1"),
		BorderDim:  lipgloss.Color("#EEE8D5"),
		MutedFg:    lipgloss.Color("#93A1A1"),
		TextFg:     lipgloss.Color("#657B83"),
		ErrorFg:    lipgloss.Color("#DC322F"),
		AddedFg:    lipgloss.Color("#859900"),
		AddedBg:    lipgloss.Color("#F2F0D8"),
		RemovedFg:  lipgloss.Color("#DC322F"),
		RemovedBg:  lipgloss.Color("#FBE7E4"),
		GutterFg:   lipgloss.Color("#93A1A1"),
	}
}

// CatppuccinMocha returns the Catppuccin Mocha theme.
func CatppuccinMocha() *Theme {
	return &Theme{
		Background: lipgloss.Color("#1E1E2E"),
		Accent:     lipgloss.Color("#CBA6F7"),
		AccentFg:   lipgloss.Color("#1E1E2E"),
		AccentDim:  lipgloss.Color("#313244"),
		Border:     lipgloss.Color("#45475A"),
		BorderDim:  lipgloss.Color("#313244"),
		MutedFg:    lipgloss.Color("#6C7086"),
		TextFg:     lipgloss.Color("#CDD6F4"),
		ErrorFg:    lipgloss.Color("#F38BA8"),
		AddedFg:    lipgloss.Color("#A6E3A1"),
		AddedBg:    lipgloss.Color("#2A3335"),
		RemovedFg:  lipgloss.Color("#F38BA8"),
		RemovedBg:  lipgloss.Color("#3B2838"),
		GutterFg:   lipgloss.Color("#6C7086"),
	}
}

// GetTheme returns a theme by name, or Dracula if not found.
func GetTheme(name string) *Theme {
	switch name {
	case DraculaLightName:
		return DraculaLight()
	case NordName:
		return Nord()
	case GruvboxDarkName:
		return GruvboxDark()
	case SolarizedLightName:
		return SolarizedLight()
	case CatppuccinMochaName:
		return CatppuccinMocha()
	default:
		return Dracula()
	}
}

// IsLight returns true if the theme is a light theme.
func IsLight(name string) bool {
	switch name {
	case DraculaLightName, SolarizedLightName:
		return true
	default:
		return false
	}
}

// DefaultDark returns the default dark theme name.
func DefaultDark() string {
	return DraculaName
}

// DefaultLight returns the default light theme name.
func DefaultLight() string {
	return DraculaLightName
}

// AvailableThemes returns a list of available theme names.
func AvailableThemes() []string {
	return []string{
		DraculaName,
		DraculaLightName,
		NordName,
		GruvboxDarkName,
		SolarizedLightName,
		CatppuccinMochaName,
	}
}
