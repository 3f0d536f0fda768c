package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Red           = lipgloss.Color("#E50914")
	BlackLighter  = lipgloss.Color("#2F2F2F")
	BlackDarker   = lipgloss.Color("#181818")
	BlackVeryDark = lipgloss.Color("#141414")
	WhiteLighter  = lipgloss.Color("#FFFFFF")
	WhiteDarker   = lipgloss.Color("#E5E5E5")
	Muted         = lipgloss.Color("#808080")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true).
			Padding(0, 2, 0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(WhiteLighter).
			Bold(true)

	// Row heading above a card row
	RowTitleStyle = lipgloss.NewStyle().
			Foreground(WhiteDarker).
			Bold(true).
			MarginLeft(1)

	TextStyle = lipgloss.NewStyle().
			Foreground(WhiteDarker)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(BlackLighter).
			Background(BlackDarker).
			Foreground(WhiteDarker).
			Padding(0, 1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Red).
			Background(BlackLighter).
			Foreground(WhiteLighter).
			Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Padding(1, 3)

	BannerTitleStyle = lipgloss.NewStyle().
				Foreground(WhiteLighter).
				Bold(true).
				MarginBottom(1)

	ModalStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Red).
			Background(BlackLighter).
			Foreground(WhiteLighter).
			Padding(1, 2)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	StatusLoading = lipgloss.NewStyle().
			Foreground(WhiteDarker).
			Italic(true)

	// Header, opaque while the page is near the top
	HeaderStyle = lipgloss.NewStyle().
			Background(BlackVeryDark).
			Padding(0, 1)

	TransparentHeaderStyle = lipgloss.NewStyle().
				Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(WhiteLighter).
			Bold(true).
			Padding(0, 2)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(WhiteDarker).
				Padding(0, 2)

	// Dot under the active tab
	IndicatorStyle = lipgloss.NewStyle().
			Foreground(Red)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(BlackLighter).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(WhiteLighter).
				Padding(0, 1)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Red)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(BlackLighter)
)

// HeaderFor returns the header style for a scroll progress in [0,1].
func HeaderFor(scroll float64) lipgloss.Style {
	if scroll > 0.1 {
		return TransparentHeaderStyle
	}
	return HeaderStyle
}
