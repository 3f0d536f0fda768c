package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/data"
)

const bannerOverviewLines = 3

// Banner is the hero area at the top of the home view.
type Banner struct {
	Movie data.Movie
	// Art is pre-rendered backdrop art, empty when disabled or not loaded.
	Art   string
	Width int
}

func (b Banner) View() string {
	width := max(b.Width-6, 20)

	title := styles.BannerTitleStyle.Render(b.Movie.DisplayTitle())
	overview := styles.TextStyle.Width(width).Render(b.Movie.Overview)
	overview = clipLines(overview, bannerOverviewLines)
	hint := styles.MutedStyle.Render("space: next page  enter: details")

	text := styles.BannerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, overview, "", hint))
	if b.Art == "" {
		return text
	}
	return lipgloss.JoinVertical(lipgloss.Left, b.Art, text)
}

// clipLines keeps the first n lines, marking the cut with an ellipsis.
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	lines[n-1] = strings.TrimRight(lines[n-1], " ") + "…"
	return strings.Join(lines, "\n")
}
