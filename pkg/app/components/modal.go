package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/data"
)

// Modal shows the details of one movie over the current screen.
type Modal struct {
	Movie  data.Movie
	Art    string
	Width  int
	Height int
}

func (m Modal) View() string {
	width := min(max(m.Width*2/3, 30), 90)
	textWidth := width - 4

	var meta []string
	if year := m.Movie.Year(); year != "" {
		meta = append(meta, year)
	}
	if m.Movie.VoteAverage > 0 {
		meta = append(meta, styles.RatingStyle.Render(fmt.Sprintf("★ %.1f", m.Movie.VoteAverage)))
	}
	if m.Movie.OriginalTitle != "" && m.Movie.OriginalTitle != m.Movie.DisplayTitle() {
		meta = append(meta, styles.MutedStyle.Render(m.Movie.OriginalTitle))
	}

	overview := m.Movie.Overview
	if strings.TrimSpace(overview) == "" {
		overview = "No overview available."
	}

	parts := []string{}
	if m.Art != "" {
		parts = append(parts, m.Art, "")
	}
	parts = append(parts,
		styles.TitleStyle.Render(m.Movie.DisplayTitle()),
		strings.Join(meta, "  "),
		"",
		styles.TextStyle.Width(textWidth).Render(overview),
		styles.HelpStyle.Render("esc: close"),
	)

	box := styles.ModalStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.Width <= 0 || m.Height <= 0 {
		return box
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
