package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/data"
)

const minCardWidth = 14

// CardRow renders one category page as a horizontal strip of cards.
type CardRow struct {
	Key           data.CategoryKey
	Items         []data.Movie
	SelectedIndex int
	Focused       bool
	Width         int
	// Offset shifts the strip right by this many columns while it slides in.
	Offset int
}

func NewCardRow(key data.CategoryKey) *CardRow {
	return &CardRow{
		Key:   key,
		Items: []data.Movie{},
		Width: 80,
	}
}

func (r *CardRow) SetItems(items []data.Movie) {
	r.Items = items
	if r.SelectedIndex >= len(items) && len(items) > 0 {
		r.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		r.SelectedIndex = 0
	}
}

func (r *CardRow) Next() {
	if len(r.Items) == 0 {
		return
	}
	r.SelectedIndex++
	if r.SelectedIndex >= len(r.Items) {
		r.SelectedIndex = 0
	}
}

func (r *CardRow) Prev() {
	if len(r.Items) == 0 {
		return
	}
	r.SelectedIndex--
	if r.SelectedIndex < 0 {
		r.SelectedIndex = len(r.Items) - 1
	}
}

func (r *CardRow) Selected() (data.Movie, bool) {
	if len(r.Items) == 0 || r.SelectedIndex >= len(r.Items) {
		return data.Movie{}, false
	}
	return r.Items[r.SelectedIndex], true
}

// CardWidth is the outer width of a single card for a row of perRow cards.
func CardWidth(total, perRow int) int {
	if perRow <= 0 {
		perRow = 1
	}
	w := total/perRow - 1
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// CardAt returns the index of the card under column x when the row is laid
// out with perRow cards.
func (r *CardRow) CardAt(x, perRow int) (int, bool) {
	if r.Width > 0 && x >= r.Width {
		return 0, false
	}
	x -= max(r.Offset, 0)
	if x < 0 {
		return 0, false
	}
	idx := x / CardWidth(r.Width, perRow)
	if idx >= len(r.Items) {
		return 0, false
	}
	return idx, true
}

func (r *CardRow) View(perRow int) string {
	heading := styles.RowTitleStyle.Render(r.Key.Label())
	if len(r.Items) == 0 {
		return heading + "\n" + styles.MutedStyle.MarginLeft(1).Render("Nothing more on this page")
	}

	outer := CardWidth(r.Width, perRow)
	// lipgloss widths exclude the border
	inner := outer - 2
	textWidth := inner - 2

	cards := make([]string, 0, len(r.Items))
	for i, movie := range r.Items {
		cardStyle := styles.CardStyle
		if r.Focused && i == r.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := ansi.Truncate(movie.DisplayTitle(), textWidth, "…")
		meta := movie.Year()
		if movie.VoteAverage > 0 {
			meta = strings.TrimSpace(fmt.Sprintf("%s ★ %.1f", meta, movie.VoteAverage))
		}

		content := lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(title),
			styles.MutedStyle.Render(ansi.Truncate(meta, textWidth, "")),
		)
		cards = append(cards, cardStyle.Width(inner).Render(content))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	return heading + "\n" + Shift(strip, r.Offset, r.Width)
}

// Shift moves every line of block right by offset columns and clips it to
// width.
func Shift(block string, offset, width int) string {
	if offset <= 0 && width <= 0 {
		return block
	}
	pad := strings.Repeat(" ", max(offset, 0))
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		line = pad + line
		if width > 0 {
			line = ansi.Truncate(line, width, "")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
