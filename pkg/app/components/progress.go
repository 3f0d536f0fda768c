package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/data"
)

// LoadProgress summarizes category fetches for the status line.
type LoadProgress struct {
	results []data.CategoryResult
	width   int
}

func NewLoadProgress(width int) *LoadProgress {
	return &LoadProgress{width: width}
}

func (p *LoadProgress) Update(results []data.CategoryResult) {
	p.results = results
}

func (p *LoadProgress) Counts() (settled, failed, total int) {
	for _, res := range p.results {
		switch res.Status {
		case data.StatusReady:
			settled++
		case data.StatusFailed:
			settled++
			failed++
		}
	}
	return settled, failed, len(p.results)
}

func (p *LoadProgress) Done() bool {
	settled, _, total := p.Counts()
	return settled == total
}

func (p *LoadProgress) View() string {
	settled, _, total := p.Counts()
	var b strings.Builder

	if settled < total {
		b.WriteString(styles.StatusLoading.Render(fmt.Sprintf("Loading %d/%d categories", settled, total)))
		b.WriteString("\n")
		b.WriteString(renderProgressBar(settled, total, min(p.width-4, 40)))
		b.WriteString("\n")
	}

	for _, res := range p.results {
		if res.Status != data.StatusFailed {
			continue
		}
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%s unavailable", res.Key.Label())))
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// PageDots renders a page indicator such as "● ○ ○".
func PageDots(current, total int) string {
	if total <= 1 {
		return ""
	}
	dots := make([]string, total)
	for i := range dots {
		if i == current {
			dots[i] = styles.IndicatorStyle.Render("●")
		} else {
			dots[i] = styles.MutedStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
