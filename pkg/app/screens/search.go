package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/moviebox/pkg/app/components"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/logging"
	"github.com/kerbaras/moviebox/pkg/sources"
)

type SearchScreen struct {
	ctx       context.Context
	source    sources.Source
	input     textinput.Model
	results   []data.Movie
	selected  int
	searching bool
	requestID int
	detail    *data.Movie
	width     int
	height    int
	err       error
}

func NewSearchScreen(ctx context.Context, source sources.Source) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Titles, people, genres..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		ctx:     ctx,
		source:  source,
		input:   ti,
		results: []data.Movie{},
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

// Focused reports whether keystrokes go to the query input.
func (s *SearchScreen) Focused() bool {
	return s.input.Focused() && s.detail == nil
}

func (s *SearchScreen) Focus() tea.Cmd {
	s.detail = nil
	return s.input.Focus()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.detail != nil {
			if key.Matches(msg, keys.Back) {
				s.detail = nil
			}
			return s, nil
		}

		switch {
		case key.Matches(msg, keys.Enter):
			if s.input.Focused() {
				query := s.input.Value()
				if query != "" {
					s.searching = true
					s.requestID++
					return s, s.performSearch(s.requestID, query)
				}
			} else if len(s.results) > 0 {
				movie := s.results[s.selected]
				s.detail = &movie
				return s, nil
			}

		case key.Matches(msg, keys.Back):
			// Switch focus between input and results
			if s.input.Focused() {
				s.input.Blur()
			} else {
				cmd = s.input.Focus()
			}
			return s, cmd

		case !s.input.Focused() && key.Matches(msg, keys.Up):
			if len(s.results) > 0 {
				s.selected--
				if s.selected < 0 {
					s.selected = len(s.results) - 1
				}
			}

		case !s.input.Focused() && key.Matches(msg, keys.Down):
			if len(s.results) > 0 {
				s.selected++
				if s.selected >= len(s.results) {
					s.selected = 0
				}
			}
		}

	case searchResultMsg:
		// a newer query has been issued since
		if msg.requestID != s.requestID {
			return s, nil
		}
		s.searching = false
		s.results = msg.results
		s.selected = 0
		s.err = msg.err
		if len(s.results) > 0 {
			s.input.Blur()
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	if s.detail != nil {
		return components.Modal{Movie: *s.detail, Width: s.width, Height: s.height}.View()
	}

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	var resultsView string
	if s.searching {
		resultsView = styles.StatusLoading.Render("Searching...")
	} else if len(s.results) > 0 {
		resultsView = s.renderResults()
	} else if s.input.Value() != "" && s.err == nil {
		resultsView = styles.MutedStyle.Render("No results found")
	}

	return fmt.Sprintf(" %s\n\n%s%s", inputView, errorMsg, resultsView)
}

// renderResults lists results as cards, windowed around the selection.
func (s *SearchScreen) renderResults() string {
	result := styles.MutedStyle.Render(fmt.Sprintf(" Found %d results:", len(s.results)))
	result += "\n\n"

	// input, counters and help take about 8 lines; a card takes 4
	visible := max((s.height-8)/4, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.results))

	for i := start; i < end; i++ {
		movie := s.results[i]
		cardStyle := styles.CardStyle
		if i == s.selected && !s.input.Focused() {
			cardStyle = styles.ActiveCardStyle
		}

		width := max(s.width-6, 20)
		title := styles.TitleStyle.Render(movie.DisplayTitle())
		meta := movie.Year()
		if movie.VoteAverage > 0 {
			meta = fmt.Sprintf("%s  ★ %.1f", meta, movie.VoteAverage)
		}
		description := styles.TextStyle.Render(ansi.Truncate(movie.Overview, width-4, "…"))

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title+"  "+styles.MutedStyle.Render(meta),
			description,
		)

		result += cardStyle.Width(width).Render(cardContent) + "\n"
	}

	return result
}

type searchResultMsg struct {
	requestID int
	results   []data.Movie
	err       error
}

func (s *SearchScreen) performSearch(requestID int, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := s.source.Search(s.ctx, query)
		if err != nil {
			logging.Ctx(s.ctx).Warn().Err(err).Str("query", query).Msg("search failed")
		}
		return searchResultMsg{requestID: requestID, results: results, err: err}
	}
}
