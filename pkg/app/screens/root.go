package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/config"
	"github.com/kerbaras/moviebox/pkg/services"
	"github.com/kerbaras/moviebox/pkg/sources"
)

type screenType int

const (
	homeView screenType = iota
	searchView
)

// header is the logo and tab line plus the indicator line beneath it.
const headerHeight = 2

type RootScreen struct {
	currentView screenType
	home        *HomeScreen
	search      *SearchScreen
	help        help.Model

	width  int
	height int
}

func NewRootScreen(ctx context.Context, cfg *config.Config, controller *services.HomeController, source sources.Source, images ImageFetcher) *RootScreen {
	h := help.New()
	h.Styles.ShortKey = styles.MutedStyle
	h.Styles.ShortDesc = styles.MutedStyle

	return &RootScreen{
		currentView: homeView,
		home:        NewHomeScreen(ctx, cfg.UI, controller, images),
		search:      NewSearchScreen(ctx, source),
		help:        h,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.home.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.help.Width = msg.Width

		inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-headerHeight-r.footerHeight(), 0)}
		_, homeCmd := r.home.Update(inner)
		_, searchCmd := r.search.Update(inner)
		return r, tea.Batch(homeCmd, searchCmd)

	case tea.KeyMsg:
		typing := r.currentView == searchView && r.search.Focused()
		switch {
		case msg.String() == "ctrl+c":
			return r, tea.Quit
		case !typing && key.Matches(msg, keys.Quit):
			return r, tea.Quit
		case !typing && key.Matches(msg, keys.Help):
			r.help.ShowAll = !r.help.ShowAll
			return r, r.resize()
		case key.Matches(msg, keys.Tab):
			return r, r.switchTo((r.currentView + 1) % 2)
		case r.currentView == homeView && key.Matches(msg, keys.Search):
			return r, r.switchTo(searchView)
		}

	case tea.MouseMsg:
		if msg.Y < headerHeight {
			return r, nil
		}
		msg.Y -= headerHeight
		if r.currentView == homeView {
			_, cmd = r.home.Update(msg)
		}
		return r, cmd

	case categoryLoadedMsg, artLoadedMsg, slideFrameMsg, spinner.TickMsg:
		// home keeps loading and animating while search is shown
		_, cmd = r.home.Update(msg)
		return r, cmd

	case searchResultMsg:
		_, cmd = r.search.Update(msg)
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case homeView:
		_, cmd = r.home.Update(msg)
	case searchView:
		_, cmd = r.search.Update(msg)
	}
	return r, cmd
}

func (r *RootScreen) switchTo(view screenType) tea.Cmd {
	r.currentView = view
	if view == searchView {
		return tea.Batch(r.search.Focus(), r.search.Init())
	}
	return nil
}

func (r *RootScreen) footerHeight() int {
	return lipgloss.Height(r.help.View(keys)) + 1
}

func (r *RootScreen) resize() tea.Cmd {
	if r.width == 0 {
		return nil
	}
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: r.width, Height: r.height}
	}
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case homeView:
		content = r.home.View()
	case searchView:
		content = r.search.View()
	}

	return fmt.Sprintf("%s\n%s\n\n%s", r.renderHeader(), content, r.help.View(keys))
}

// renderHeader draws the logo, the tabs and a dot under the active tab. The
// background is dropped once the home view scrolls past the top tenth.
func (r *RootScreen) renderHeader() string {
	logo := styles.LogoStyle.Render("MOVIEBOX")

	tabs := []string{"Home", "Search"}
	rendered := make([]string, len(tabs))
	indicator := strings.Repeat(" ", lipgloss.Width(logo))
	for i, tab := range tabs {
		style := styles.InactiveTabStyle
		if screenType(i) == r.currentView {
			style = styles.ActiveTabStyle
		}
		rendered[i] = style.Render(tab)

		w := lipgloss.Width(rendered[i])
		if screenType(i) == r.currentView {
			indicator += lipgloss.PlaceHorizontal(w, lipgloss.Center, styles.IndicatorStyle.Render("•"))
		} else {
			indicator += strings.Repeat(" ", w)
		}
	}

	search := styles.MutedStyle.Render("/ search")
	if r.currentView == searchView {
		search = styles.MutedStyle.Render("esc: focus results")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{logo}, rendered...)...)
	gap := max(r.width-lipgloss.Width(line)-lipgloss.Width(search)-2, 1)
	line += strings.Repeat(" ", gap) + search

	scroll := 0.0
	if r.currentView == homeView {
		scroll = r.home.ScrollProgress()
	}
	style := styles.HeaderFor(scroll)
	if r.width > 0 {
		style = style.Width(r.width)
	}
	return style.Render(line + "\n" + indicator)
}
