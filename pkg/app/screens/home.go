package screens

import (
	"context"
	"image"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/moviebox/pkg/app/components"
	"github.com/kerbaras/moviebox/pkg/app/styles"
	"github.com/kerbaras/moviebox/pkg/config"
	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/logging"
	"github.com/kerbaras/moviebox/pkg/services"
)

// ImageFetcher downloads artwork by TMDB image path.
type ImageFetcher interface {
	Fetch(ctx context.Context, path string) (image.Image, error)
}

const (
	bannerArtHeight = 14
	modalArtHeight  = 10
)

type HomeScreen struct {
	ctx        context.Context
	ui         config.UIConfig
	controller *services.HomeController
	images     ImageFetcher

	rows       []*components.CardRow
	focusedRow int
	slide      components.Slide
	progress   *components.LoadProgress
	viewport   viewport.Model
	spinner    spinner.Model

	// decoded artwork by image path; nil entries are in flight or failed
	art      map[string]image.Image
	artCache map[artKey]string

	bannerHeight int
	// card rows as laid out by the last refresh, for mouse hit-testing
	rowHits []rowHit
	width        int
	height       int
}

func NewHomeScreen(ctx context.Context, ui config.UIConfig, controller *services.HomeController, images ImageFetcher) *HomeScreen {
	rows := make([]*components.CardRow, 0, len(controller.Registry.Keys()))
	for _, k := range controller.Registry.Keys() {
		rows = append(rows, components.NewCardRow(k))
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   keys.PageUp,
		PageDown: keys.PageDown,
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.IndicatorStyle

	return &HomeScreen{
		ctx:        ctx,
		ui:         ui,
		controller: controller,
		images:     images,
		rows:       rows,
		progress:   components.NewLoadProgress(80),
		viewport:   vp,
		spinner:    s,
		art:        map[string]image.Image{},
		artCache:   map[artKey]string{},
	}
}

type artKey struct {
	path          string
	width, height int
}

// rowHit is the content line span of a rendered card row.
type rowHit struct {
	row    *components.CardRow
	top    int
	height int
}

// Messages
type categoryLoadedMsg struct {
	loaded services.Loaded
}

type artLoadedMsg struct {
	path string
	img  image.Image
	err  error
}

type slideFrameMsg struct{}

func (h *HomeScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{h.spinner.Tick}
	for _, k := range h.controller.Registry.Keys() {
		if res, ok := h.controller.Registry.Result(k); ok && res.Status == data.StatusPending {
			cmds = append(cmds, h.fetchCategory(k))
		}
	}
	return tea.Batch(cmds...)
}

// Commands
func (h *HomeScreen) fetchCategory(k data.CategoryKey) tea.Cmd {
	return func() tea.Msg {
		return categoryLoadedMsg{loaded: h.controller.Registry.Fetch(h.ctx, k)}
	}
}

func (h *HomeScreen) fetchArt(path string) tea.Cmd {
	if h.images == nil || !h.ui.Backdrops || path == "" {
		return nil
	}
	if _, seen := h.art[path]; seen {
		return nil
	}
	h.art[path] = nil
	return func() tea.Msg {
		img, err := h.images.Fetch(h.ctx, path)
		return artLoadedMsg{path: path, img: img, err: err}
	}
}

func (h *HomeScreen) nextFrame() tea.Cmd {
	return tea.Tick(h.ui.FrameInterval, func(time.Time) tea.Msg {
		return slideFrameMsg{}
	})
}

func (h *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height, 0)
		h.progress = components.NewLoadProgress(msg.Width)

	case categoryLoadedMsg:
		l := msg.loaded
		if !h.controller.Complete(l) {
			break
		}
		if l.Err == nil {
			logging.Ctx(h.ctx).Info().Str("category", l.Key.String()).Int("movies", len(l.Movies)).Msg("category loaded")
		}
		if hero, ok := h.controller.Hero(); ok {
			cmds = append(cmds, h.fetchArt(hero.ImagePath()))
		}
		if movie, ok := h.controller.Selected(); ok {
			cmds = append(cmds, h.fetchArt(movie.ImagePath()))
		}

	case artLoadedMsg:
		if msg.err != nil {
			logging.Ctx(h.ctx).Debug().Err(msg.err).Str("path", msg.path).Msg("artwork unavailable")
			break
		}
		h.art[msg.path] = msg.img

	case slideFrameMsg:
		if h.slide.Step() {
			h.controller.ReleaseTransition()
		} else {
			cmds = append(cmds, h.nextFrame())
		}

	case spinner.TickMsg:
		if h.controller.Registry.IsLoading() {
			var cmd tea.Cmd
			h.spinner, cmd = h.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			cmds = append(cmds, h.click(msg.X, msg.Y))
			break
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		cmds = append(cmds, h.handleKey(msg))
	}

	h.refresh()
	return h, tea.Batch(cmds...)
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if h.modalOpen() {
		if key.Matches(msg, keys.Back) {
			h.controller.Close()
		}
		return nil
	}

	rows := h.readyRows()
	switch {
	case key.Matches(msg, keys.NextPage):
		return h.advance()

	case key.Matches(msg, keys.Up):
		if h.focusedRow > 0 {
			h.focusedRow--
		}

	case key.Matches(msg, keys.Down):
		if h.focusedRow < len(rows)-1 {
			h.focusedRow++
		}

	case key.Matches(msg, keys.Left):
		if row := h.focused(); row != nil {
			row.Prev()
		}

	case key.Matches(msg, keys.Right):
		if row := h.focused(); row != nil {
			row.Next()
		}

	case key.Matches(msg, keys.Enter):
		row := h.focused()
		if row == nil {
			return nil
		}
		if movie, ok := row.Selected(); ok {
			h.controller.Open(row.Key, movie)
			return h.fetchArt(movie.ImagePath())
		}

	case key.Matches(msg, keys.PageUp, keys.PageDown):
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return cmd
	}
	return nil
}

// click handles a left click at screen cell (x, y). Any click closes an
// open detail; otherwise the banner advances the page and a card opens its
// detail.
func (h *HomeScreen) click(x, y int) tea.Cmd {
	if h.modalOpen() {
		h.controller.Close()
		return nil
	}

	line := y + h.viewport.YOffset
	if line < h.bannerHeight {
		return h.advance()
	}
	for i, hit := range h.rowHits {
		// the first line of a row is its heading
		if line <= hit.top || line >= hit.top+hit.height {
			continue
		}
		idx, ok := hit.row.CardAt(x, services.PageSize)
		if !ok {
			return nil
		}
		h.focusedRow = i
		hit.row.SelectedIndex = idx
		movie := hit.row.Items[idx]
		h.controller.Open(hit.row.Key, movie)
		return h.fetchArt(movie.ImagePath())
	}
	return nil
}

// advance pages the rows forward and starts the slide-in when accepted.
func (h *HomeScreen) advance() tea.Cmd {
	if !h.controller.Advance() {
		return nil
	}
	logging.Ctx(h.ctx).Debug().Int("page", h.controller.Pager.Page()).Msg("page advanced")
	for _, row := range h.rows {
		row.SelectedIndex = 0
	}
	h.slide.Start(h.ui.TransitionFrames)
	return h.nextFrame()
}

func (h *HomeScreen) modalOpen() bool {
	_, ok := h.controller.Selected()
	return ok
}

// readyRows returns the rows of categories that have loaded successfully.
func (h *HomeScreen) readyRows() []*components.CardRow {
	var rows []*components.CardRow
	for _, row := range h.rows {
		if res, ok := h.controller.Registry.Result(row.Key); ok && res.IsReady() {
			rows = append(rows, row)
		}
	}
	return rows
}

func (h *HomeScreen) focused() *components.CardRow {
	rows := h.readyRows()
	if len(rows) == 0 {
		return nil
	}
	h.focusedRow = min(h.focusedRow, len(rows)-1)
	return rows[h.focusedRow]
}

// ScrollProgress reports how far the home view is scrolled, 0 at the top.
func (h *HomeScreen) ScrollProgress() float64 {
	if h.viewport.AtTop() {
		return 0
	}
	return h.viewport.ScrollPercent()
}

func (h *HomeScreen) renderArt(path string, width, height int) string {
	img := h.art[path]
	if img == nil {
		return ""
	}
	k := artKey{path: path, width: width, height: height}
	if art, ok := h.artCache[k]; ok {
		return art
	}
	art := components.Backdrop(img, width, height)
	h.artCache[k] = art
	return art
}

// refresh re-derives every row from the controller and re-renders the
// scrollable content.
func (h *HomeScreen) refresh() {
	focused := h.focused()
	offset := h.slide.Offset(h.width)
	for _, row := range h.rows {
		row.Width = h.width
		row.Offset = offset
		row.Focused = row == focused
		row.SetItems(h.controller.Visible(row.Key))
	}
	h.progress.Update(h.controller.Registry.Results())

	var sections []string

	if hero, ok := h.controller.Hero(); ok {
		banner := components.Banner{
			Movie: hero,
			Art:   h.renderArt(hero.ImagePath(), h.width, bannerArtHeight),
			Width: h.width,
		}
		view := banner.View()
		h.bannerHeight = lipgloss.Height(view)
		sections = append(sections, view)
	} else {
		h.bannerHeight = 0
	}

	if !h.progress.Done() {
		sections = append(sections, " "+h.spinner.View()+" "+h.progress.View())
	} else if status := h.progress.View(); status != "" {
		sections = append(sections, " "+status)
	}

	// sections are separated by one blank line
	line := 0
	for _, section := range sections {
		line += lipgloss.Height(section) + 1
	}
	h.rowHits = h.rowHits[:0]
	for _, row := range h.readyRows() {
		view := row.View(services.PageSize)
		height := lipgloss.Height(view)
		h.rowHits = append(h.rowHits, rowHit{row: row, top: line, height: height})
		line += height + 1
		sections = append(sections, view)
	}

	if res, ok := h.controller.Registry.Result(h.controller.Driving); ok && res.IsReady() {
		dots := components.PageDots(h.controller.Pager.Page(), services.TotalPages(len(res.Movies)))
		if dots != "" {
			sections = append(sections, " "+dots)
		}
	}

	yoff := h.viewport.YOffset
	h.viewport.SetContent(strings.Join(sections, "\n\n"))
	h.viewport.SetYOffset(yoff)
}

func (h *HomeScreen) View() string {
	if movie, ok := h.controller.Selected(); ok {
		modal := components.Modal{
			Movie:  movie,
			Art:    h.renderArt(movie.ImagePath(), min(max(h.width*2/3, 30), 90)-4, modalArtHeight),
			Width:  h.width,
			Height: h.height,
		}
		return modal.View()
	}
	if h.width == 0 {
		return "Loading..."
	}
	return h.viewport.View()
}
