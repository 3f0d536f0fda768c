package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/moviebox/pkg/app/screens"
	"github.com/kerbaras/moviebox/pkg/config"
	"github.com/kerbaras/moviebox/pkg/logging"
	"github.com/kerbaras/moviebox/pkg/services"
	"github.com/kerbaras/moviebox/pkg/sources"
)

type App struct {
	cfg      *config.Config
	source   sources.Source
	images   screens.ImageFetcher
	location string
}

// New creates the interactive browser. images may be nil to disable
// backdrop art.
func New(cfg *config.Config, source sources.Source, images screens.ImageFetcher) *App {
	return &App{cfg: cfg, source: source, images: images, location: services.HomePath}
}

// Open sets the location shown at startup, e.g. "/movies/popular/9". The
// detail appears as soon as its category has loaded.
func (a *App) Open(location string) *App {
	if location != "" {
		a.location = location
	}
	return a
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(logging.WithSession(ctx))
	// in-flight fetches stop when the program exits
	defer cancel()

	controller := services.NewMovieController(a.source, services.NewMemoryRouter(a.location))
	model := screens.NewRootScreen(ctx, a.cfg, controller, a.source, a.images)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	logging.Ctx(ctx).Info().Str("location", a.location).Msg("starting browser")
	p := tea.NewProgram(model, opts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
