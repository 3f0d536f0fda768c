package services

import (
	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/sources"
)

// HomeController ties the registry, the page cursor and the navigator
// together for the home view. It is not safe for concurrent use; the UI
// drives it from a single loop.
type HomeController struct {
	Registry  *Registry
	Pager     *Pager
	Navigator *Navigator
	Driving   data.CategoryKey
}

func NewHomeController(registry *Registry, router Router) *HomeController {
	return &HomeController{
		Registry:  registry,
		Pager:     NewPager(),
		Navigator: NewNavigator(router),
		Driving:   data.NowPlaying,
	}
}

// NewMovieController wires a controller for the four TMDB categories.
func NewMovieController(source sources.Source, router Router) *HomeController {
	return NewHomeController(NewSourceRegistry(source), router)
}

func (c *HomeController) driving() data.CategoryResult {
	res, ok := c.Registry.Result(c.Driving)
	if !ok {
		return data.Pending(c.Driving)
	}
	return res
}

// Advance pages every row forward, paced by the driving category.
func (c *HomeController) Advance() bool {
	return c.Pager.Advance(c.driving())
}

func (c *HomeController) ReleaseTransition() {
	c.Pager.ReleaseTransition()
}

// Visible returns the current page of a category, or nil unless it is ready.
func (c *HomeController) Visible(key data.CategoryKey) []data.Movie {
	res, ok := c.Registry.Result(key)
	if !ok || !res.IsReady() {
		return nil
	}
	return c.Pager.Visible(res.Movies)
}

// Hero is the first movie of the driving category.
func (c *HomeController) Hero() (data.Movie, bool) {
	res := c.driving()
	if !res.IsReady() || len(res.Movies) == 0 {
		return data.Movie{}, false
	}
	return res.Movies[0], true
}

// Selected resolves the current location against the loaded categories.
func (c *HomeController) Selected() (data.Movie, bool) {
	return Resolve(c.Navigator.Target(), c.Registry.Results())
}

func (c *HomeController) Complete(l Loaded) bool {
	return c.Registry.Complete(l.Key, l.Movies, l.Err)
}

func (c *HomeController) Open(key data.CategoryKey, movie data.Movie) {
	c.Navigator.OpenDetail(key, movie.ID)
}

func (c *HomeController) Close() {
	c.Navigator.CloseDetail()
}
