package services

import "github.com/kerbaras/moviebox/pkg/data"

// PageSize is the number of cards shown per row.
const PageSize = 5

type PaginationState struct {
	CurrentPage   int
	Transitioning bool
}

// Pager is the page cursor shared by every category row. It is driven by a
// single category; the other rows show the same page index and may come up
// short or empty.
type Pager struct {
	state PaginationState
}

func NewPager() *Pager {
	return &Pager{}
}

func (p *Pager) State() PaginationState { return p.state }

func (p *Pager) Page() int { return p.state.CurrentPage }

func (p *Pager) Transitioning() bool { return p.state.Transitioning }

// Advance moves to the next page of the driving category, wrapping to the
// first page past the end. It returns false and leaves the state untouched
// while the category is not ready, while a transition is in flight, or
// when there is nothing to page through.
func (p *Pager) Advance(driving data.CategoryResult) bool {
	if !driving.IsReady() || p.state.Transitioning {
		return false
	}
	total := TotalPages(len(driving.Movies))
	if total == 0 {
		return false
	}

	p.state.Transitioning = true
	page := p.state.CurrentPage
	if page >= total-1 {
		page = 0
	}
	p.state.CurrentPage = (page + 1) % total
	return true
}

// ReleaseTransition marks the running transition as finished.
func (p *Pager) ReleaseTransition() {
	p.state.Transitioning = false
}

// Visible returns the current page of movies.
func (p *Pager) Visible(movies []data.Movie) []data.Movie {
	return PageSlice(movies, p.state.CurrentPage)
}

// PageSlice returns movies[PageSize*page : PageSize*(page+1)] clipped to the
// list bounds.
func PageSlice(movies []data.Movie, page int) []data.Movie {
	start := page * PageSize
	if page < 0 || start >= len(movies) {
		return nil
	}
	end := min(start+PageSize, len(movies))
	return movies[start:end]
}

func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}
