package services

import (
	"strconv"
	"strings"
	"sync"

	"github.com/kerbaras/moviebox/pkg/data"
)

// HomePath is the location of the home view with no detail open.
const HomePath = "/"

// Router owns the current location.
type Router interface {
	Location() string
	Navigate(path string)
}

// MemoryRouter keeps the location and its history in process.
type MemoryRouter struct {
	mu      sync.Mutex
	current string
	history []string
}

func NewMemoryRouter(initial string) *MemoryRouter {
	if initial == "" {
		initial = HomePath
	}
	return &MemoryRouter{current: initial}
}

func (r *MemoryRouter) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

func (r *MemoryRouter) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if path == r.current {
		return
	}
	r.history = append(r.history, r.current)
	r.current = path
}

// Back returns to the previous location. It reports false when there is no
// history left.
func (r *MemoryRouter) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return true
}

type Navigator struct {
	router Router
}

func NewNavigator(router Router) *Navigator {
	return &Navigator{router: router}
}

func (n *Navigator) Location() string { return n.router.Location() }

// OpenDetail shows the movie with the given id from the given category.
func (n *Navigator) OpenDetail(key data.CategoryKey, id int) {
	n.router.Navigate(DetailPath(key, id))
}

// CloseDetail returns home, stepping back through the router history when
// the detail was opened from there.
func (n *Navigator) CloseDetail() {
	if r, ok := n.router.(interface{ Back() bool }); ok && r.Back() && n.router.Location() == HomePath {
		return
	}
	n.router.Navigate(HomePath)
}

// Target returns the detail target of the current location, if any.
func (n *Navigator) Target() *Target {
	return ParseTarget(n.router.Location())
}

func DetailPath(key data.CategoryKey, id int) string {
	return "/movies/" + key.String() + "/" + strconv.Itoa(id)
}

// ParseTarget matches /movies/:category/:id. Query strings and a trailing
// slash are ignored. Any other shape yields nil.
func ParseTarget(location string) *Target {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	location = strings.TrimSuffix(location, "/")
	parts := strings.Split(location, "/")
	if len(parts) != 4 || parts[0] != "" || parts[1] != "movies" {
		return nil
	}
	if parts[2] == "" || parts[3] == "" {
		return nil
	}
	return &Target{Category: data.CategoryKey(parts[2]), ID: parts[3]}
}
