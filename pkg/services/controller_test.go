package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/moviebox/pkg/data"
)

func newTestController() (*HomeController, *MemoryRouter) {
	router := NewMemoryRouter(HomePath)
	registry := NewRegistry(
		Category{Key: data.NowPlaying, Fetch: staticFetch(nil, nil)},
		Category{Key: data.TopRated, Fetch: staticFetch(nil, nil)},
		Category{Key: data.Upcoming, Fetch: staticFetch(nil, nil)},
		Category{Key: data.Popular, Fetch: staticFetch(nil, nil)},
	)
	return NewHomeController(registry, router), router
}

func TestHomeController_NothingVisibleWhileLoading(t *testing.T) {
	c, _ := newTestController()

	for _, key := range data.Categories {
		assert.Empty(t, c.Visible(key), "category %s", key)
	}
	_, ok := c.Hero()
	assert.False(t, ok)
	assert.False(t, c.Advance(), "advance must wait for the driving category")
}

func TestHomeController_DrivingCategoryPacesAllRows(t *testing.T) {
	c, _ := newTestController()
	c.Complete(Loaded{Key: data.NowPlaying, Movies: movies(20)})
	c.Complete(Loaded{Key: data.Popular, Movies: movies(7)})
	c.Complete(Loaded{Key: data.TopRated, Err: assert.AnError})

	hero, ok := c.Hero()
	require.True(t, ok)
	assert.Equal(t, 1, hero.ID)

	assert.Len(t, c.Visible(data.NowPlaying), 5)
	assert.Len(t, c.Visible(data.Popular), 5)
	assert.Empty(t, c.Visible(data.TopRated))
	assert.Empty(t, c.Visible(data.Upcoming))

	require.True(t, c.Advance())
	c.ReleaseTransition()
	assert.Len(t, c.Visible(data.Popular), 2)

	require.True(t, c.Advance())
	c.ReleaseTransition()
	assert.Equal(t, 2, c.Pager.Page())
	assert.Len(t, c.Visible(data.NowPlaying), 5)
	assert.Empty(t, c.Visible(data.Popular), "shorter rows run out before the driving row")
}

func TestHomeController_AdvanceWaitsForRelease(t *testing.T) {
	c, _ := newTestController()
	c.Complete(Loaded{Key: data.NowPlaying, Movies: movies(20)})

	assert.True(t, c.Advance())
	assert.False(t, c.Advance())
	assert.Equal(t, 1, c.Pager.Page())

	c.ReleaseTransition()
	assert.True(t, c.Advance())
	assert.Equal(t, 2, c.Pager.Page())
}

func TestHomeController_SelectedFollowsLocation(t *testing.T) {
	c, router := newTestController()
	c.Complete(Loaded{Key: data.Popular, Movies: []data.Movie{{ID: 7, Title: "Seven"}, {ID: 9, Title: "Nine"}}})

	_, ok := c.Selected()
	assert.False(t, ok)

	c.Open(data.Popular, data.Movie{ID: 9})
	movie, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Nine", movie.Title)

	router.Navigate("/movies/popular/42")
	_, ok = c.Selected()
	assert.False(t, ok)

	c.Close()
	assert.Equal(t, HomePath, router.Location())
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestHomeController_DeepLinkResolvesOnceLoaded(t *testing.T) {
	c, router := newTestController()
	router.Navigate("/movies/top-rated/278")

	_, ok := c.Selected()
	assert.False(t, ok, "pending category must not resolve")

	c.Complete(Loaded{Key: data.TopRated, Movies: []data.Movie{{ID: 278, Title: "Redemption"}}})
	movie, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "Redemption", movie.Title)
}

func TestNewMovieController(t *testing.T) {
	src := &fakeSource{lists: map[data.CategoryKey][]data.Movie{
		data.NowPlaying: movies(6),
	}}
	c := NewMovieController(src, NewMemoryRouter(""))

	assert.Equal(t, data.NowPlaying, c.Driving)
	c.Registry.LoadAll(context.Background())

	assert.False(t, c.Registry.IsLoading())
	assert.True(t, c.Advance())
	assert.Len(t, c.Visible(data.NowPlaying), 1)
}
