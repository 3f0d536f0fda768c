package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/sources"
)

func staticFetch(list []data.Movie, err error) FetchFunc {
	return func(ctx context.Context) ([]data.Movie, error) {
		return list, err
	}
}

func TestRegistry_StartsPending(t *testing.T) {
	r := NewRegistry(
		Category{Key: data.NowPlaying, Fetch: staticFetch(nil, nil)},
		Category{Key: data.Popular, Fetch: staticFetch(nil, nil)},
	)

	assert.Equal(t, []data.CategoryKey{data.NowPlaying, data.Popular}, r.Keys())
	assert.True(t, r.IsLoading())
	for _, res := range r.Results() {
		assert.Equal(t, data.StatusPending, res.Status)
	}

	_, ok := r.Result(data.Upcoming)
	assert.False(t, ok)
}

func TestRegistry_CompleteOnce(t *testing.T) {
	r := NewRegistry(Category{Key: data.Popular, Fetch: staticFetch(nil, nil)})

	require.True(t, r.Complete(data.Popular, movies(3), nil))
	assert.False(t, r.Complete(data.Popular, nil, errors.New("late failure")))
	assert.False(t, r.Complete(data.Upcoming, movies(1), nil))

	res, _ := r.Result(data.Popular)
	assert.Equal(t, data.StatusReady, res.Status)
	assert.Len(t, res.Movies, 3)
	assert.NoError(t, res.Err)
	assert.False(t, r.IsLoading())
}

func TestRegistry_CompleteFailure(t *testing.T) {
	r := NewRegistry(Category{Key: data.TopRated, Fetch: staticFetch(nil, nil)})

	r.Complete(data.TopRated, nil, assert.AnError)
	r.Complete(data.TopRated, movies(5), nil)

	res, _ := r.Result(data.TopRated)
	assert.Equal(t, data.StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, assert.AnError)
	assert.Empty(t, res.Movies)
}

func TestRegistry_ReadyWithNoMovies(t *testing.T) {
	r := NewRegistry(Category{Key: data.Upcoming, Fetch: staticFetch(nil, nil)})
	r.Complete(data.Upcoming, nil, nil)

	res, _ := r.Result(data.Upcoming)
	assert.True(t, res.IsReady())
	assert.NotNil(t, res.Movies)
	assert.Empty(t, res.Movies)
}

func TestRegistry_Fetch(t *testing.T) {
	r := NewRegistry(Category{Key: data.Popular, Fetch: staticFetch(movies(2), nil)})

	l := r.Fetch(context.Background(), data.Popular)
	assert.Equal(t, data.Popular, l.Key)
	assert.Len(t, l.Movies, 2)
	assert.NoError(t, l.Err)

	// Fetch alone does not settle the category
	assert.True(t, r.IsLoading())

	l = r.Fetch(context.Background(), data.Upcoming)
	assert.ErrorIs(t, l.Err, sources.ErrUnknownCategory)
}

func TestRegistry_LoadAllIsolatesFailures(t *testing.T) {
	var calls atomic.Int32
	counted := func(list []data.Movie, err error) FetchFunc {
		return func(ctx context.Context) ([]data.Movie, error) {
			calls.Add(1)
			return list, err
		}
	}
	r := NewRegistry(
		Category{Key: data.NowPlaying, Fetch: counted(movies(20), nil)},
		Category{Key: data.TopRated, Fetch: counted(nil, errors.New("boom"))},
		Category{Key: data.Upcoming, Fetch: counted(movies(7), nil)},
		Category{Key: data.Popular, Fetch: counted(movies(2), nil)},
	)

	r.LoadAll(context.Background())

	assert.Equal(t, int32(4), calls.Load())
	assert.False(t, r.IsLoading())

	statuses := map[data.CategoryKey]data.Status{}
	for _, res := range r.Results() {
		statuses[res.Key] = res.Status
	}
	assert.Equal(t, map[data.CategoryKey]data.Status{
		data.NowPlaying: data.StatusReady,
		data.TopRated:   data.StatusFailed,
		data.Upcoming:   data.StatusReady,
		data.Popular:    data.StatusReady,
	}, statuses)
}

type fakeSource struct {
	lists map[data.CategoryKey][]data.Movie
	fail  map[data.CategoryKey]error
}

func (f *fakeSource) Movies(ctx context.Context, key data.CategoryKey) ([]data.Movie, error) {
	if err := f.fail[key]; err != nil {
		return nil, err
	}
	return f.lists[key], nil
}

func (f *fakeSource) Search(ctx context.Context, query string) ([]data.Movie, error) {
	return nil, nil
}

func (f *fakeSource) Movie(ctx context.Context, id int) (data.Movie, error) {
	return data.Movie{ID: id}, nil
}

func TestNewSourceRegistry(t *testing.T) {
	src := &fakeSource{lists: map[data.CategoryKey][]data.Movie{
		data.NowPlaying: {{ID: 1, Title: "now-playing"}},
		data.Popular:    {{ID: 2, Title: "popular"}},
	}}
	r := NewSourceRegistry(src)

	assert.Equal(t, data.Categories, r.Keys())

	l := r.Fetch(context.Background(), data.Popular)
	require.Len(t, l.Movies, 1)
	assert.Equal(t, "popular", l.Movies[0].Title)
}
