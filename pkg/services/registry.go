package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/logging"
	"github.com/kerbaras/moviebox/pkg/sources"
)

// FetchFunc retrieves the movies of one category.
type FetchFunc func(ctx context.Context) ([]data.Movie, error)

// Category pairs a key with the function that loads it.
type Category struct {
	Key   data.CategoryKey
	Fetch FetchFunc
}

// Loaded carries the outcome of one fetch back to the registry.
type Loaded struct {
	Key    data.CategoryKey
	Movies []data.Movie
	Err    error
}

// Registry holds one result per category. Each category moves from pending
// to ready or failed exactly once per session.
type Registry struct {
	mu         sync.RWMutex
	categories []Category
	results    map[data.CategoryKey]data.CategoryResult
}

func NewRegistry(categories ...Category) *Registry {
	r := &Registry{
		categories: categories,
		results:    make(map[data.CategoryKey]data.CategoryResult, len(categories)),
	}
	for _, c := range categories {
		r.results[c.Key] = data.Pending(c.Key)
	}
	return r
}

// NewSourceRegistry builds the home view registry over a Source, one entry
// per known category in display order.
func NewSourceRegistry(source sources.Source) *Registry {
	categories := make([]Category, 0, len(data.Categories))
	for _, key := range data.Categories {
		categories = append(categories, Category{
			Key: key,
			Fetch: func(ctx context.Context) ([]data.Movie, error) {
				return source.Movies(ctx, key)
			},
		})
	}
	return NewRegistry(categories...)
}

func (r *Registry) Keys() []data.CategoryKey {
	keys := make([]data.CategoryKey, len(r.categories))
	for i, c := range r.categories {
		keys[i] = c.Key
	}
	return keys
}

func (r *Registry) Result(key data.CategoryKey) (data.CategoryResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.results[key]
	return res, ok
}

// Results returns every category result in registry order.
func (r *Registry) Results() []data.CategoryResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]data.CategoryResult, len(r.categories))
	for i, c := range r.categories {
		out[i] = r.results[c.Key]
	}
	return out
}

// IsLoading reports whether any category is still pending.
func (r *Registry) IsLoading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.results {
		if res.Status == data.StatusPending {
			return true
		}
	}
	return false
}

// Complete records the outcome of a category fetch. It returns false when
// the key is unknown or already settled; the earlier outcome is kept.
func (r *Registry) Complete(key data.CategoryKey, movies []data.Movie, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.results[key]
	if !ok || res.Status != data.StatusPending {
		return false
	}
	if err != nil {
		r.results[key] = data.Failed(key, err)
		return true
	}
	if movies == nil {
		movies = []data.Movie{}
	}
	r.results[key] = data.Ready(key, movies)
	return true
}

// Fetch runs the fetch function of one category without recording it.
func (r *Registry) Fetch(ctx context.Context, key data.CategoryKey) Loaded {
	for _, c := range r.categories {
		if c.Key != key {
			continue
		}
		movies, err := c.Fetch(ctx)
		log := logging.Ctx(ctx)
		if err != nil {
			log.Warn().Err(err).Str("category", key.String()).Msg("category fetch failed")
		} else {
			log.Debug().Str("category", key.String()).Int("movies", len(movies)).Msg("category fetched")
		}
		return Loaded{Key: key, Movies: movies, Err: err}
	}
	return Loaded{Key: key, Err: sources.ErrUnknownCategory}
}

// LoadAll fetches every category concurrently and completes each one as it
// arrives. A failing category never cancels its siblings.
func (r *Registry) LoadAll(ctx context.Context) {
	var g errgroup.Group
	for _, c := range r.categories {
		g.Go(func() error {
			l := r.Fetch(ctx, c.Key)
			r.Complete(l.Key, l.Movies, l.Err)
			return nil
		})
	}
	_ = g.Wait()
}
