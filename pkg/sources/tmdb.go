package sources

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/utils"
)

// ErrUnknownCategory is returned for category keys with no TMDB list.
var ErrUnknownCategory = errors.New("unknown category")

// Movie mirrors the subset of a TMDB movie record the browser consumes.
type Movie struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	BackdropPath  string  `json:"backdrop_path"`
	PosterPath    string  `json:"poster_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
}

func (m *Movie) ToMovie() data.Movie {
	return data.Movie{
		ID:            m.ID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Overview:      m.Overview,
		BackdropPath:  m.BackdropPath,
		PosterPath:    m.PosterPath,
		ReleaseDate:   m.ReleaseDate,
		VoteAverage:   m.VoteAverage,
	}
}

type MovieList struct {
	Page    int     `json:"page"`
	Results []Movie `json:"results"`
}

var listPaths = map[data.CategoryKey]string{
	data.NowPlaying: "/movie/now_playing",
	data.TopRated:   "/movie/top_rated",
	data.Upcoming:   "/movie/upcoming",
	data.Popular:    "/movie/popular",
}

// ListPath returns the TMDB endpoint backing a category.
func ListPath(key data.CategoryKey) (string, bool) {
	p, ok := listPaths[key]
	return p, ok
}

type TMDB struct {
	api *utils.API
}

var _ Source = (*TMDB)(nil)

// NewTMDB creates a client for the TMDB v3 API. The credential and language
// are sent as query parameters on every request.
func NewTMDB(baseURL, apiKey, language string, timeout time.Duration) *TMDB {
	defaults := url.Values{"api_key": {apiKey}}
	if language != "" {
		defaults.Set("language", language)
	}
	return &TMDB{api: utils.NewAPI(baseURL, timeout, defaults)}
}

// Movies fetches the first result page of a category list.
func (t *TMDB) Movies(ctx context.Context, key data.CategoryKey) ([]data.Movie, error) {
	path, ok := ListPath(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, key)
	}
	var list MovieList
	if err := t.api.Get(ctx, path, url.Values{"page": {"1"}}, &list); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	return toMovies(list.Results), nil
}

func (t *TMDB) Search(ctx context.Context, query string) ([]data.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	var list MovieList
	params := url.Values{"query": {query}, "page": {"1"}, "include_adult": {"false"}}
	if err := t.api.Get(ctx, "/search/movie", params, &list); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return toMovies(list.Results), nil
}

func (t *TMDB) Movie(ctx context.Context, id int) (data.Movie, error) {
	var movie Movie
	if err := t.api.Get(ctx, fmt.Sprintf("/movie/%d", id), nil, &movie); err != nil {
		return data.Movie{}, fmt.Errorf("fetch movie %d: %w", id, err)
	}
	return movie.ToMovie(), nil
}

func toMovies(in []Movie) []data.Movie {
	out := make([]data.Movie, len(in))
	for i := range in {
		out[i] = in[i].ToMovie()
	}
	return out
}
