package data

import "strings"

// CategoryKey names one independently fetched movie list.
type CategoryKey string

const (
	NowPlaying CategoryKey = "now-playing"
	TopRated   CategoryKey = "top-rated"
	Upcoming   CategoryKey = "upcoming"
	Popular    CategoryKey = "popular"
)

// Categories is the display order of the home view.
var Categories = []CategoryKey{NowPlaying, TopRated, Upcoming, Popular}

func (k CategoryKey) String() string { return string(k) }

// Label returns the row heading for the category.
func (k CategoryKey) Label() string {
	switch k {
	case NowPlaying:
		return "Now Playing"
	case TopRated:
		return "Top Rated"
	case Upcoming:
		return "Upcoming"
	case Popular:
		return "Popular"
	default:
		return string(k)
	}
}

// Valid reports whether k is one of the known categories.
func (k CategoryKey) Valid() bool {
	for _, c := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

type Movie struct {
	ID            int
	Title         string
	OriginalTitle string
	Overview      string
	BackdropPath  string
	PosterPath    string
	ReleaseDate   string
	VoteAverage   float64
}

// DisplayTitle falls back to the original title when the localized one is empty.
func (m Movie) DisplayTitle() string {
	if strings.TrimSpace(m.Title) != "" {
		return m.Title
	}
	return m.OriginalTitle
}

// ImagePath prefers the backdrop and falls back to the poster.
func (m Movie) ImagePath() string {
	if m.BackdropPath != "" {
		return m.BackdropPath
	}
	return m.PosterPath
}

// Year returns the release year, or "" when the date is missing or malformed.
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	year := m.ReleaseDate[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return year
}

type Status string

const (
	StatusPending Status = "pending"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// CategoryResult is the outcome of one category fetch.
type CategoryResult struct {
	Key    CategoryKey
	Status Status
	Movies []Movie
	Err    error
}

func Pending(key CategoryKey) CategoryResult {
	return CategoryResult{Key: key, Status: StatusPending}
}

func Ready(key CategoryKey, movies []Movie) CategoryResult {
	return CategoryResult{Key: key, Status: StatusReady, Movies: movies}
}

func Failed(key CategoryKey, err error) CategoryResult {
	return CategoryResult{Key: key, Status: StatusFailed, Err: err}
}

func (r CategoryResult) IsReady() bool { return r.Status == StatusReady }

// ImageURL joins the image CDN base, a size segment and a path fragment.
func ImageURL(base, size, path string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = "original"
	}
	return strings.TrimRight(base, "/") + "/" + size + "/" + strings.TrimLeft(path, "/")
}
