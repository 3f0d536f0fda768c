package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/moviebox/pkg/data"
)

func TestParseShowArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantCat data.CategoryKey
		wantID  string
		wantErr bool
	}{
		{"location", []string{"/movies/popular/550"}, data.Popular, "550", false},
		{"category and id", []string{"top-rated", "278"}, data.TopRated, "278", false},
		{"unknown category kept for the resolver", []string{"unknown-cat", "7"}, "unknown-cat", "7", false},
		{"bad location", []string{"/tv/1"}, "", "", true},
		{"empty id", []string{"popular", " "}, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := parseShowArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCat, target.Category)
			assert.Equal(t, tt.wantID, target.ID)
		})
	}
}

func TestCategoriesTable(t *testing.T) {
	view := categoriesTable()
	for _, key := range data.Categories {
		assert.Contains(t, view, key.String())
		assert.Contains(t, view, key.Label())
	}
	assert.Contains(t, view, "/movie/now_playing")
}

func TestMoviesTable(t *testing.T) {
	movies := []data.Movie{
		{ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", VoteAverage: 8.4},
		{ID: 13, Title: "", OriginalTitle: "Forrest Gump"},
	}

	view := moviesTable(movies, 5).String()
	for _, want := range []string{"Title", "550", "Fight Club", "1999", "8.4", "Forrest Gump", "6", "7"} {
		assert.Contains(t, view, want)
	}
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	got := truncateString(strings.Repeat("é", 12), 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}
