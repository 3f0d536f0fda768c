package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kerbaras/moviebox/pkg/data"
)

func TestResolve(t *testing.T) {
	results := []data.CategoryResult{
		data.Ready(data.NowPlaying, []data.Movie{{ID: 9, Title: "Now Nine"}}),
		data.Pending(data.TopRated),
		data.Failed(data.Upcoming, assert.AnError),
		data.Ready(data.Popular, []data.Movie{{ID: 7, Title: "Seven"}, {ID: 9, Title: "Nine"}}),
	}

	tests := []struct {
		name      string
		target    *Target
		wantTitle string
		wantOK    bool
	}{
		{"no target", nil, "", false},
		{"match", &Target{Category: data.Popular, ID: "9"}, "Nine", true},
		{"same id other category", &Target{Category: data.NowPlaying, ID: "9"}, "Now Nine", true},
		{"missing id", &Target{Category: data.Popular, ID: "42"}, "", false},
		{"unknown category", &Target{Category: "unknown-cat", ID: "7"}, "", false},
		{"pending category", &Target{Category: data.TopRated, ID: "7"}, "", false},
		{"failed category", &Target{Category: data.Upcoming, ID: "7"}, "", false},
		{"malformed id", &Target{Category: data.Popular, ID: "abc"}, "", false},
		{"padded id", &Target{Category: data.Popular, ID: "09"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie, ok := Resolve(tt.target, results)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTitle, movie.Title)
		})
	}
}

func TestResolve_NeverCrossesCategories(t *testing.T) {
	results := []data.CategoryResult{
		data.Pending(data.TopRated),
		data.Ready(data.Popular, []data.Movie{{ID: 7}}),
	}

	if _, ok := Resolve(&Target{Category: data.TopRated, ID: "7"}, results); ok {
		t.Error("Resolve() matched an id from another category")
	}
}
