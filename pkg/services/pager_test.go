package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kerbaras/moviebox/pkg/data"
)

func movies(n int) []data.Movie {
	out := make([]data.Movie, n)
	for i := range out {
		out[i] = data.Movie{ID: i + 1, Title: "Movie"}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{5, 1},
		{6, 2},
		{12, 3},
		{20, 4},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPageSlice(t *testing.T) {
	list := movies(12)

	tests := []struct {
		name    string
		page    int
		wantIDs []int
	}{
		{"first page", 0, []int{1, 2, 3, 4, 5}},
		{"middle page", 1, []int{6, 7, 8, 9, 10}},
		{"short last page", 2, []int{11, 12}},
		{"past the end", 3, nil},
		{"negative", -1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageSlice(list, tt.page)
			var ids []int
			for _, m := range got {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.LessOrEqual(t, len(got), PageSize)
		})
	}
}

func TestPager_AdvanceIgnoredUntilReady(t *testing.T) {
	p := NewPager()

	assert.False(t, p.Advance(data.Pending(data.NowPlaying)))
	assert.False(t, p.Advance(data.Failed(data.NowPlaying, assert.AnError)))
	assert.Equal(t, PaginationState{}, p.State())
}

func TestPager_AdvanceEmptyCategory(t *testing.T) {
	p := NewPager()

	assert.False(t, p.Advance(data.Ready(data.NowPlaying, nil)))
	assert.Equal(t, 0, p.Page())
	assert.False(t, p.Transitioning())
}

func TestPager_AdvanceLocksUntilReleased(t *testing.T) {
	p := NewPager()
	driving := data.Ready(data.NowPlaying, movies(20))

	assert.True(t, p.Advance(driving))
	assert.Equal(t, 1, p.Page())
	assert.True(t, p.Transitioning())

	// a second advance while the transition runs is dropped
	assert.False(t, p.Advance(driving))
	assert.Equal(t, 1, p.Page())

	p.ReleaseTransition()
	p.ReleaseTransition()
	assert.False(t, p.Transitioning())

	assert.True(t, p.Advance(driving))
	assert.Equal(t, 2, p.Page())
}

func TestPager_Wraparound(t *testing.T) {
	tests := []struct {
		name  string
		items int
		start int
		want  int
	}{
		{"three pages from last", 12, 2, 1},
		{"three pages from first", 12, 0, 1},
		{"single page", 3, 0, 0},
		{"two pages from last", 10, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pager{state: PaginationState{CurrentPage: tt.start}}
			driving := data.Ready(data.NowPlaying, movies(tt.items))

			if !p.Advance(driving) {
				t.Fatal("Advance() = false, want true")
			}
			if p.Page() != tt.want {
				t.Errorf("page = %d, want %d", p.Page(), tt.want)
			}
		})
	}
}

func TestPager_PageStaysInRange(t *testing.T) {
	for _, n := range []int{1, 4, 5, 6, 11, 20} {
		p := NewPager()
		driving := data.Ready(data.NowPlaying, movies(n))
		total := TotalPages(n)
		for i := 0; i < 3*total+1; i++ {
			p.Advance(driving)
			p.ReleaseTransition()
			if p.Page() < 0 || p.Page() >= total {
				t.Fatalf("n=%d: page %d out of range [0,%d)", n, p.Page(), total)
			}
		}
	}
}

func TestPager_VisibleSharedAcrossRows(t *testing.T) {
	p := &Pager{state: PaginationState{CurrentPage: 2}}

	assert.Len(t, p.Visible(movies(20)), 5)
	assert.Len(t, p.Visible(movies(12)), 2)
	assert.Empty(t, p.Visible(movies(7)))
}
