package services

import (
	"strconv"

	"github.com/kerbaras/moviebox/pkg/data"
)

// Target identifies the movie named by a detail location. ID stays a string
// because it comes straight from the path.
type Target struct {
	Category data.CategoryKey
	ID       string
}

// Resolve finds the movie a target points at. Ids are only unique inside a
// category, so only the named category is searched, and only once it is
// ready. A miss of any kind yields false.
func Resolve(target *Target, results []data.CategoryResult) (data.Movie, bool) {
	if target == nil {
		return data.Movie{}, false
	}
	for _, res := range results {
		if res.Key != target.Category {
			continue
		}
		if !res.IsReady() {
			return data.Movie{}, false
		}
		for _, m := range res.Movies {
			if strconv.Itoa(m.ID) == target.ID {
				return m, true
			}
		}
		return data.Movie{}, false
	}
	return data.Movie{}, false
}
