package sources

import (
	"context"

	"github.com/kerbaras/moviebox/pkg/data"
)

type Source interface {
	Movies(ctx context.Context, key data.CategoryKey) ([]data.Movie, error)
	Search(ctx context.Context, query string) ([]data.Movie, error)
	Movie(ctx context.Context, id int) (data.Movie, error)
}
