package sources

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/kerbaras/moviebox/pkg/data"
	"github.com/kerbaras/moviebox/pkg/logging"
)

// BreakerSettings configures the circuit breaker around a Source.
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// Breaker stops calling the catalog API after repeated upstream failures
// and lets a probe request through once Timeout has elapsed. It never
// retries.
type Breaker struct {
	next Source
	cb   *gobreaker.CircuitBreaker[any]
}

var _ Source = (*Breaker)(nil)

func NewBreaker(next Source, s BreakerSettings) *Breaker {
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
		IsSuccessful: func(err error) bool {
			// Caller cancellations and unknown keys say nothing about upstream health.
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, ErrUnknownCategory)
		},
	})
	return &Breaker{next: next, cb: cb}
}

func (b *Breaker) Movies(ctx context.Context, key data.CategoryKey) ([]data.Movie, error) {
	return cast[[]data.Movie](b.cb.Execute(func() (any, error) {
		return b.next.Movies(ctx, key)
	}))
}

func (b *Breaker) Search(ctx context.Context, query string) ([]data.Movie, error) {
	return cast[[]data.Movie](b.cb.Execute(func() (any, error) {
		return b.next.Search(ctx, query)
	}))
}

func (b *Breaker) Movie(ctx context.Context, id int) (data.Movie, error) {
	return cast[data.Movie](b.cb.Execute(func() (any, error) {
		return b.next.Movie(ctx, id)
	}))
}

func cast[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}
