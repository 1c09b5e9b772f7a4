// Package resilience wraps store access in the uniform fault-tolerance
// policy shared by every entity family: a circuit breaker with a rolling
// failure-rate window, a bulkhead bounding in-flight operations, and a
// bounded retry with backoff for idempotent read-all operations.
//
// Each family owns one State. The breaker and bulkhead inside it are shared
// by all of that family's operations and updated atomically, so a failing
// family sheds load without affecting its neighbors.
package resilience

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrCapacityExceeded is returned when a call arrives while the family's
	// concurrency budget is fully in use. The call fails fast; it never queues.
	ErrCapacityExceeded = errors.New("concurrency limit exceeded")

	// ErrCircuitOpen is returned when the family's circuit breaker is open
	// and the call was short-circuited without reaching the store.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// Config tunes the policy for one entity family.
type Config struct {
	// FailureRateThreshold is the failure ratio at which the breaker opens.
	FailureRateThreshold float64

	// MinRequests is the number of samples required before the ratio applies.
	MinRequests uint32

	// Window is the period after which closed-state counts reset.
	Window time.Duration

	// OpenTimeout is the cool-down before the breaker probes half-open.
	OpenTimeout time.Duration

	// MaxRetries bounds retry attempts for read-all operations.
	MaxRetries uint

	// RetryInterval is the initial backoff between retries.
	RetryInterval time.Duration

	// MaxConcurrent is the bulkhead width: in-flight operations per family.
	MaxConcurrent int64
}

// DefaultConfig returns the policy applied when a family has no overrides.
func DefaultConfig() Config {
	return Config{
		FailureRateThreshold: 0.5,
		MinRequests:          10,
		Window:               10 * time.Second,
		OpenTimeout:          30 * time.Second,
		MaxRetries:           3,
		RetryInterval:        100 * time.Millisecond,
		MaxConcurrent:        25,
	}
}

// State holds the breaker and bulkhead for one entity family.
type State struct {
	name     string
	cfg      Config
	breaker  *gobreaker.CircuitBreaker[any]
	bulkhead *semaphore.Weighted
}

// NewState builds the per-family policy state.
func NewState(name string, cfg Config, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	settings := gobreaker.Settings{
		Name:     name,
		Interval: cfg.Window,
		Timeout:  cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			rate := float64(counts.TotalFailures) / float64(counts.Requests)
			return rate >= cfg.FailureRateThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("family", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
	return &State{
		name:     name,
		cfg:      cfg,
		breaker:  gobreaker.NewCircuitBreaker[any](settings),
		bulkhead: semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// Name returns the entity family this state guards.
func (s *State) Name() string { return s.name }

// Execute runs op under the family's bulkhead and circuit breaker, with no
// retry. This is the policy for point lookups and all mutations.
func Execute[T any](ctx context.Context, s *State, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if !s.bulkhead.TryAcquire(1) {
		return zero, ErrCapacityExceeded
	}
	defer s.bulkhead.Release(1)

	out, err := s.breaker.Execute(func() (any, error) {
		return op(ctx)
	})
	if err != nil {
		return zero, mapBreakerError(err)
	}
	v, _ := out.(T)
	return v, nil
}

// Do is Execute for operations that return no value.
func Do(ctx context.Context, s *State, op func(ctx context.Context) error) error {
	_, err := Execute(ctx, s, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// ExecuteWithRetry runs op like Execute, retrying transient failures a
// bounded number of times with exponential backoff. Intended for idempotent
// read-all operations only; mutations must use Execute so a store that lacks
// idempotency keys never sees duplicated side effects. An open breaker stops
// the retry loop immediately.
func ExecuteWithRetry[T any](ctx context.Context, s *State, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if !s.bulkhead.TryAcquire(1) {
		return zero, ErrCapacityExceeded
	}
	defer s.bulkhead.Release(1)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.cfg.RetryInterval

	out, err := backoff.Retry(ctx, func() (any, error) {
		v, err := s.breaker.Execute(func() (any, error) {
			return op(ctx)
		})
		if err != nil {
			if mapped := mapBreakerError(err); errors.Is(mapped, ErrCircuitOpen) {
				return nil, backoff.Permanent(mapped)
			}
			return nil, err
		}
		return v, nil
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(s.cfg.MaxRetries+1))
	if err != nil {
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}

func mapBreakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitOpen
	}
	return err
}
