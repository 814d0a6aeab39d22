package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/logger"
)

// TaskFunc is a unit of work dispatched through the limiter
type TaskFunc func(ctx context.Context) (interface{}, error)

// taskResult wraps the result and error of a task
type taskResult struct {
	value interface{}
	err   error
}

// Limiter defines the interface for the token-paced request scheduler.
// Tasks are dispatched in enqueue order; across all tasks for one provider,
// no more than the configured requests per second are dispatched and
// consecutive dispatches are separated by at least the configured minimum
// interval. Tasks are throttled, never dropped; a failing task is rejected
// to its caller without blocking the queue.
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Do submits a task for rate-limited execution and blocks until it completes
	Do(ctx context.Context, providerName string, fn TaskFunc) (interface{}, error)

	// Close gracefully shuts down the limiter, waiting for queued tasks
	Close() error
}

// limiter is the concrete implementation
type limiter struct {
	config    config.RateLimiterConfig
	providers map[string]*providerLimiter
	clock     adapter.Clock
	closed    atomic.Bool
	closeOnce sync.Once
}

// providerLimiter holds the pacing state for a single downstream API.
// The pool has exactly one worker, so dispatch order matches enqueue order
// and the pacing fields are only ever touched by that worker.
type providerLimiter struct {
	name         string
	config       config.RateLimitConfig
	pool         pond.ResultPool[*taskResult]
	perSecond    *rate.Limiter
	lastDispatch time.Time
}

// NewLimiter creates a new token-paced request scheduler
func NewLimiter(cfg config.RateLimiterConfig, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	providers := make(map[string]*providerLimiter)
	for name, providerConfig := range cfg.Providers {
		providers[name] = &providerLimiter{
			name:   name,
			config: providerConfig,
			pool: pond.NewResultPool[*taskResult](
				1,
				pond.WithQueueSize(cfg.MaxQueueSize),
			),
			perSecond: rate.NewLimiter(rate.Limit(providerConfig.RequestsPerSecond), providerConfig.RequestsPerSecond),
		}
	}

	logger.Info("Rate limiter initialized",
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Int("providers", len(providers)),
	)

	return &limiter{
		config:    cfg,
		providers: providers,
		clock:     clock,
	}, nil
}

// Schedule submits a task for rate-limited execution and returns its result
// with type safety. A nil limiter executes the task directly.
func Schedule[T any](ctx context.Context, l Limiter, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if l == nil {
		return fn(ctx)
	}

	var zero T
	result, err := l.Do(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Do submits a task for rate-limited execution. It blocks until the task
// completes or the context is canceled while the task is still queued.
func (l *limiter) Do(ctx context.Context, providerName string, fn TaskFunc) (interface{}, error) {
	if l.closed.Load() {
		return nil, fmt.Errorf("limiter is closed")
	}

	provider, ok := l.providers[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	task := provider.pool.Submit(func() *taskResult {
		value, err := l.dispatch(ctx, provider, fn)
		return &taskResult{value: value, err: err}
	})

	result, err := task.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

// dispatch waits out both pacing constraints, then runs the task.
// Only the provider's single worker ever runs this.
func (l *limiter) dispatch(ctx context.Context, provider *providerLimiter, fn TaskFunc) (interface{}, error) {
	// Abandoned tasks are drained without dispatching
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Per-second ceiling
	if err := provider.perSecond.Wait(ctx); err != nil {
		return nil, err
	}

	// Minimum spacing between consecutive dispatches
	if !provider.lastDispatch.IsZero() {
		if since := l.clock.Since(provider.lastDispatch); since < provider.config.MinInterval {
			wait := provider.config.MinInterval - since
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-l.clock.After(wait):
			}
		}
	}
	provider.lastDispatch = l.clock.Now()

	return fn(ctx)
}

// Close gracefully shuts down the limiter, waiting for queued tasks to finish
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)

		logger.Info("Shutting down rate limiter")
		for _, provider := range l.providers {
			tasks := provider.pool.Stop()
			if errTasks := tasks.Wait(); errTasks != nil {
				logger.Warn("Error waiting for limiter tasks to complete",
					zap.String("provider", provider.name),
					zap.Error(errTasks))
				err = errTasks
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimiterConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for name, provider := range cfg.Providers {
		if provider.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}

		if provider.MinInterval < 0 {
			return fmt.Errorf("provider %s: min_interval must not be negative", name)
		}

		cfg.Providers[name] = provider
	}

	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 1024
	}

	return nil
}
