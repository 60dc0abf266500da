// Package breaker wraps sony/gobreaker for outbound calls to the Bot API and
// the device bridge.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/config"
)

var ErrOpen = errors.New("service unavailable: circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half-open"
	StateOpen     State = "open"
)

// Status is a point-in-time view used by the health endpoint.
type Status struct {
	Name     string `json:"name"`
	State    State  `json:"state"`
	Requests uint32 `json:"requests"`
	Failures uint32 `json:"failures"`
}

// Option tunes a CircuitBreaker.
type Option func(*options)

type options struct {
	expected []func(error) bool
}

// WithExpected marks errors that prove the remote side answered. They are
// still returned to the caller but count as successful round trips.
func WithExpected(match func(error) bool) Option {
	return func(o *options) {
		o.expected = append(o.expected, match)
	}
}

type CircuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func New(name string, cfg config.CircuitBreakerConfig, logger *zap.Logger, opts ...Option) *CircuitBreaker {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests == 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.ConsecutiveFails && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			for _, match := range o.expected {
				if match(err) {
					return true
				}
			}
			return false
		},
	}

	return &CircuitBreaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Execute runs fn through the breaker. Open and half-open rejections are
// reported as ErrOpen.
func (b *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fn()
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		b.logger.Warn("Circuit breaker rejected request", zap.String("name", b.cb.Name()), zap.Error(err))
		return fmt.Errorf("%w (%s)", ErrOpen, b.cb.Name())
	}

	return err
}

func (b *CircuitBreaker) State() State {
	switch b.cb.State() {
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateClosed
	}
}

func (b *CircuitBreaker) Status() Status {
	counts := b.cb.Counts()
	return Status{
		Name:     b.cb.Name(),
		State:    b.State(),
		Requests: counts.Requests,
		Failures: counts.TotalFailures,
	}
}
