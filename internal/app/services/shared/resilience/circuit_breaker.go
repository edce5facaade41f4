package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"delivery-hours-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

var ErrOpen = errors.New("circuit breaker is open")

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

const (
	DefaultFailureThreshold = 5
	DefaultResetTimeout     = 60 * time.Second
	DefaultHalfOpenMaxCalls = 3
)

type Settings struct {
	Name             string
	FailureThreshold int
	ResetTimeout     time.Duration
	HalfOpenMaxCalls int
}

// CircuitBreaker shields an upstream service from calls while it is
// misbehaving. Consecutive failures trip the breaker open; after
// ResetTimeout a limited number of probe calls may pass, and only a full
// round of successful probes closes it again.
type CircuitBreaker struct {
	name             string
	failureThreshold int
	resetTimeout     time.Duration
	halfOpenMaxCalls int
	log              *zap.Logger

	mu                sync.Mutex
	state             State
	failures          int
	halfOpenCalls     int
	halfOpenSuccesses int
	openedAt          time.Time
}

func NewCircuitBreaker(settings Settings, log *zap.Logger) *CircuitBreaker {
	if settings.FailureThreshold <= 0 {
		settings.FailureThreshold = DefaultFailureThreshold
	}
	if settings.ResetTimeout <= 0 {
		settings.ResetTimeout = DefaultResetTimeout
	}
	if settings.HalfOpenMaxCalls <= 0 {
		settings.HalfOpenMaxCalls = DefaultHalfOpenMaxCalls
	}
	return &CircuitBreaker{
		name:             settings.Name,
		failureThreshold: settings.FailureThreshold,
		resetTimeout:     settings.ResetTimeout,
		halfOpenMaxCalls: settings.HalfOpenMaxCalls,
		log:              log,
	}
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Execute runs fn under the breaker. When the breaker is open, or the
// half-open probe budget is spent, fn is not called and ErrOpen is
// returned. fn's own error is passed through untouched.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := cb.beforeCall(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.afterCall(err)
	return err
}

func (cb *CircuitBreaker) beforeCall() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if time.Since(cb.openedAt) < cb.resetTimeout {
			return ErrOpen
		}
		cb.transitionTo(StateHalfOpen)
		cb.halfOpenCalls++
		return nil
	case StateHalfOpen:
		if cb.halfOpenCalls >= cb.halfOpenMaxCalls {
			return ErrOpen
		}
		cb.halfOpenCalls++
		return nil
	default:
		return nil
	}
}

func (cb *CircuitBreaker) afterCall(callErr error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		if callErr == nil {
			cb.failures = 0
			return
		}
		cb.failures++
		if cb.failures >= cb.failureThreshold {
			cb.openedAt = time.Now()
			cb.transitionTo(StateOpen)
		}
	case StateHalfOpen:
		if callErr != nil {
			cb.openedAt = time.Now()
			cb.transitionTo(StateOpen)
			return
		}
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.halfOpenMaxCalls {
			cb.transitionTo(StateClosed)
		}
	case StateOpen:
		// A probe admitted before another probe tripped the breaker may
		// still finish here; its outcome no longer matters.
	}
}

// transitionTo must be called with the mutex held.
func (cb *CircuitBreaker) transitionTo(state State) {
	previous := cb.state
	cb.state = state
	cb.failures = 0
	cb.halfOpenCalls = 0
	cb.halfOpenSuccesses = 0
	cb.log.Info("circuit breaker state changed",
		zap.String(constvars.LoggingServiceKey, cb.name),
		zap.String("previous_state", previous.String()),
		zap.String(constvars.LoggingBreakerStateKey, state.String()),
	)
}
