package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pathwise/pathwise-api/internal/config"
	"github.com/pathwise/pathwise-api/internal/platform/logger"
)

// backoffStep is the base delay between attempts; the delay before attempt
// N+1 is backoffStep × N (linear, not exponential).
const backoffStep = 200 * time.Millisecond

// Operation is one asynchronous unit of work wrapped by the executor,
// typically a single provider call.
type Operation func(ctx context.Context) (string, error)

// Executor wraps any Operation with a per-attempt timeout and bounded
// retry-with-backoff. It is shape-agnostic: every provider call site is
// wrapped uniformly so no caller implements its own retry logic.
type Executor struct {
	timeout    time.Duration
	maxRetries int
	logger     *slog.Logger
}

// NewExecutor creates an Executor from the LLM configuration.
// If logger is nil, the default logger is used.
func NewExecutor(cfg config.LLMConfig, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{
		timeout:    time.Duration(cfg.TimeoutMs) * time.Millisecond,
		maxRetries: cfg.MaxRetries,
		logger:     log.With(slog.String("component", "llm_executor")),
	}
}

// Execute runs the operation, retrying on failure (including timeouts) up to
// the configured bound with linear backoff between attempts. The final
// failure after exhausting retries is an *ExecutionError wrapping the last
// observed error.
//
// ErrAuthRequiresOAuth short-circuits the retry loop: a credential-class
// mismatch cannot heal on its own.
func (e *Executor) Execute(ctx context.Context, op Operation) (string, error) {
	log := logger.FromContextOrDefault(ctx, e.logger)

	var result string
	attempts := 0

	retryable := func() error {
		attempts++
		raw, err := e.attempt(ctx, op)
		if err != nil {
			log.Warn("model call attempt failed",
				slog.Int("attempt", attempts),
				slog.Int("max_attempts", e.maxRetries+1),
				slog.String("error", err.Error()))
			if errors.Is(err, ErrAuthRequiresOAuth) {
				return backoff.Permanent(err)
			}
			return err
		}
		result = raw
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&linearBackOff{step: backoffStep}, uint64(e.maxRetries)),
		ctx,
	)

	if err := backoff.Retry(retryable, policy); err != nil {
		if errors.Is(err, ErrAuthRequiresOAuth) {
			return "", err
		}
		return "", &ExecutionError{Attempts: attempts, Err: err}
	}

	return result, nil
}

// attempt races one invocation of the operation against the timeout budget.
// On timeout the attempt is abandoned, not cancelled: the goroutine's
// eventual result is discarded via the buffered channel, and a retried
// attempt may run concurrently with it. Duplicate provider-side effects are
// an accepted cost.
func (e *Executor) attempt(ctx context.Context, op Operation) (string, error) {
	type outcome struct {
		raw string
		err error
	}

	ch := make(chan outcome, 1)
	go func() {
		raw, err := op(ctx)
		ch <- outcome{raw: raw, err: err}
	}()

	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		return out.raw, out.err
	case <-timer.C:
		return "", ErrTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// linearBackOff yields backoffStep × attemptNumber between attempts.
// The backoff library only ships constant and exponential policies.
type linearBackOff struct {
	step    time.Duration
	attempt int
}

// Ensure linearBackOff implements the backoff.BackOff interface.
var _ backoff.BackOff = (*linearBackOff)(nil)

// NextBackOff returns the delay before the next attempt.
func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * b.step
}

// Reset restarts the attempt counter.
func (b *linearBackOff) Reset() {
	b.attempt = 0
}
