package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pathwise/pathwise-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(timeoutMs, maxRetries int) *Executor {
	return NewExecutor(config.LLMConfig{TimeoutMs: timeoutMs, MaxRetries: maxRetries}, nil)
}

func TestExecutorSuccessFirstAttempt(t *testing.T) {
	t.Parallel()
	exec := newTestExecutor(1000, 2)

	calls := 0
	raw, err := exec.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return `{"ok":true}`, nil
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, raw)
	assert.Equal(t, 1, calls)
}

func TestExecutorRetriesThenSucceeds(t *testing.T) {
	t.Parallel()
	exec := newTestExecutor(1000, 2)

	calls := 0
	raw, err := exec.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient upstream failure")
		}
		return `{"ok":true}`, nil
	})

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, raw)
	assert.Equal(t, 3, calls)
}

func TestExecutorExhaustsRetries(t *testing.T) {
	t.Parallel()
	exec := newTestExecutor(1000, 2)

	calls := 0
	opErr := errors.New("persistent upstream failure")
	_, err := exec.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", opErr
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls, "expected initial attempt plus two retries")

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 3, execErr.Attempts)
	assert.ErrorIs(t, err, opErr)
}

func TestExecutorOAuthErrorIsPermanent(t *testing.T) {
	t.Parallel()
	exec := newTestExecutor(1000, 2)

	calls := 0
	_, err := exec.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls++
		return "", ErrAuthRequiresOAuth
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "credential-class errors must not be retried")
	assert.ErrorIs(t, err, ErrAuthRequiresOAuth)

	var execErr *ExecutionError
	assert.False(t, errors.As(err, &execErr), "OAuth failures surface without the retry wrapper")
}

func TestExecutorTimeoutAbandonsAttempt(t *testing.T) {
	t.Parallel()
	exec := newTestExecutor(20, 1)

	// Abandoned attempts keep running past Execute's return, so the counter
	// must be atomic.
	var calls atomic.Int32
	_, err := exec.Execute(context.Background(), func(ctx context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
		return `{"too":"late"}`, nil
	})

	require.Error(t, err)
	assert.EqualValues(t, 2, calls.Load())
	assert.ErrorIs(t, err, ErrTimeout)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 2, execErr.Attempts)
}

func TestExecutorRespectsContextCancellation(t *testing.T) {
	t.Parallel()
	exec := newTestExecutor(5000, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exec.Execute(ctx, func(ctx context.Context) (string, error) {
		time.Sleep(time.Second)
		return "", nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLinearBackOff(t *testing.T) {
	t.Parallel()
	b := &linearBackOff{step: backoffStep}

	assert.Equal(t, backoffStep, b.NextBackOff())
	assert.Equal(t, 2*backoffStep, b.NextBackOff())
	assert.Equal(t, 3*backoffStep, b.NextBackOff())

	b.Reset()
	assert.Equal(t, backoffStep, b.NextBackOff())
}
