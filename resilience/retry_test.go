package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPollReadyAfterAttempts(t *testing.T) {
	attempts := 0
	err := Poll(context.Background(), time.Millisecond, func() bool {
		attempts++
		return attempts >= 3
	})
	if err != nil {
		t.Fatalf("Poll error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestPollCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Poll(ctx, time.Millisecond, func() bool {
		attempts++
		return false
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 0 {
		t.Errorf("expected no attempts after cancellation, got %d", attempts)
	}
}

func TestPollCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Poll(ctx, time.Hour, func() bool { return false })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	cfg := &RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     10 * time.Millisecond,
		Multiplier:   2.0,
		RetryIf:      IsRetryable,
	}

	calls := 0
	err := RetryWithConfig(context.Background(), cfg, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RetryWithConfig error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetryMaxAttemptsExceeded(t *testing.T) {
	cfg := &RetryConfig{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   1.0,
		RetryIf:      IsRetryable,
	}

	sentinel := errors.New("still down")
	calls := 0
	err := RetryWithConfig(context.Background(), cfg, func() error {
		calls++
		return sentinel
	})

	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
	var maxErr ErrMaxRetriesExceeded
	if !errors.As(err, &maxErr) {
		t.Fatalf("expected ErrMaxRetriesExceeded, got %v", err)
	}
	if maxErr.Attempts != 2 {
		t.Errorf("expected 2 recorded attempts, got %d", maxErr.Attempts)
	}
	if !errors.Is(err, sentinel) {
		t.Error("expected wrapped last error")
	}
}

func TestRetryStopsOnNonRetryableError(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.InitialDelay = time.Millisecond
	cfg.RetryIf = func(error) bool { return false }

	fatal := errors.New("fatal")
	calls := 0
	err := RetryWithConfig(context.Background(), cfg, func() error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("expected original error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single call, got %d", calls)
	}
}

func TestSingleAttempt(t *testing.T) {
	calls := 0
	err := RetryWithConfig(context.Background(), SingleAttempt(), func() error {
		calls++
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected exactly one call, got %d", calls)
	}
}
