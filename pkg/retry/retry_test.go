package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JaimeStill/taxonomist/pkg/retry"
)

var errBoom = errors.New("boom")

func fastConfig() *retry.Config {
	cfg := &retry.Config{Backoff: "1ms", AttemptTimeout: "1s"}
	if err := cfg.Finalize(nil); err != nil {
		panic(err)
	}
	return cfg
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := retry.Do(context.Background(), retry.New(fastConfig()), func(ctx context.Context, attempt int) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || calls != 1 {
		t.Errorf("got %q after %d calls", got, calls)
	}
}

func TestDoSucceedsOnFinalAttempt(t *testing.T) {
	var attempts []int
	got, err := retry.Do(context.Background(), retry.New(fastConfig()), func(ctx context.Context, attempt int) (int, error) {
		attempts = append(attempts, attempt)
		if attempt < 3 {
			return 0, errBoom
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if len(attempts) != 3 {
		t.Errorf("attempts = %v, want [1 2 3]", attempts)
	}
}

func TestDoExhausts(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), retry.New(fastConfig()), func(ctx context.Context, attempt int) (int, error) {
		calls++
		return 0, errBoom
	})

	if calls != 3 {
		t.Errorf("calls = %d, want 3 (never a fourth)", calls)
	}

	var exhausted *retry.ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("err = %T, want *ExhaustedError", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", exhausted.Attempts)
	}
	if !errors.Is(err, errBoom) {
		t.Error("last error not preserved")
	}
}

func TestDoNonRetryable(t *testing.T) {
	errFatal := errors.New("fatal")
	p := retry.New(fastConfig(), retry.WithRetryable(func(err error) bool {
		return !errors.Is(err, errFatal)
	}))

	calls := 0
	_, err := retry.Do(context.Background(), p, func(ctx context.Context, attempt int) (int, error) {
		calls++
		return 0, errFatal
	})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if !errors.Is(err, errFatal) {
		t.Errorf("err = %v, want fatal", err)
	}
}

func TestDoOnRetryCallback(t *testing.T) {
	var seen []int
	p := retry.New(fastConfig(), retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		seen = append(seen, attempt)
	}))

	retry.Do(context.Background(), p, func(ctx context.Context, attempt int) (int, error) {
		return 0, errBoom
	})

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("retry callbacks = %v, want [1 2]", seen)
	}
}

func TestDoHonorsCancellationDuringBackoff(t *testing.T) {
	cfg := &retry.Config{Backoff: "10s"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	done := make(chan error, 1)
	go func() {
		_, err := retry.Do(ctx, retry.New(cfg), func(ctx context.Context, attempt int) (int, error) {
			calls++
			return 0, errBoom
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, retry.ErrAborted) {
			t.Errorf("err = %v, want ErrAborted", err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}

func TestDoCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := retry.Do(ctx, retry.New(fastConfig()), func(ctx context.Context, attempt int) (int, error) {
		calls++
		return 0, nil
	})

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if !errors.Is(err, retry.ErrAborted) {
		t.Errorf("err = %v, want ErrAborted", err)
	}
}

func TestDoAttemptTimeoutCountsAsFailure(t *testing.T) {
	cfg := &retry.Config{Backoff: "1ms", AttemptTimeout: "10ms"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatal(err)
	}

	got, err := retry.Do(context.Background(), retry.New(cfg), func(ctx context.Context, attempt int) (string, error) {
		if attempt == 1 {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "second", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "second" {
		t.Errorf("got %q, want second", got)
	}
}

func TestWait(t *testing.T) {
	tests := []struct {
		name string
		cfg  retry.Config
		want []time.Duration
	}{
		{
			name: "fixed",
			cfg:  retry.Config{Backoff: "500ms"},
			want: []time.Duration{500 * time.Millisecond, 500 * time.Millisecond},
		},
		{
			name: "exponential capped",
			cfg:  retry.Config{Backoff: "1s", BackoffMultiplier: 2, MaxBackoff: "3s"},
			want: []time.Duration{time.Second, 2 * time.Second, 3 * time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := cfg.Finalize(nil); err != nil {
				t.Fatal(err)
			}
			p := retry.New(&cfg)
			for i, want := range tt.want {
				if got := p.Wait(i + 1); got != want {
					t.Errorf("wait(%d) = %v, want %v", i+1, got, want)
				}
			}
		})
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  retry.Config
	}{
		{"negative attempts", retry.Config{MaxAttempts: -1}},
		{"bad backoff", retry.Config{Backoff: "fast"}},
		{"shrinking multiplier", retry.Config{BackoffMultiplier: 0.5}},
		{"bad attempt timeout", retry.Config{AttemptTimeout: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := cfg.Finalize(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("TEST_RETRY_BACKOFF", "250ms")

	var cfg retry.Config
	if err := cfg.Finalize(&retry.Env{
		MaxAttempts: "TEST_RETRY_MAX_ATTEMPTS",
		Backoff:     "TEST_RETRY_BACKOFF",
	}); err != nil {
		t.Fatal(err)
	}

	if cfg.MaxAttempts != 5 {
		t.Errorf("max_attempts = %d, want 5", cfg.MaxAttempts)
	}
	if cfg.BackoffDuration() != 250*time.Millisecond {
		t.Errorf("backoff = %v, want 250ms", cfg.BackoffDuration())
	}
}
