package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/workforce/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 2, []string{}, func(context.Context, string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("Run(empty) = %v, want empty non-nil slice", results)
	}
	if err := fanout.Join(results); err != nil {
		t.Errorf("Join(empty) = %v, want nil", err)
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	// Later items finish first.
	delays := []time.Duration{30 * time.Millisecond, 10 * time.Millisecond, 0}

	results := fanout.Run(context.Background(), len(delays), delays,
		func(_ context.Context, d time.Duration) (time.Duration, error) {
			time.Sleep(d)
			return d, nil
		})

	for i, r := range results {
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v, want nil", i, r.Err)
		}
		if r.Value != delays[i] {
			t.Errorf("results[%d].Value = %v, want %v", i, r.Value, delays[i])
		}
	}
}

func TestRun_FailuresDoNotStopOthers(t *testing.T) {
	t.Parallel()

	errDisk := errors.New("disk full")
	formats := []string{"text", "xlsx", "csv"}
	var calls atomic.Int32

	results := fanout.Run(context.Background(), 2, formats, func(_ context.Context, f string) (string, error) {
		calls.Add(1)
		if f == "xlsx" {
			return "", errDisk
		}
		return f, nil
	})

	if got := calls.Load(); got != 3 {
		t.Errorf("fn called %d times, want 3", got)
	}
	if results[0].Value != "text" || results[2].Value != "csv" {
		t.Errorf("results = %+v, want text and csv to succeed", results)
	}

	err := fanout.Join(results)
	if !errors.Is(err, errDisk) {
		t.Errorf("Join() = %v, want %v", err, errDisk)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3
	var active, peak atomic.Int32

	items := make([]int, 12)
	fanout.Run(context.Background(), maxWorkers, items, func(context.Context, int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return 0, nil
	})

	if p := peak.Load(); p > maxWorkers {
		t.Errorf("peak concurrency = %d, want <= %d", p, maxWorkers)
	}
}

func TestRun_NonPositiveWorkersRunsSerially(t *testing.T) {
	t.Parallel()

	var active, peak atomic.Int32
	results := fanout.Run(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)
		if cur > peak.Load() {
			peak.Store(cur)
		}
		time.Sleep(time.Millisecond)
		return n, nil
	})

	if p := peak.Load(); p != 1 {
		t.Errorf("peak concurrency = %d, want 1", p)
	}
	if err := fanout.Join(results); err != nil {
		t.Errorf("Join() = %v, want nil", err)
	}
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// With one worker and a cancelled context, at most the item that wins
	// the free slot runs; every other item reports the cancellation.
	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(ctx context.Context, _ int) (int, error) {
		calls.Add(1)
		return 0, ctx.Err()
	})

	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
	if got := calls.Load(); got > 3 {
		t.Errorf("fn called %d times, want at most 3", got)
	}
}
