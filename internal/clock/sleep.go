// Package clock provides context-aware waiting helpers.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	_, err := SleepOrSignal(ctx, d, nil)
	return err
}

// SleepOrSignal waits for the duration, a value on signal, or context
// cancellation, whichever comes first. It reports whether the signal fired.
// A nil signal channel never fires.
func SleepOrSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-signal:
		return true, nil
	case <-timer.C:
		return false, nil
	}
}
