// Package clock provides cancelable waits for interval loops such as the
// lease janitor.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early with the context's
// error if the context is canceled first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
