// Package simulate provides the artificial latency the service layer applies
// to every call, standing in for a real network round trip.
package simulate

import (
	"context"
	"time"
)

// Delay blocks for d or until ctx is cancelled, whichever comes first.
// A cancelled context returns ctx.Err before any state is touched.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
