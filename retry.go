package farmkonnect

import (
	"context"
	"time"
)

// backoffDelay returns base * 2^n. n is 0 for the delay that follows the
// first failed attempt.
func backoffDelay(base time.Duration, n int) time.Duration {
	if base <= 0 {
		return 0
	}
	if n < 0 {
		n = 0
	}
	// Cap the exponent; shifting further would overflow time.Duration.
	if n > 40 {
		n = 40
	}
	d := base << uint(n)
	if d < base {
		return 1<<63 - 1
	}
	return d
}

// sleep blocks for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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
