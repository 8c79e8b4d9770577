package engine

import (
	"context"

	"golang.org/x/time/rate"
)

// NewBWLimiter creates a rate.Limiter that caps read throughput to
// bytesPerSec. The burst is one chunk-sized read so that small limits still
// make progress.
func NewBWLimiter(bytesPerSec int64, chunkSize int) *rate.Limiter {
	burst := chunkSize
	if bytesPerSec < int64(burst) {
		burst = int(bytesPerSec)
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), max(burst, 1))
}

// waitN blocks until n bytes may pass. WaitN rejects requests above the
// burst, so large chunks are admitted in burst-sized pieces.
func waitN(ctx context.Context, limiter *rate.Limiter, n int) error {
	if limiter == nil {
		return nil
	}
	burst := limiter.Burst()
	for n > 0 {
		step := min(n, burst)
		if err := limiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
