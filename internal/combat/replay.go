package combat

import (
	"context"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// Replay emits an already resolved round log at a fixed pace. The channel
// closes after the last round or when ctx is done. A non-positive delay
// emits everything without waiting.
func Replay(ctx context.Context, rounds []domain.CombatRound, delay time.Duration) <-chan domain.CombatRound {
	out := make(chan domain.CombatRound)

	go func() {
		defer close(out)

		var tick <-chan time.Time
		if delay > 0 {
			ticker := time.NewTicker(delay)
			defer ticker.Stop()
			tick = ticker.C
		}

		for _, round := range rounds {
			if tick != nil {
				select {
				case <-ctx.Done():
					return
				case <-tick:
				}
			}
			select {
			case <-ctx.Done():
				return
			case out <- round:
			}
		}
	}()

	return out
}
