// Package poll drives fixed-interval refreshes. Ticks are single-flight:
// a tick arriving while the previous refresh is still running is skipped,
// so a slow backend never stacks up concurrent requests.
package poll

import (
	"context"
	"sync/atomic"
	"time"

	"campuscli/internal/logging"
)

type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context) error
	log      logging.Logger
	inFlight atomic.Bool
}

func New(interval time.Duration, log logging.Logger, fn func(ctx context.Context) error) *Poller {
	return &Poller{interval: interval, fn: fn, log: log.With("component", "poll")}
}

// Run fires fn immediately and then on every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	p.TryTick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.TryTick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// TryTick runs one refresh unless one is already in flight; it reports
// whether the refresh ran. Errors are logged, not returned: a failed
// refresh just means the view shows slightly stale data until the next
// tick.
func (p *Poller) TryTick(ctx context.Context) bool {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.log.Debug(ctx, "tick skipped, refresh still in flight")
		return false
	}
	defer p.inFlight.Store(false)

	if err := p.fn(ctx); err != nil {
		p.log.Warn(ctx, "refresh failed", "error", err)
	}
	return true
}
