package selection

import (
	"context"
	"time"
)

// DefaultInterval is the pause between poll cycles.
const DefaultInterval = 1500 * time.Millisecond

// Run walks the focus chain every interval and sends each snapshot on out
// until ctx is cancelled. Cancellation is only observed between cycles.
//
// Sends never block. When out is full the oldest queued snapshot is
// discarded to make room, so a consumer that falls behind always finds the
// newest one last. On an unbuffered channel a snapshot nobody is waiting for
// is dropped. Run does not close out.
func (c *Controller) Run(ctx context.Context, interval time.Duration, out chan Snapshot) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c.logger.Info("selection poller started", "interval", interval)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		c.send(out, c.Walk())

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			c.logger.Info("selection poller stopped")
			return nil
		case <-timer.C:
		}
	}
}

// send delivers snap without blocking, evicting stale snapshots from a full
// buffer. Run must be the only sender on out.
func (c *Controller) send(out chan Snapshot, snap Snapshot) {
	if cap(out) == 0 {
		select {
		case out <- snap:
		default:
			c.logger.Debug("consumer busy, snapshot dropped", "outcome", snap.Outcome)
		}
		return
	}
	for {
		select {
		case out <- snap:
			return
		default:
		}
		select {
		case stale := <-out:
			c.logger.Debug("consumer behind, oldest snapshot dropped", "outcome", stale.Outcome)
		default:
			// The consumer drained the buffer meanwhile; retry the send.
		}
	}
}
