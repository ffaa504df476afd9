package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/field-sync/internal/logger"
)

const defaultConnectivityInterval = 30 * time.Second

// ConnectivityWatcher polls the remote service and triggers a sync pass on
// every offline to online transition. The device starts out as offline, so
// the first successful poll also triggers.
type ConnectivityWatcher struct {
	pinger   Pinger
	trigger  Triggerer
	interval time.Duration

	online atomic.Bool
}

func NewConnectivityWatcher(pinger Pinger, trigger Triggerer, interval time.Duration) *ConnectivityWatcher {
	if interval <= 0 {
		interval = defaultConnectivityInterval
	}

	return &ConnectivityWatcher{
		pinger:   pinger,
		trigger:  trigger,
		interval: interval,
	}
}

// Online reports the result of the last poll.
func (c *ConnectivityWatcher) Online() bool {
	return c.online.Load()
}

func (c *ConnectivityWatcher) Run(ctx context.Context) {
	t := time.NewTicker(c.interval)
	defer t.Stop()

	c.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.poll(ctx)
		}
	}
}

func (c *ConnectivityWatcher) poll(ctx context.Context) {
	log := logger.FromContext(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	err := c.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}

	online := err == nil
	was := c.online.Swap(online)

	switch {
	case online && !was:
		log.Info().Str("func", "ConnectivityWatcher.poll").Msg("remote service reachable, triggering sync")
		c.trigger.Trigger()
	case !online && was:
		log.Warn().Err(err).Str("func", "ConnectivityWatcher.poll").Msg("remote service unreachable")
	}
}
