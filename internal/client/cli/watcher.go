package cli

import (
	"context"
	"time"
)

const pingTimeout = 3 * time.Second

// StartOnlineStatusWatcher pings the store every interval and switches the
// console between online and offline mode. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := a.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.store.Ping(pingCtx)
	cancel()

	if err != nil {
		if a.getMode() != ModeOffline {
			a.logger.Warn(ctx, "store unreachable", "error", err)
		}
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
