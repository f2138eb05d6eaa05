package sigshim

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/gopherclique/kpclique/clique"
)

// ErrAlarmUnsupported is returned by SetAlarm on platforms without an
// alarm(2) timer.
var ErrAlarmUnsupported = errors.New("sigshim: alarm timer not supported on this platform")

// Guard runs fn with the process interrupt and alarm signals captured for
// the duration of the call. Receiving either signal sets
// clique.Interrupted and cancels the context passed to fn, so an engine
// running inside fn observes cancellation at its next checkpoint and
// returns clique.ErrCancelled. The previous signal disposition is restored
// before Guard returns, on every exit path.
//
// Guard returns whatever fn returns.
func Guard(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, notifySignals...)
	defer signal.Stop(ch)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ch:
			clique.Interrupted.Store(true)
			cancel()
		case <-done:
		}
	}()

	return fn(ctx)
}
