package clique

import (
	"context"
	"sync/atomic"
)

// Interrupted is the ambient cooperative-interruption flag. Any code that
// wants to interrupt a long-running Next() call, such as a signal handler
// or a watchdog goroutine, sets it; the engine clears it the next time it
// is observed at a checkpoint and surfaces ErrCancelled.
//
// Prefer passing a context.Context to Next where the caller already has
// one; Interrupted exists for the cases (OS signals) where there isn't a
// context to thread through.
var Interrupted atomic.Bool

// checkCancelled observes both cancellation channels at a checkpoint.
// Interrupted is consumed when observed set, so a stale interrupt cannot
// cancel an unrelated later run.
func checkCancelled(ctx context.Context) error {
	if Interrupted.Load() {
		Interrupted.Store(false)
		return ErrCancelled
	}
	if ctx != nil {
		select {
		case <-ctx.Done():
			return ErrCancelled
		default:
		}
	}
	return nil
}
