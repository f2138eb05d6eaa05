//go:build unix

package sigshim_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gopherclique/kpclique/clique"
	"github.com/gopherclique/kpclique/sigshim"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// TestGuardCatchesAlarmSignal delivers a real SIGALRM to the process while
// a Guard is active and verifies it is translated into both cancellation
// channels: the context fn sees, and the clique package's ambient flag.
func TestGuardCatchesAlarmSignal(t *testing.T) {
	clique.Interrupted.Store(false)
	t.Cleanup(func() { clique.Interrupted.Store(false) })

	err := sigshim.Guard(context.Background(), func(ctx context.Context) error {
		if err := unix.Kill(os.Getpid(), unix.SIGALRM); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(5 * time.Second):
			t.Fatal("SIGALRM was not observed by the guard")
			return nil
		}
	})
	require.NoError(t, err)
	require.True(t, clique.Interrupted.Load())
}
