//go:build unix

package sigshim

import (
	"os"

	"golang.org/x/sys/unix"
)

// The two signals a guarded run listens for: the interactive interrupt and
// the alarm timer armed by SetAlarm.
var notifySignals = []os.Signal{unix.SIGINT, unix.SIGALRM}
