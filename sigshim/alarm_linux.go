//go:build linux

package sigshim

import (
	"time"

	"golang.org/x/sys/unix"
)

// SetAlarm arms the process alarm timer: after d elapses the kernel
// delivers SIGALRM, which a surrounding Guard turns into cancellation,
// giving callers a time-bounded search. A zero d disarms any pending
// alarm. SetAlarm returns the time that was remaining on a previously
// armed alarm.
//
// alarm(2) has whole-second resolution; sub-second durations are rounded
// up to one second rather than silently disarming.
func SetAlarm(d time.Duration) (time.Duration, error) {
	secs := uint(d / time.Second)
	if d > 0 && secs == 0 {
		secs = 1
	}
	remaining, err := unix.Alarm(secs)
	if err != nil {
		return 0, err
	}
	return time.Duration(remaining) * time.Second, nil
}
