//go:build !unix

package sigshim

import "os"

// Without POSIX signal numbers, only the portable interrupt is available.
var notifySignals = []os.Signal{os.Interrupt}
