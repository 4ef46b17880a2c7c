// Package sleep implements Tlenix's single thread-sleep primitive:
// nanosleep with automatic resubmission of the remaining time on early
// wakeup.
package sleep

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/tlenix/tlenix/pkg/errno"
)

// PITPeriod is the Programmable Interval Timer's default IRQ period
// (~54.925 ms), used as the polling granularity for non-blocking reads
// (see pkg/console) and by [Forever].
const PITPeriod = 54925 * time.Microsecond

// Sleep suspends for d, re-sleeping with the kernel-reported remaining
// time whenever nanosleep wakes early with [errno.Eintr].
func Sleep(d time.Duration) error {
	req := unix.NsecToTimespec(d.Nanoseconds())
	for {
		var rem unix.Timespec
		err := unix.Nanosleep(&req, &rem)
		if err == nil {
			return nil
		}
		e := errno.FromSyscallErr(err)
		if errno.IsErrno(e, errno.Eintr) {
			req = rem
			continue
		}
		return e
	}
}

// Forever sleeps in a loop for one PIT period at a time, indefinitely.
// Used by binaries that have nothing further to do but must not exit
// (e.g. a halted init).
func Forever() {
	for {
		_ = Sleep(PITPeriod)
	}
}
