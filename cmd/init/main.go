// Command init is pid 1: it runs the supervised init program if one is
// given on its command line, then spends the rest of its life reaping
// orphaned children that get reparented to it.
package main

import (
	"os"

	"github.com/tlenix/tlenix/internal/diag"
	"github.com/tlenix/tlenix/pkg/errno"
	"github.com/tlenix/tlenix/pkg/process"
	"github.com/tlenix/tlenix/pkg/sleep"
	"github.com/tlenix/tlenix/pkg/stream"
)

// welcomeMsg is the banner printed once on boot.
const welcomeMsg = "tlenix init"

func main() {
	log := diag.New("init")
	stream.Println("%s", welcomeMsg)

	if len(os.Args) > 1 {
		status, err := process.ExecuteProcess(os.Args[1:], os.Environ())
		if err != nil {
			log.WithError(err).Warn("failed to run supervised init program, continuing as reaper")
		} else if !status.IsSuccess() {
			log.WithField("code", status.Code()).Warn("supervised init program exited non-zero")
		}
	}

	reap()
}

// reap blocks in waitid for any reparented child, forever. [errno.Echild]
// means there are currently no children to wait for; init sleeps one PIT
// tick and tries again rather than busy-looping.
func reap() {
	for {
		_, err := process.Wait(process.IDAll, 0, process.WaitExited)
		if err != nil {
			if errno.IsErrno(err, errno.Echild) {
				if serr := sleep.Sleep(sleep.PITPeriod); serr != nil {
					return
				}
				continue
			}
			return
		}
	}
}
