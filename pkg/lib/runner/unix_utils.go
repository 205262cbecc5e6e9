//go:build linux || darwin

package runner

import (
	"os"
	"syscall"

	"github.com/SanjoDeundiak/timit/pkg/lib"
	"golang.org/x/sys/unix"
)

func exitStatusFromState(state *os.ProcessState) lib.ExitStatus {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return lib.Exited(state.ExitCode())
	}
	status := unix.WaitStatus(ws)
	if status.Signaled() {
		return lib.Signaled(unix.SignalName(status.Signal()))
	}
	return lib.Exited(status.ExitStatus())
}
