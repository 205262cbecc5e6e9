//go:build !linux && !darwin

package runner

import (
	"os"

	"github.com/SanjoDeundiak/timit/pkg/lib"
)

func exitStatusFromState(state *os.ProcessState) lib.ExitStatus {
	// ExitCode is -1 for a process terminated by a signal; the signal is not named here.
	code := state.ExitCode()
	if code < 0 {
		return lib.Signaled("")
	}
	return lib.Exited(code)
}
