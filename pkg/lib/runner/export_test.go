package runner

import "os/exec"

// withAfterStart runs fn between Start and Wait.
func withAfterStart(fn func(cmd *exec.Cmd)) Option {
	return func(o *Observer) {
		o.afterStart = fn
	}
}
