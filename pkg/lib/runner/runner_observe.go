package runner

import (
	"errors"
	"os/exec"
	"time"

	"github.com/SanjoDeundiak/timit/pkg/lib"
	"github.com/SanjoDeundiak/timit/pkg/lib/stdio"
)

// Observe launches command with the given stdio routing, blocks until it
// terminates and returns its exit status and elapsed time.
//
// The returned error is an *ObservationError: SpawnFailed when the process
// could not be created, JoinFailed when its exit status could not be
// collected. A non-zero exit or a terminating signal is not an error.
// Redirect files in cfg are left open.
func (o *Observer) Observe(command lib.Command, cfg stdio.Config) (*lib.ProcessOutcome, error) {
	if command.Command == "" {
		return nil, &ObservationError{Kind: SpawnFailed, Command: command, Err: ErrEmptyCommand}
	}
	command = lib.Command{Command: command.Command, Args: append([]string(nil), command.Args...)}

	logger := o.logger.With("id", lib.NewID(), "command", command.Command)

	cmd := exec.Command(command.Command, command.Args...)
	setStdio(cmd, cfg.Resolve())

	logger.Debug("starting process", "args", command.Args,
		"stdin", cfg.Stdin.Mode(), "stdout", cfg.Stdout.Mode(), "stderr", cfg.Stderr.Mode())

	start := o.clock.Now()
	if err := cmd.Start(); err != nil {
		logger.Debug("failed to start process", "error", err)
		return nil, &ObservationError{Kind: SpawnFailed, Command: command, Err: err}
	}
	if o.afterStart != nil {
		o.afterStart(cmd)
	}
	err := cmd.Wait()
	end := o.clock.Now()

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			logger.Debug("failed to collect exit status", "pid", cmd.Process.Pid, "error", err)
			return nil, &ObservationError{Kind: JoinFailed, Command: command, Err: err}
		}
	}
	if cmd.ProcessState == nil {
		return nil, &ObservationError{Kind: JoinFailed, Command: command, Err: errors.New("no process state")}
	}

	outcome := &lib.ProcessOutcome{
		Command:    command,
		ExitStatus: exitStatusFromState(cmd.ProcessState),
	}
	if elapsed, ok := checkedElapsed(start, end); ok {
		outcome.Duration = &elapsed
		logger.Debug("process finished", "pid", cmd.Process.Pid, "success", outcome.ExitStatus.Success(), "duration", elapsed)
	} else {
		logger.Warn("clock reported end before start, duration unknown", "pid", cmd.Process.Pid)
	}

	return outcome, nil
}

// setStdio hands the resolved directives to cmd. A nil directive leaves the
// field unset so os/exec opens the null device; assigning a nil *os.File
// would close the child's descriptor instead.
func setStdio(cmd *exec.Cmd, r stdio.Resolved) {
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}
}

// checkedElapsed returns end - start; ok is false when end precedes start.
func checkedElapsed(start, end time.Time) (elapsed time.Duration, ok bool) {
	if end.Before(start) {
		return 0, false
	}
	return end.Sub(start), true
}
