package lib

import (
	"strings"
	"time"
)

// Command captures the command metadata used to launch a process.
type Command struct {
	Command string
	Args    []string
}

// String renders the command line as it was given, space separated.
func (c Command) String() string {
	all := append([]string{c.Command}, c.Args...)
	return strings.Join(all, " ")
}

// ExitStatus describes how an observed process terminated.
// A process either exits normally with a code or is terminated by a signal.
type ExitStatus struct {
	code     int
	signaled bool
	signal   string
}

// Exited builds the status of a process that exited normally with code.
func Exited(code int) ExitStatus {
	return ExitStatus{code: code}
}

// Signaled builds the status of a process terminated by a signal.
// name may be empty when the platform cannot name the signal.
func Signaled(name string) ExitStatus {
	return ExitStatus{code: -1, signaled: true, signal: name}
}

// Code returns the exit code; ok is false when the process was signaled.
func (s ExitStatus) Code() (code int, ok bool) {
	if s.signaled {
		return 0, false
	}
	return s.code, true
}

// Signal returns the terminating signal name; ok is false when the process exited normally.
func (s ExitStatus) Signal() (name string, ok bool) {
	return s.signal, s.signaled
}

// Success reports whether the process exited normally with code 0.
func (s ExitStatus) Success() bool {
	return !s.signaled && s.code == 0
}

// ProcessOutcome is the result of observing one process execution.
type ProcessOutcome struct {
	Command    Command
	ExitStatus ExitStatus
	// Duration is nil when the clock reported an end time before the start time.
	Duration *time.Duration
}
