// Package stdio maps per-stream routing choices for a child process into the
// directives os/exec expects.
package stdio

import (
	"os"
)

// Mode selects how one standard stream of the child is routed.
type Mode int

const (
	// ModeNull connects the stream to the null device.
	ModeNull Mode = iota
	// ModeInherit shares the calling process's corresponding stream.
	ModeInherit
	// ModeRedirect binds the stream to a file opened by the caller.
	ModeRedirect
)

func (m Mode) String() string {
	switch m {
	case ModeNull:
		return "null"
	case ModeInherit:
		return "inherit"
	case ModeRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Stream identifies one of the three standard streams.
type Stream int

const (
	Stdin Stream = iota
	Stdout
	Stderr
)

func (s Stream) String() string {
	switch s {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// Stdio is the routing choice for a single stream. The zero value is Null.
// Values are built with Null, Inherit or Redirect, so a stream never carries
// both a file and an inherit choice.
type Stdio struct {
	mode Mode
	file *os.File
}

// Null discards output, or gives immediate EOF on input.
func Null() Stdio {
	return Stdio{mode: ModeNull}
}

// Inherit shares the caller's own stream with the child.
func Inherit() Stdio {
	return Stdio{mode: ModeInherit}
}

// Redirect binds the stream to f. The caller owns f and must keep it open
// until the child exits. A nil f behaves as Null.
func Redirect(f *os.File) Stdio {
	if f == nil {
		return Null()
	}
	return Stdio{mode: ModeRedirect, file: f}
}

// Mode returns the routing mode.
func (s Stdio) Mode() Mode {
	return s.mode
}

// File returns the redirect target, or nil for other modes.
func (s Stdio) File() *os.File {
	return s.file
}

// Resolve returns the directive for stream: nil selects the null device
// (os/exec opens os.DevNull for nil stdio), otherwise the file to hand to the child.
// Inherit resolves to the process's os.Stdin, os.Stdout or os.Stderr at call time.
func (s Stdio) Resolve(stream Stream) *os.File {
	switch s.mode {
	case ModeInherit:
		return parentStream(stream)
	case ModeRedirect:
		return s.file
	default:
		return nil
	}
}

func parentStream(stream Stream) *os.File {
	switch stream {
	case Stdin:
		return os.Stdin
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}

// Config routes all three standard streams. The zero value discards all of them.
type Config struct {
	Stdin  Stdio
	Stdout Stdio
	Stderr Stdio
}

// Resolved holds the launch directives for the three streams.
type Resolved struct {
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
}

// Resolve resolves every stream of the config.
func (c Config) Resolve() Resolved {
	return Resolved{
		Stdin:  c.Stdin.Resolve(Stdin),
		Stdout: c.Stdout.Resolve(Stdout),
		Stderr: c.Stderr.Resolve(Stderr),
	}
}
