package runner

import (
	"errors"

	"github.com/SanjoDeundiak/timit/pkg/lib"
)

var (
	// ErrSpawnFailed matches observations whose process could not be created.
	ErrSpawnFailed = errors.New("could not spawn timed process")
	// ErrJoinFailed matches observations whose exit status could not be collected.
	ErrJoinFailed = errors.New("could not collect timed process exit status")
	// ErrEmptyCommand is the cause of a spawn failure for an empty command name.
	ErrEmptyCommand = errors.New("command is required")
)

// Kind classifies an ObservationError.
type Kind int

const (
	SpawnFailed Kind = iota + 1
	JoinFailed
)

func (k Kind) String() string {
	switch k {
	case SpawnFailed:
		return "spawn failed"
	case JoinFailed:
		return "join failed"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case SpawnFailed:
		return ErrSpawnFailed
	case JoinFailed:
		return ErrJoinFailed
	default:
		return nil
	}
}

// ObservationError reports why an observation produced no outcome.
// It matches ErrSpawnFailed or ErrJoinFailed with errors.Is and unwraps to the OS error.
type ObservationError struct {
	Kind    Kind
	Command lib.Command
	Err     error
}

func (e *ObservationError) Error() string {
	msg := "observation failed"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *ObservationError) Unwrap() error {
	return e.Err
}

func (e *ObservationError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}
