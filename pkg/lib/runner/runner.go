package runner

import (
	"os/exec"
	"time"

	"github.com/SanjoDeundiak/timit/pkg/lib"
	"github.com/SanjoDeundiak/timit/pkg/lib/stdio"
	"github.com/hashicorp/go-hclog"
)

// Clock is the time source used to bracket an observation.
type Clock interface {
	Now() time.Time
}

// systemClock reads time.Now, which carries a monotonic clock reading.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Observer launches a single process, times it and collects its exit status.
// It keeps no state between observations.
type Observer struct {
	logger hclog.Logger
	clock  Clock

	afterStart func(cmd *exec.Cmd)
}

// Option configures an Observer.
type Option func(*Observer)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger hclog.Logger) Option {
	return func(o *Observer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(o *Observer) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// NewObserver creates a new Observer. Without options it logs nowhere and
// uses the system monotonic clock.
func NewObserver(opts ...Option) *Observer {
	o := &Observer{
		logger: hclog.NewNullLogger(),
		clock:  systemClock{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Observe runs command with a default Observer.
func Observe(command lib.Command, cfg stdio.Config) (*lib.ProcessOutcome, error) {
	return NewObserver().Observe(command, cfg)
}
