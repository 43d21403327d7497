// SPDX-License-Identifier: MIT

package greedy

import "time"

// Param configures a driver run. The zero value is usable: TimeLimit == 0
// means unlimited (Go's time.Duration has no infinity value, unlike the
// reference implementation's std::numeric_limits<double>::infinity()
// default — see DESIGN.md for this Open Question decision), Seed == 0 is a
// valid seed, LogEntries defaults to false, and a nil Logger is treated as
// NoopLogger by every driver.
type Param struct {
	TimeLimit  time.Duration
	Seed       uint32
	LogEntries bool
	Logger     *Logger
}

// Option configures a Param via NewParam.
type Option func(*Param)

// WithTimeLimit sets the wall-clock budget for a run. Zero (the default)
// means unlimited.
func WithTimeLimit(d time.Duration) Option {
	return func(p *Param) { p.TimeLimit = d }
}

// WithSeed sets the PRNG seed used by Random, Stochastic, and Double.
func WithSeed(seed uint32) Option {
	return func(p *Param) { p.Seed = seed }
}

// WithLogEntries enables Fast-oracle offdiagonal-pair logging for
// diagnostics; leave disabled on the hot path.
func WithLogEntries() Option {
	return func(p *Param) { p.LogEntries = true }
}

// WithLogger attaches a structured logger. Pass NoopLogger() explicitly to
// silence a Param that would otherwise inherit a caller's logger.
func WithLogger(l *Logger) Option {
	return func(p *Param) { p.Logger = l }
}

// NewParam gathers options into a Param, per the teacher's functional-options
// convention (matrix/options.go's gatherOptions).
func NewParam(opts ...Option) Param {
	p := Param{Logger: NoopLogger()}
	for _, o := range opts {
		o(&p)
	}
	if p.Logger == nil {
		p.Logger = NoopLogger()
	}
	return p
}

// timeLimitExceeded reports whether elapsed has exceeded the configured
// budget. A zero TimeLimit never expires.
func (p Param) timeLimitExceeded(elapsed time.Duration) bool {
	return p.TimeLimit != 0 && elapsed > p.TimeLimit
}
