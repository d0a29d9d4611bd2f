// SPDX-License-Identifier: MIT

package bruteforce

import (
	"log/slog"
	"math"
)

const (
	// DefaultBound is the right-hand side of the bounding row Σx ≤ Bound.
	DefaultBound = 1e10

	// DefaultTolerance is the relative slack allowed when checking a vertex
	// against the inequalities and when comparing objectives.
	DefaultTolerance = 1e-9

	// DefaultMaxRows caps m+n+1, the size of the inequality system.
	DefaultMaxRows = 24
)

const (
	panicBoundInvalid     = "bruteforce: WithBound requires a finite bound > 0"
	panicToleranceInvalid = "bruteforce: WithTolerance requires a finite tol >= 0"
	panicMaxRowsInvalid   = "bruteforce: WithMaxRows requires n > 0"
)

// Option configures Solve.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	bound   float64
	tol     float64
	maxRows int
	logger  *slog.Logger
}

// WithBound sets the bounding-row right-hand side. It must exceed the
// coordinate sum of every genuine vertex for Unbounded detection to hold.
func WithBound(bound float64) Option {
	if math.IsNaN(bound) || math.IsInf(bound, 0) || bound <= 0 {
		panic(panicBoundInvalid)
	}

	return func(o *Options) { o.bound = bound }
}

// WithTolerance sets the relative feasibility/comparison tolerance.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxRows caps the inequality count m+n+1; larger instances fail with
// ErrTooLarge.
func WithMaxRows(n int) Option {
	if n <= 0 {
		panic(panicMaxRowsInvalid)
	}

	return func(o *Options) { o.maxRows = n }
}

// WithLogger routes debug tracing to l; nil restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		bound:   DefaultBound,
		tol:     DefaultTolerance,
		maxRows: DefaultMaxRows,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
