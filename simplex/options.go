// SPDX-License-Identifier: MIT

// Package simplex: functional configuration.
// Options are resolved once per Solve against the documented defaults;
// constructors panic on nonsensical parameters (programmer error).
package simplex

import (
	"log/slog"
	"math"
)

const (
	// DefaultZeroTolerance is the magnitude below which tableau values are
	// stored as exactly zero, and above which the auxiliary optimum counts as
	// nonzero.
	DefaultZeroTolerance = 1e-10

	// DefaultMaxIterations bounds the pivots of each phase.
	DefaultMaxIterations = 10000
)

// Panic messages (stable strings; tests compare against them).
const (
	panicZeroToleranceInvalid = "simplex: WithZeroTolerance requires a finite tol >= 0"
	panicMaxIterationsInvalid = "simplex: WithMaxIterations requires n > 0"
)

// Option mutates Options during resolution; last writer wins.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	zeroTol float64
	maxIter int
	logger  *slog.Logger
}

// ZeroTolerance reports the resolved snapping tolerance.
func (o Options) ZeroTolerance() float64 { return o.zeroTol }

// MaxIterations reports the resolved per-phase pivot bound.
func (o Options) MaxIterations() int { return o.maxIter }

// Logger reports the resolved logger (never nil).
func (o Options) Logger() *slog.Logger { return o.logger }

// WithZeroTolerance sets the zero-snapping tolerance.
// Panics when tol is negative, NaN or infinite.
func WithZeroTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicZeroToleranceInvalid)
	}

	return func(o *Options) { o.zeroTol = tol }
}

// WithMaxIterations sets the per-phase pivot bound.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithLogger routes debug tracing (initial form, phase transitions, pivots)
// to l. A nil logger restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// NewOptions resolves setters against the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func gatherOptions(user ...Option) Options {
	o := Options{
		zeroTol: DefaultZeroTolerance,
		maxIter: DefaultMaxIterations,
		logger:  discardLogger(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
