// SPDX-License-Identifier: MIT

// Package lpgen generates small random linear programs for property tests.
//
// Coefficients are drawn on a 0.1 grid, which keeps determinants of the
// tiny systems either exactly zero or comfortably away from it, so solvers
// can be compared without chasing conditioning noise.
package lpgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"pgregory.net/rapid"
)

// Problem is one instance of: maximize cᵀx subject to Ax ≤ b, x ≥ 0.
type Problem struct {
	A [][]float64
	B []float64
	C []float64
}

// Config bounds the generated instances. Value ranges are in tenths:
// MinA = -100 means -10.0.
type Config struct {
	MaxRows, MaxCols int
	MinA, MaxA       int
	MinB, MaxB       int
	MinC, MaxC       int
}

// DefaultConfig returns up to 3×3 instances with entries in [-10, 10].
func DefaultConfig() Config {
	return Config{
		MaxRows: 3, MaxCols: 3,
		MinA: -100, MaxA: 100,
		MinB: -100, MaxB: 100,
		MinC: -100, MaxC: 100,
	}
}

// ScaledConfig returns instances up to 20×12 with A and c in [-100, 100] and
// b in [-1e6, 1e6], the ranges of the original randomized stress runs.
func ScaledConfig() Config {
	return Config{
		MaxRows: 20, MaxCols: 12,
		MinA: -1000, MaxA: 1000,
		MinB: -10_000_000, MaxB: 10_000_000,
		MinC: -1000, MaxC: 1000,
	}
}

// Gen returns a rapid generator of problems under cfg.
// The objective is never identically zero.
func Gen(cfg Config) *rapid.Generator[Problem] {
	return rapid.Custom(func(t *rapid.T) Problem {
		m := rapid.IntRange(1, cfg.MaxRows).Draw(t, "m")
		n := rapid.IntRange(1, cfg.MaxCols).Draw(t, "n")

		p := Problem{A: make([][]float64, m)}
		for i := range p.A {
			p.A[i] = tenths(t, rapid.IntRange(cfg.MinA, cfg.MaxA), n, "a")
		}
		p.B = tenths(t, rapid.IntRange(cfg.MinB, cfg.MaxB), m, "b")
		p.C = rapid.Custom(func(t *rapid.T) []float64 {
			return tenths(t, rapid.IntRange(cfg.MinC, cfg.MaxC), n, "c")
		}).Filter(func(c []float64) bool {
			return floats.Norm(c, 1) > 0
		}).Draw(t, "c")

		return p
	})
}

func tenths(t *rapid.T, g *rapid.Generator[int], n int, label string) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(g.Draw(t, label)) / 10
	}

	return out
}

// CheckFeasible reports the first violated constraint of x, if any:
// x[j] ≥ -signTol, and Σ A[i][j]·x[j] ≤ B[i] within rowTol relative to
// 1 + |B[i]| + Σ|A[i][j]·x[j]|.
func CheckFeasible(p Problem, x []float64, rowTol, signTol float64) error {
	if len(x) != len(p.C) {
		return fmt.Errorf("lpgen: x has %d entries, want %d", len(x), len(p.C))
	}
	for j, v := range x {
		if v < -signTol {
			return fmt.Errorf("lpgen: x[%d] = %g is negative", j, v)
		}
	}
	prod := make([]float64, len(x))
	for i, row := range p.A {
		floats.MulTo(prod, row, x)
		lhs := floats.Sum(prod)
		scale := 1 + math.Abs(p.B[i]) + floats.Norm(prod, 1)
		if lhs > p.B[i]+rowTol*scale {
			return fmt.Errorf("lpgen: row %d: %g > %g", i, lhs, p.B[i])
		}
	}

	return nil
}
