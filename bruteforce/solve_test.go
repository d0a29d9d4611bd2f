// SPDX-License-Identifier: MIT
package bruteforce_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlp/bruteforce"
	"github.com/katalvlaran/lvlp/simplex"
)

// TestSolve_Scenarios covers the three outcome categories on small instances.
func TestSolve_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a       [][]float64
		b, c    []float64
		status  simplex.Status
		wantX   []float64
		wantObj float64
	}{
		{
			name: "mixed signs", a: [][]float64{{-1, -1}, {1, 0}, {0, 1}},
			b: []float64{-1, 2, 2}, c: []float64{-1, 2},
			status: simplex.Optimal, wantX: []float64{0, 2}, wantObj: 4,
		},
		{
			name: "infeasible", a: [][]float64{{1, 1}, {-1, -1}},
			b: []float64{-1, -2}, c: []float64{1, 1},
			status: simplex.Infeasible,
		},
		{
			name: "free column", a: [][]float64{{0, 0, 1}},
			b: []float64{3}, c: []float64{1, 1, 1},
			status: simplex.Unbounded,
		},
		{
			name: "single variable", a: [][]float64{{-6}},
			b: []float64{-3}, c: []float64{-4},
			status: simplex.Optimal, wantX: []float64{0.5}, wantObj: -2,
		},
		{
			name: "half line", a: [][]float64{{-0.16}},
			b: []float64{-2.14}, c: []float64{2.56},
			status: simplex.Unbounded,
		},
		{
			name: "textbook", a: [][]float64{{1, 1, 3}, {2, 2, 5}, {4, 1, 2}},
			b: []float64{30, 24, 36}, c: []float64{3, 1, 2},
			status: simplex.Optimal, wantX: []float64{8, 4, 0}, wantObj: 28,
		},
		{
			name: "anti-parallel pair", a: [][]float64{{1, -1}, {-1, 1}},
			b: []float64{-1, 0}, c: []float64{1, 1},
			status: simplex.Infeasible,
		},
		{
			name: "anti-parallel pair with a free column", a: [][]float64{{-0.1, 0, 0.1}, {0.3, 0, -0.3}},
			b: []float64{0, -0.1}, c: []float64{0, 0, 0.1},
			status: simplex.Infeasible,
		},
		{
			name: "ray along a tight pair", a: [][]float64{{0.3, -0.3}, {-0.1, 0.1}},
			b: []float64{0, 0}, c: []float64{1, 1},
			status: simplex.Unbounded,
		},
		{
			name: "unbounded region, bounded objective", a: [][]float64{{1, -1}},
			b: []float64{1}, c: []float64{-1, -1},
			status: simplex.Optimal, wantX: []float64{0, 0}, wantObj: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sol, err := bruteforce.Solve(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			require.Equal(t, tc.status, sol.Status)
			assert.Zero(t, sol.Pivots)
			if tc.status != simplex.Optimal {
				assert.Nil(t, sol.X)
				return
			}
			assert.InDeltaSlice(t, tc.wantX, sol.X, 1e-9)
			assert.InDelta(t, tc.wantObj, sol.Objective, 1e-9)
		})
	}
}

// TestSolve_Errors checks validation and the size guard.
func TestSolve_Errors(t *testing.T) {
	_, err := bruteforce.Solve(nil, nil, []float64{1})
	require.ErrorIs(t, err, simplex.ErrInvalidInput)

	_, err = bruteforce.Solve([][]float64{{1, 2}}, []float64{1}, []float64{1})
	require.ErrorIs(t, err, simplex.ErrInvalidInput)

	_, err = bruteforce.Solve([][]float64{{math.NaN()}}, []float64{1}, []float64{1})
	require.ErrorIs(t, err, simplex.ErrInvalidInput)

	_, err = bruteforce.Solve([][]float64{{1, 1}}, []float64{1}, []float64{1, 1}, bruteforce.WithMaxRows(3))
	require.ErrorIs(t, err, bruteforce.ErrTooLarge)
}

// TestSolve_VisitsEverySubset checks the stack walk against C(m+n+1, n).
func TestSolve_VisitsEverySubset(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// m = 2, n = 2: C(5, 2) = 10
	_, err := bruteforce.Solve([][]float64{{1, 0}, {0, 1}}, []float64{1, 1}, []float64{1, 1},
		bruteforce.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "subsets=10")

	// m = 3, n = 3: C(7, 3) = 35
	buf.Reset()
	_, err = bruteforce.Solve([][]float64{{1, 1, 3}, {2, 2, 5}, {4, 1, 2}}, []float64{30, 24, 36},
		[]float64{3, 1, 2}, bruteforce.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "subsets=35")
}

// TestSolve_SmallBound shows that the bound must exceed every genuine vertex.
func TestSolve_SmallBound(t *testing.T) {
	// optimum x = 10 lies beyond Σx ≤ 5, so the bounding row wins
	sol, err := bruteforce.Solve([][]float64{{1}}, []float64{10}, []float64{1}, bruteforce.WithBound(5))
	require.NoError(t, err)
	assert.Equal(t, simplex.Unbounded, sol.Status)

	sol, err = bruteforce.Solve([][]float64{{1}}, []float64{10}, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, simplex.Optimal, sol.Status)
	assert.InDelta(t, 10.0, sol.Objective, 1e-9)
}

func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, "bruteforce: WithBound requires a finite bound > 0",
		func() { bruteforce.WithBound(0) })
	require.PanicsWithValue(t, "bruteforce: WithTolerance requires a finite tol >= 0",
		func() { bruteforce.WithTolerance(math.Inf(1)) })
	require.PanicsWithValue(t, "bruteforce: WithMaxRows requires n > 0",
		func() { bruteforce.WithMaxRows(-3) })
	require.NotPanics(t, func() { bruteforce.WithLogger(nil) })
}
