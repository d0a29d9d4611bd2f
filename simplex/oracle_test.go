// SPDX-License-Identifier: MIT
package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvlp/simplex"
)

// standardForm rewrites max cᵀx, Ax ≤ b, x ≥ 0 as gonum's
// min c'ᵀz, A'z = b, z ≥ 0 with A' = [A | I] and c' = [-c, 0].
func standardForm(a [][]float64, c []float64) (cStd []float64, aStd *mat.Dense) {
	m, n := len(a), len(c)
	aStd = mat.NewDense(m, n+m, nil)
	for i, row := range a {
		for j, v := range row {
			aStd.Set(i, j, v)
		}
		aStd.Set(i, n+i, 1)
	}
	cStd = make([]float64, n+m)
	for j, v := range c {
		cStd[j] = -v
	}

	return cStd, aStd
}

// TestSolve_MatchesGonum compares optimal objectives with gonum's
// independent revised-simplex implementation.
func TestSolve_MatchesGonum(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b, c []float64
	}{
		{"production plan", [][]float64{{1, 0}, {0, 2}, {3, 2}}, []float64{4, 12, 18}, []float64{3, 5}},
		{"three variables", [][]float64{{1, 1, 3}, {2, 2, 5}, {4, 1, 2}}, []float64{30, 24, 36}, []float64{3, 1, 2}},
		{"two cuts", [][]float64{{1, 2}, {3, 1}}, []float64{4, 6}, []float64{1, 1}},
		{"mixed signs", [][]float64{{-1, -1}, {1, 0}, {0, 1}}, []float64{-1, 2, 2}, []float64{-1, 2}},
		{"single variable", [][]float64{{-6}}, []float64{-3}, []float64{-4}},
		{"diet", [][]float64{{-2, -1}, {-1, -3}, {1, 1}}, []float64{-8, -9, 10}, []float64{-3, -2}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sol, err := simplex.Solve(tc.a, tc.b, tc.c)
			require.NoError(t, err)
			require.Equal(t, simplex.Optimal, sol.Status)

			cStd, aStd := standardForm(tc.a, tc.c)
			optF, _, err := lp.Simplex(cStd, aStd, tc.b, 0, nil)
			require.NoError(t, err)
			require.InDelta(t, -optF, sol.Objective, 1e-8)
		})
	}
}
