// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvlp/matrix"
)

const gaussDelta = 1e-9

// TestSolveLinear_Table covers well-posed systems, including ones that need a row swap.
func TestSolveLinear_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		eqs  [][]float64
		want []float64
	}{
		{
			name: "identity 4x4",
			eqs: [][]float64{
				{1, 0, 0, 0, 1},
				{0, 1, 0, 0, 5},
				{0, 0, 1, 0, 4},
				{0, 0, 0, 1, 3},
			},
			want: []float64{1, 5, 4, 3},
		},
		{
			name: "two by two",
			eqs:  [][]float64{{1, 1, 3}, {2, 3, 7}},
			want: []float64{2, 1},
		},
		{
			name: "negative coefficients",
			eqs:  [][]float64{{5, -5, -1}, {-1, -2, -1}},
			want: []float64{0.2, 0.4},
		},
		{
			name: "zero on diagonal needs swap",
			eqs:  [][]float64{{0, 1, 2}, {1, 0, 3}},
			want: []float64{3, 2},
		},
		{
			name: "single equation",
			eqs:  [][]float64{{4, 2}},
			want: []float64{0.5},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.SolveLinear(tc.eqs)
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.InDeltaf(t, tc.want[i], got[i], gaussDelta, "x[%d]", i)
			}
		})
	}
}

// TestSolveLinear_Errors checks sentinel mapping for malformed or degenerate systems.
func TestSolveLinear_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		eqs     [][]float64
		wantErr error
	}{
		{"no equations", nil, matrix.ErrInvalidDimensions},
		{"parallel rows", [][]float64{{1, 1, 0}, {1, 1, 1}}, matrix.ErrSingular},
		{"dependent rows", [][]float64{{1, 2, 3}, {2, 4, 6}}, matrix.ErrSingular},
		{"zero column", [][]float64{{0, 1, 1}, {0, 2, 2}}, matrix.ErrSingular},
		{"short row", [][]float64{{1, 1}, {1, 2, 3}}, matrix.ErrDimensionMismatch},
		{"not augmented", [][]float64{{1, 0}, {0, 1}}, matrix.ErrDimensionMismatch},
		{"nan coefficient", [][]float64{{math.NaN(), 1, 1}, {1, 2, 3}}, matrix.ErrNaNInf},
		{"inf constant", [][]float64{{1, 1, math.Inf(1)}, {1, 2, 3}}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			x, err := matrix.SolveLinear(tc.eqs)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, x)
		})
	}
}

// TestSolveLinear_DoesNotMutateInput guards the copy-in contract.
func TestSolveLinear_DoesNotMutateInput(t *testing.T) {
	eqs := [][]float64{{0, 2, 4}, {3, 1, 5}}
	snapshot := [][]float64{{0, 2, 4}, {3, 1, 5}}

	_, err := matrix.SolveLinear(eqs)
	require.NoError(t, err)
	assert.Equal(t, snapshot, eqs)
}

// TestSolveLinear_Epsilon verifies that a larger epsilon turns a tiny pivot into ErrSingular.
func TestSolveLinear_Epsilon(t *testing.T) {
	eqs := [][]float64{{1e-8, 1}}

	x, err := matrix.SolveLinear(eqs)
	require.NoError(t, err)
	assert.InDelta(t, 1e8, x[0], 1e-3)

	_, err = matrix.SolveLinear(eqs, matrix.WithEpsilon(1e-6))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolveLinear_Residual checks A·x ≈ b on diagonally dominant random systems.
func TestSolveLinear_Residual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "n")
		eqs := make([][]float64, n)
		for i := 0; i < n; i++ {
			eqs[i] = make([]float64, n+1)
			var off float64
			for j := 0; j <= n; j++ {
				if j == i {
					continue
				}
				eqs[i][j] = rapid.Float64Range(-10, 10).Draw(t, "a")
				if j < n {
					off += math.Abs(eqs[i][j])
				}
			}
			// strict diagonal dominance keeps the system non-singular
			eqs[i][i] = off + rapid.Float64Range(1, 10).Draw(t, "diag")
		}

		x, err := matrix.SolveLinear(eqs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < n; i++ {
			var lhs float64
			for j := 0; j < n; j++ {
				lhs += eqs[i][j] * x[j]
			}
			if math.Abs(lhs-eqs[i][n]) > 1e-7 {
				t.Fatalf("row %d residual %g", i, lhs-eqs[i][n])
			}
		}
	})
}
