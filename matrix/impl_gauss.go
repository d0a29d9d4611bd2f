// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan solver for square linear systems.
//
// Purpose:
//   - Solve n equations in n unknowns given as an augmented table
//     (each row: n coefficients followed by the constant term).
//   - Report "no unique solution" (singular or inconsistent) as ErrSingular,
//     never as a panic or a NaN-filled vector.
//
// Determinism:
//   - Partial pivoting picks the largest |candidate| in the column; ties keep
//     the lowest row index. Loop orders are fixed (d→r→c).
package matrix

import (
	"fmt"
	"math"
)

const opSolveLinear = "SolveLinear"

// SolveLinear solves the square system described by eqs and returns x.
// Implementation:
//   - Stage 1: validate shape (n ≥ 1 rows of length n+1) and finiteness.
//   - Stage 2: copy eqs into a Dense work buffer (input is never mutated).
//   - Stage 3: for each column d, select the pivot row, normalize it, and
//     eliminate column d from every other row with fused multiply-add.
//   - Stage 4: read x from the constant column.
//
// Errors:
//   - ErrInvalidDimensions (no equations).
//   - ErrDimensionMismatch (row length != n+1).
//   - ErrNaNInf (non-finite coefficient or constant).
//   - ErrSingular (|best pivot| ≤ eps for some column).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func SolveLinear(eqs [][]float64, opts ...Option) ([]float64, error) {
	n := len(eqs)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opSolveLinear, ErrInvalidDimensions)
	}
	for i, row := range eqs {
		if len(row) != n+1 {
			return nil, fmt.Errorf("%s: equation %d has length %d, want %d: %w",
				opSolveLinear, i, len(row), n+1, ErrDimensionMismatch)
		}
	}
	o := gatherOptions(opts...)

	work, err := NewDenseFromRows(eqs, WithValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveLinear, err)
	}
	rows := work.RowViews()

	var (
		d, r, c, p int
		best, k, f float64
	)
	for d = 0; d < n; d++ {
		// Partial pivoting: largest magnitude in column d at or below the diagonal.
		p, best = d, math.Abs(rows[d][d])
		for r = d + 1; r < n; r++ {
			if v := math.Abs(rows[r][d]); v > best {
				p, best = r, v
			}
		}
		if best <= o.eps {
			return nil, fmt.Errorf("%s: column %d: %w", opSolveLinear, d, ErrSingular)
		}
		if p != d {
			rows[p], rows[d] = rows[d], rows[p]
		}

		// Normalize the pivot row; columns < d are already zero.
		k = rows[d][d]
		for c = d; c <= n; c++ {
			rows[d][c] /= k
		}
		rows[d][d] = 1

		for r = 0; r < n; r++ {
			if r == d {
				continue
			}
			f = rows[r][d]
			if f == 0 {
				continue
			}
			for c = d; c <= n; c++ {
				rows[r][c] = math.FMA(-f, rows[d][c], rows[r][c])
			}
			rows[r][d] = 0
		}
	}

	x := make([]float64, n)
	for r = 0; r < n; r++ {
		x[r] = rows[r][n]
	}

	return x, nil
}
