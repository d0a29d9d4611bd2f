// SPDX-License-Identifier: MIT

// Package simplex - the tableau and its pivot engine.
//
// Purpose:
//   - Bundle the coefficient block A, right-hand side B, active objective C
//     and the row→basic-column map so they can only change together.
//   - Perform one Gauss-Jordan pivot in place (Tableau.Pivot).
//
// Contract:
//   - Every row's basic column is 1 in that row and 0 in every other row.
//   - Pivot never allocates; it works on cached row views of A.
package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlp/matrix"
)

const opNewTableau = "simplex.NewTableau"

// Tableau is a slack-form tableau: rows are constraints, columns are
// variables (decision, then slack, then at most one auxiliary).
type Tableau struct {
	A     *matrix.Dense // coefficients, rows × cols
	B     []float64     // right-hand side, len == rows
	C     []float64     // active objective, len == cols
	Basis []int         // Basis[row] is the basic column of that row

	rows [][]float64 // aliasing views of A; refreshed by setA
	tol  float64
}

// NewTableau assembles a tableau from caller-owned data (copied).
// The basis must name distinct, in-range columns, and each basic column must
// be 1 in its own row and 0 in every other row.
//
// Errors:
//   - ErrInvalidInput wrapped with detail for any shape, range, finiteness
//     or basis violation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewTableau(a [][]float64, b, c []float64, basis []int, opts ...Option) (*Tableau, error) {
	o := gatherOptions(opts...)
	dense, err := matrix.NewDenseFromRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNewTableau, ErrInvalidInput, err)
	}
	rows, cols := dense.Shape()
	if err = matrix.ValidateVecLen(b, rows); err != nil {
		return nil, fmt.Errorf("%s: b: %w: %w", opNewTableau, ErrInvalidInput, err)
	}
	if err = matrix.ValidateVecLen(c, cols); err != nil {
		return nil, fmt.Errorf("%s: c: %w: %w", opNewTableau, ErrInvalidInput, err)
	}
	if err = matrix.ValidateFinite(b); err != nil {
		return nil, fmt.Errorf("%s: b: %w: %w", opNewTableau, ErrInvalidInput, err)
	}
	if err = matrix.ValidateFinite(c); err != nil {
		return nil, fmt.Errorf("%s: c: %w: %w", opNewTableau, ErrInvalidInput, err)
	}
	if len(basis) != rows {
		return nil, fmt.Errorf("%s: basis has %d entries, want %d: %w", opNewTableau, len(basis), rows, ErrInvalidInput)
	}
	seen := make([]bool, cols)
	for row, col := range basis {
		if col < 0 || col >= cols || seen[col] {
			return nil, fmt.Errorf("%s: basis[%d]=%d: %w", opNewTableau, row, col, ErrInvalidInput)
		}
		seen[col] = true
	}
	var v float64
	for row, col := range basis {
		for r := 0; r < rows; r++ {
			if v, err = dense.At(r, col); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", opNewTableau, ErrInvalidInput, err)
			}
			if (r == row && v != 1) || (r != row && v != 0) {
				return nil, fmt.Errorf("%s: basic column %d is not a unit column at row %d: %w",
					opNewTableau, col, r, ErrInvalidInput)
			}
		}
	}

	t := &Tableau{
		B:     append([]float64(nil), b...),
		C:     append([]float64(nil), c...),
		Basis: append([]int(nil), basis...),
		tol:   o.zeroTol,
	}
	t.setA(dense)

	return t, nil
}

// setA installs a new coefficient block and refreshes the row views.
func (t *Tableau) setA(a *matrix.Dense) {
	t.A = a
	t.rows = a.RowViews()
}

// Rows returns the number of constraint rows.
func (t *Tableau) Rows() int { return len(t.rows) }

// Cols returns the number of variable columns.
func (t *Tableau) Cols() int { return t.A.Cols() }

// Pivot makes column col basic in row row.
// Implementation:
//   - Stage 1: scale row and B[row] so A[row][col] == 1.
//   - Stage 2: eliminate col from every other row and from B with FMA;
//     A[r][col] is then written as exactly 0.
//   - Stage 3: eliminate col from C the same way; C[col] = 0.
//   - Stage 4: Basis[row] = col.
//
// Every written value with |v| < tolerance is stored as exactly 0.
// Preconditions (not checked): indices in range and A[row][col] != 0.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (t *Tableau) Pivot(row, col int) {
	pr := t.rows[row]
	k := pr[col]

	var j int
	for j = range pr {
		pr[j] = matrix.SnapZero(pr[j]/k, t.tol)
	}
	pr[col] = 1
	t.B[row] = matrix.SnapZero(t.B[row]/k, t.tol)

	var f float64
	for r, rr := range t.rows {
		if r == row {
			continue
		}
		f = rr[col]
		if f == 0 {
			continue
		}
		for j = range rr {
			rr[j] = matrix.SnapZero(math.FMA(-f, pr[j], rr[j]), t.tol)
		}
		rr[col] = 0
		t.B[r] = matrix.SnapZero(math.FMA(-f, t.B[row], t.B[r]), t.tol)
	}

	if f = t.C[col]; f != 0 {
		for j = range t.C {
			t.C[j] = matrix.SnapZero(math.FMA(-f, pr[j], t.C[j]), t.tol)
		}
		t.C[col] = 0
	}

	t.Basis[row] = col
}

// basicRow returns the row whose basic column is col, or -1.
func (t *Tableau) basicRow(col int) int {
	for r, bc := range t.Basis {
		if bc == col {
			return r
		}
	}

	return -1
}

// enteringColumn returns the first column with a positive objective
// coefficient, or -1 at optimality.
func (t *Tableau) enteringColumn() int {
	for j, v := range t.C {
		if v > 0 {
			return j
		}
	}

	return -1
}

// leavingRow runs the ratio test on column col: among rows with
// A[r][col] > 0 it minimizes B[r]/A[r][col], keeping the first row on ties.
// Returns -1 when no row bounds the column.
func (t *Tableau) leavingRow(col int) int {
	best := -1
	var bestRatio, ratio float64
	for r, rr := range t.rows {
		if rr[col] <= 0 {
			continue
		}
		ratio = t.B[r] / rr[col]
		if best < 0 || ratio < bestRatio {
			best, bestRatio = r, ratio
		}
	}

	return best
}

// reexpress installs obj (padded with zeros to the width of A) as the active
// objective and eliminates every basic column from it.
// C may still hold a wider objective here; only A knows the current width.
func (t *Tableau) reexpress(obj []float64) {
	c := make([]float64, t.Cols())
	copy(c, obj)

	var k float64
	for r, bc := range t.Basis {
		k = c[bc]
		if k == 0 {
			continue
		}
		for j, v := range t.rows[r] {
			c[j] = matrix.SnapZero(math.FMA(-k, v, c[j]), t.tol)
		}
		c[bc] = 0
	}
	t.C = c
}

// values returns the basic solution over the first n columns.
// ok is false when any basic value is negative.
func (t *Tableau) values(n int) (x []float64, ok bool) {
	x = make([]float64, n)
	for r, bc := range t.Basis {
		if t.B[r] < 0 {
			return nil, false
		}
		if bc < n {
			x[bc] = t.B[r]
		}
	}

	return x, true
}
