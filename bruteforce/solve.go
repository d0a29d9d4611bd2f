// SPDX-License-Identifier: MIT

package bruteforce

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/katalvlaran/lvlp/simplex"
)

const opSolve = "bruteforce.Solve"

// ErrTooLarge is returned when m+n+1 exceeds the configured row limit.
var ErrTooLarge = errors.New("bruteforce: problem too large")

// inequality is one row coef·x ≤ rhs.
type inequality struct {
	coef []float64
	rhs  float64
}

// vertex is a feasible basic solution found during enumeration.
type vertex struct {
	x     []float64
	obj   float64
	scale float64 // 1 + Σ|c_j·x_j|, the magnitude the objective was summed from
}

// enumeration is the outcome of one walk over every n-subset of rows.
type enumeration struct {
	finite   *vertex // best vertex off the bounding row
	bounded  *vertex // best vertex on the bounding row
	runnerUp *vertex // best vertex at a different point than finite
	subsets  int
}

// Solve maximizes cᵀx subject to Ax ≤ b, x ≥ 0 by vertex enumeration.
// The result uses simplex.Solution so both solvers can be compared directly;
// Pivots is always 0.
//
// Implementation:
//   - Stage 1: validate exactly as simplex.Solve does; enforce WithMaxRows.
//   - Stage 2: build the m + n + 1 inequalities (constraints, signs, bound).
//   - Stage 3: walk every n-subset with an index stack; solve, filter, score.
//   - Stage 4: classify: no vertex → Infeasible; bounding-row vertex strictly
//     better than every other → Unbounded; else Optimal.
//
// Errors:
//   - simplex.ErrInvalidInput (wrapped matrix sentinels) for malformed input.
//   - ErrTooLarge when m+n+1 > max rows.
//
// Complexity:
//   - Time O(C(m+n+1, n) · (n^3 + (m+n)·n)), Space O(n^2 + m·n).
func Solve(a [][]float64, b, c []float64, opts ...Option) (simplex.Solution, error) {
	o := gatherOptions(opts...)
	e, err := enumerate(a, b, c, o)
	if err != nil {
		return simplex.Solution{}, err
	}

	return e.classify(c, o.tol), nil
}

// enumerate validates the instance and walks every n-subset of the
// inequalities, keeping the best vertices seen.
func enumerate(a [][]float64, b, c []float64, o Options) (*enumeration, error) {
	if _, err := simplex.ValidateProblem(a, b, c); err != nil {
		return nil, err
	}
	m, n := len(a), len(c)
	total := m + n + 1
	if total > o.maxRows {
		return nil, fmt.Errorf("%s: %d inequalities, limit %d: %w",
			opSolve, total, o.maxRows, ErrTooLarge)
	}

	ineqs := buildSystem(a, b, n, o.bound)
	boundRow := total - 1

	eqs := make([][]float64, n)
	for i := range eqs {
		eqs[i] = make([]float64, n+1)
	}

	e := &enumeration{}
	// idx is the stack of chosen rows, strictly increasing from bottom to top.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for {
		e.subsets++
		for i, r := range idx {
			copy(eqs[i], ineqs[r].coef)
			eqs[i][n] = ineqs[r].rhs
		}
		x, err := matrix.SolveLinear(eqs)
		switch {
		case errors.Is(err, matrix.ErrSingular):
		case err != nil:
			return nil, fmt.Errorf("%s: %w", opSolve, err)
		case satisfies(ineqs, x, o.tol):
			// the bounding row can only be on top of the stack
			e.add(score(c, x), idx[n-1] == boundRow, o.tol)
		}

		// pop exhausted entries, advance the top, push its successors
		top := n - 1
		for top >= 0 && idx[top] == total-n+top {
			top--
		}
		if top < 0 {
			break
		}
		idx[top]++
		for j := top + 1; j < n; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	o.logger.Debug("bruteforce: enumerated", "subsets", e.subsets,
		"finite", e.finite != nil, "bounded", e.bounded != nil)

	return e, nil
}

// add records v. Degenerate subsets revisit the same point, so the runner-up
// only ever holds a point distinct from the current finite best.
func (e *enumeration) add(v *vertex, onBound bool, tol float64) {
	if onBound {
		if e.bounded == nil || v.obj > e.bounded.obj {
			e.bounded = v
		}
	}
	switch {
	case onBound:
		e.offer(v, tol)
	case e.finite == nil:
		e.finite = v
	case v.obj > e.finite.obj:
		if !samePoint(v, e.finite, tol) {
			e.offer(e.finite, tol)
		}
		e.finite = v
	case !samePoint(v, e.finite, tol):
		e.offer(v, tol)
	}
}

// offer makes v the runner-up when it beats the current one.
func (e *enumeration) offer(v *vertex, tol float64) {
	if e.finite != nil && samePoint(v, e.finite, tol) {
		return
	}
	if e.runnerUp == nil || v.obj > e.runnerUp.obj {
		e.runnerUp = v
	}
}

// classify turns the enumeration into a Solution.
func (e *enumeration) classify(c []float64, tol float64) simplex.Solution {
	switch {
	case e.finite == nil && e.bounded == nil:
		return simplex.Solution{Status: simplex.Infeasible}
	case e.bounded != nil && (e.finite == nil || e.bounded.obj > e.finite.obj+tol*e.bounded.scale):
		return simplex.Solution{Status: simplex.Unbounded}
	}

	x := append([]float64(nil), e.finite.x...)
	matrix.SnapZeroInPlace(x, tol)
	obj := floats.Dot(c, x)
	if obj == 0 {
		obj = 0 // normalize -0
	}

	return simplex.Solution{Status: simplex.Optimal, X: x, Objective: obj}
}

// buildSystem lays out the constraint rows, the sign rows and the bounding row.
func buildSystem(a [][]float64, b []float64, n int, bound float64) []inequality {
	ineqs := make([]inequality, 0, len(a)+n+1)
	for i, row := range a {
		ineqs = append(ineqs, inequality{coef: row, rhs: b[i]})
	}
	for j := 0; j < n; j++ {
		coef := make([]float64, n)
		coef[j] = -1
		ineqs = append(ineqs, inequality{coef: coef})
	}
	ones := make([]float64, n)
	floats.AddConst(1, ones)

	return append(ineqs, inequality{coef: ones, rhs: bound})
}

// roundoff bounds the residual SolveLinear leaves in a row, per unit of
// Σ|a_j·x_j|. It only matters far out on the bounding row, where x reaches
// the bound and a relative error of 1e-16 is an absolute error near 1e-6.
const roundoff = 64 * 0x1p-52

// satisfies checks every inequality. The slack allowed is tol relative to
// the right-hand side plus the arithmetic residual of the row; it never
// grows with the distance from the origin beyond that residual, so points on
// the bounding row that violate a real constraint are still rejected.
func satisfies(ineqs []inequality, x []float64, tol float64) bool {
	var lhs, mag float64
	for _, in := range ineqs {
		lhs, mag = 0, 0
		for j, v := range in.coef {
			lhs = math.FMA(v, x[j], lhs)
			mag += math.Abs(v * x[j])
		}
		if lhs > in.rhs+tol*(1+math.Abs(in.rhs))+roundoff*mag {
			return false
		}
	}

	return true
}

// samePoint reports whether two vertices are the same point up to tol.
func samePoint(u, v *vertex, tol float64) bool {
	return floats.EqualApprox(u.x, v.x, tol)
}

func score(c, x []float64) *vertex {
	v := &vertex{x: x, obj: floats.Dot(c, x), scale: 1}
	for j, cj := range c {
		v.scale += math.Abs(cj * x[j])
	}

	return v
}
