// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlp/matrix"
)

const (
	opSolve    = "simplex.Solve"
	opValidate = "simplex.ValidateProblem"
)

// Solve maximizes cᵀx subject to Ax ≤ b, x ≥ 0.
//
// Implementation:
//   - Stage 1: validate shapes and finiteness (ErrInvalidInput).
//   - Stage 2: build the slack form; run the auxiliary phase when some b < 0.
//   - Stage 3: run the main phase on c.
//   - Stage 4: read x from the basis; a negative basic value → Infeasible.
//
// Inputs are never mutated. The returned X has len(c) entries when
// Status == Optimal and is nil otherwise.
//
// Errors:
//   - ErrInvalidInput: len(a) == 0, len(c) == 0, ragged rows, len(b) != len(a),
//     len(c) != len(a[0]), or any NaN/±Inf.
//   - ErrNumericDegenerate: pivot bound exceeded or impossible auxiliary state.
//
// Complexity:
//   - Space O(m*(n+m)); time O(m*(n+m)) per pivot, pivots unbounded in theory
//     (capped by WithMaxIterations per phase).
func Solve(a [][]float64, b, c []float64, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)
	dense, err := ValidateProblem(a, b, c)
	if err != nil {
		return Solution{}, err
	}

	form, err := buildInitialForm(dense, b, c, o.zeroTol)
	if err != nil {
		return Solution{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	var pivots int
	if af, ok := form.(auxiliaryForm); ok {
		status, n, err := af.auxiliary(c, o)
		pivots += n
		if err != nil {
			return Solution{Pivots: pivots}, fmt.Errorf("%s: %w", opSolve, err)
		}
		if status != Optimal {
			return Solution{Status: status, Pivots: pivots}, nil
		}
	} else {
		o.logger.Debug("simplex: slack basis feasible", "rows", len(a), "cols", len(c))
	}

	t := form.tableau()
	status, n, err := t.run(phaseMain, o)
	pivots += n
	if err != nil {
		return Solution{Pivots: pivots}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if status != Optimal {
		return Solution{Status: status, Pivots: pivots}, nil
	}

	return t.solution(c, pivots), nil
}

// solution extracts the optimal vertex of an optimal tableau.
func (t *Tableau) solution(c []float64, pivots int) Solution {
	x, ok := t.values(len(c))
	if !ok {
		return Solution{Status: Infeasible, Pivots: pivots}
	}

	obj := floats.Dot(c, x)
	if obj == 0 {
		obj = 0 // normalize -0
	}

	return Solution{
		Status:    Optimal,
		X:         x,
		Objective: obj,
		Pivots:    pivots,
	}
}

// ValidateProblem checks the shape and finiteness of an LP instance and
// returns A as a Dense copy. Every failure wraps ErrInvalidInput together
// with the underlying matrix sentinel.
func ValidateProblem(a [][]float64, b, c []float64) (*matrix.Dense, error) {
	if len(a) == 0 {
		return nil, fmt.Errorf("%s: no constraints: %w", opValidate, ErrInvalidInput)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("%s: no variables: %w", opValidate, ErrInvalidInput)
	}
	dense, err := matrix.NewDenseFromRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: a: %w: %w", opValidate, ErrInvalidInput, err)
	}
	m, n := dense.Shape()
	if err = matrix.ValidateVecLen(b, m); err != nil {
		return nil, fmt.Errorf("%s: b: %w: %w", opValidate, ErrInvalidInput, err)
	}
	if err = matrix.ValidateVecLen(c, n); err != nil {
		return nil, fmt.Errorf("%s: c: %w: %w", opValidate, ErrInvalidInput, err)
	}
	if err = matrix.ValidateFinite(b); err != nil {
		return nil, fmt.Errorf("%s: b: %w: %w", opValidate, ErrInvalidInput, err)
	}
	if err = matrix.ValidateFinite(c); err != nil {
		return nil, fmt.Errorf("%s: c: %w: %w", opValidate, ErrInvalidInput, err)
	}

	return dense, nil
}
