// SPDX-License-Identifier: MIT

// Package simplex - phase loops.
//
// run is the shared main loop; auxiliary wraps it with the x₀ column,
// the infeasibility test, and the transition back to the original objective.
package simplex

import (
	"fmt"
	"log/slog"
	"math"
)

const (
	phaseAuxiliary = "auxiliary"
	phaseMain      = "main"
)

// run pivots on the active objective until a terminal status.
// Returns the status and the number of pivots performed.
//
// Implementation:
//   - Stage 1: entering = first positive C; none → Optimal.
//   - Stage 2: leaving = ratio test; none → Unbounded.
//   - Stage 3: B[leaving] < 0 → Infeasible.
//   - Stage 4: pivot; fail with ErrNumericDegenerate past o.maxIter pivots.
//
// Re-running on an optimal tableau performs zero pivots.
func (t *Tableau) run(phase string, o Options) (Status, int, error) {
	var pivots, col, row int
	for {
		col = t.enteringColumn()
		if col < 0 {
			return Optimal, pivots, nil
		}
		row = t.leavingRow(col)
		if row < 0 {
			o.logger.Debug("simplex: unbounded column", "phase", phase, "col", col)
			return Unbounded, pivots, nil
		}
		if t.B[row] < 0 {
			o.logger.Debug("simplex: negative leaving row", "phase", phase, "row", row)
			return Infeasible, pivots, nil
		}
		if pivots >= o.maxIter {
			return 0, pivots, fmt.Errorf("simplex: %s phase exceeded %d pivots: %w",
				phase, o.maxIter, ErrNumericDegenerate)
		}
		o.logger.Debug("simplex: pivot", "phase", phase, "row", row, "col", col)
		t.Pivot(row, col)
		pivots++
		o.logger.Debug("simplex: tableau", "phase", phase, slog.Any("a", t.A), slog.Any("b", t.B))
	}
}

// auxiliary repairs an infeasible slack basis.
// On success the tableau is feasible, x₀ is gone, and C holds obj
// re-expressed in the new nonbasic variables; status is then Optimal and
// means "continue with the main phase".
//
// Implementation:
//   - Stage 1: widen by x₀ with −1 in every row; C = −x₀; pivot x₀ into the
//     most infeasible row.
//   - Stage 2: run; value of x₀ above tolerance → Infeasible.
//   - Stage 3: if x₀ is still basic (at 0), pivot it out on the first
//     non-auxiliary column with a nonzero entry in its row.
//   - Stage 4: drop the x₀ column and re-express obj.
//
// Errors:
//   - ErrNumericDegenerate when run fails, reports Unbounded, or x₀ cannot
//     be pivoted out.
func (f auxiliaryForm) auxiliary(obj []float64, o Options) (Status, int, error) {
	t := f.tab
	aux := t.Cols()
	widened, err := t.A.Widen(1)
	if err != nil {
		return 0, 0, err
	}
	for r := 0; r < widened.Rows(); r++ {
		if err = widened.Set(r, aux, -1); err != nil {
			return 0, 0, err
		}
	}
	t.setA(widened)
	t.C = make([]float64, aux+1)
	t.C[aux] = -1

	o.logger.Debug("simplex: auxiliary phase", "row", f.infeasibleRow, "aux_col", aux)
	t.Pivot(f.infeasibleRow, aux)
	pivots := 1

	status, n, err := t.run(phaseAuxiliary, o)
	pivots += n
	if err != nil {
		return 0, pivots, err
	}
	switch status {
	case Infeasible:
		return Infeasible, pivots, nil
	case Unbounded:
		return 0, pivots, fmt.Errorf("simplex: auxiliary objective unbounded: %w", ErrNumericDegenerate)
	}

	auxRow := t.basicRow(aux)
	if auxRow >= 0 {
		if value := t.B[auxRow]; math.Abs(value) > t.tol {
			o.logger.Debug("simplex: infeasible", "aux_value", value)
			return Infeasible, pivots, nil
		}
		col := -1
		for j, v := range t.rows[auxRow][:aux] {
			if math.Abs(v) > t.tol {
				col = j
				break
			}
		}
		if col < 0 {
			return 0, pivots, fmt.Errorf("simplex: auxiliary variable stuck in row %d: %w",
				auxRow, ErrNumericDegenerate)
		}
		o.logger.Debug("simplex: pivot auxiliary out", "row", auxRow, "col", col)
		t.Pivot(auxRow, col)
		pivots++
	}

	keep := make([]int, aux)
	for j := range keep {
		keep[j] = j
	}
	all := make([]int, t.Rows())
	for r := range all {
		all[r] = r
	}
	dropped, err := t.A.Induced(all, keep)
	if err != nil {
		return 0, pivots, err
	}
	t.setA(dropped)
	t.reexpress(obj)
	o.logger.Debug("simplex: auxiliary phase done", "pivots", pivots, slog.Any("basis", t.Basis))

	return Optimal, pivots, nil
}
