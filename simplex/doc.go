// SPDX-License-Identifier: MIT

// Package simplex implements a dense two-phase Simplex solver for linear
// programs in the form
//
//	maximize cᵀx  subject to  Ax ≤ b, x ≥ 0.
//
// Solve returns exactly one of three outcomes:
//
//   - Optimal: X holds an optimal vertex and Objective = cᵀX.
//   - Unbounded: the objective can grow without limit over the feasible region.
//   - Infeasible: no x satisfies the constraints.
//
// Algorithm overview:
//
//   - Slack form: one slack column per constraint, so the initial basis is the
//     slack identity block and every tableau row reads "basic + Σ a·nonbasic = b".
//   - Auxiliary phase: when some b is negative, an auxiliary variable x₀ is
//     added to every row and −x₀ is maximized. A nonzero optimum proves
//     infeasibility; otherwise x₀ is pivoted out, dropped, and the original
//     objective is re-expressed in terms of the nonbasic variables.
//   - Main phase: Dantzig's rule with the lowest index (first column with a
//     positive objective coefficient), ratio test with first-row tie-breaking,
//     Gauss-Jordan pivot with fused multiply-add elimination.
//
// Numeric policy:
//
//   - Every value written by a pivot is snapped to exactly zero when its
//     magnitude is below the zero tolerance (DefaultZeroTolerance, 1e-10).
//   - There is no anti-cycling rule. Each phase is bounded by
//     DefaultMaxIterations pivots; exceeding the bound returns
//     ErrNumericDegenerate rather than looping forever.
//
// Concurrency:
//
//   - Solve is synchronous and owns its tableau; independent calls may run in
//     parallel goroutines. A single Tableau must not be shared.
package simplex
