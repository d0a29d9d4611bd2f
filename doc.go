// Package lvlp is a small, from-scratch toolkit for dense linear programming:
// maximize cᵀx subject to Ax ≤ b, x ≥ 0.
//
// 🚀 What is lvlp?
//
//	A pure-Go library and CLI that brings together:
//		• Simplex: a dense two-phase simplex solver (auxiliary phase for
//		  negative right-hand sides, Dantzig entering rule, FMA pivots)
//		• Brute force: exhaustive vertex enumeration, used as a reference
//		• Matrix: row-major Dense storage and a Gauss–Jordan equation solver
//		• Problem files: YAML problems in, YAML reports out
//
// ✨ Why choose lvlp?
//
//   - Three explicit outcomes: Optimal, Unbounded and Infeasible are values,
//     never errors or panics
//   - Deterministic: fixed loop orders and first-index tie-breaking
//   - Cross-checked: every solver is tested against an independent one
//
// Packages:
//
//	simplex/       Solve, Tableau and its Pivot engine
//	bruteforce/    vertex-enumeration reference solver
//	matrix/        Dense storage, SolveLinear, zero-snapping helpers
//	lpfile/        YAML problem/report encoding
//	cmd/lpsolve/   command-line front end (solve, check)
//
// Quick example:
//
//	sol, err := simplex.Solve(
//		[][]float64{{1, 0}, {0, 2}, {3, 2}}, // A
//		[]float64{4, 12, 18},                // b
//		[]float64{3, 5},                     // c
//	)
//	// sol.Status == simplex.Optimal, sol.X == [2 6], sol.Objective == 36
//
//	go install github.com/katalvlaran/lvlp/cmd/lpsolve@latest
package lvlp
