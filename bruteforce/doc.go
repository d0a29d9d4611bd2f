// SPDX-License-Identifier: MIT

// Package bruteforce is an exhaustive vertex-enumeration LP solver used to
// cross-check package simplex on small instances.
//
// For maximize cᵀx subject to Ax ≤ b, x ≥ 0 with n variables, every vertex
// of the feasible region is the solution of some n of the inequalities taken
// as equalities. Solve enumerates all such subsets of
//
//   - the m rows of Ax ≤ b,
//   - the n sign rows −x_j ≤ 0,
//   - one bounding row Σx_j ≤ Bound (DefaultBound = 1e10),
//
// solves each with matrix.SolveLinear, keeps the solutions that satisfy every
// inequality, and returns the best. The bounding row makes the region a
// polytope; when its best vertex lies on the bounding row and strictly beats
// every other vertex, the original problem is reported Unbounded.
//
// Enumeration uses an explicit index stack, so memory is O(n) regardless of
// the number of subsets. Time is exponential: C(m+n+1, n) linear solves.
// WithMaxRows refuses instances that would take unreasonably long.
package bruteforce
