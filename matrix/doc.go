// SPDX-License-Identifier: MIT

// Package matrix offers dense row-major storage and small linear-algebra
// kernels for the solvers in this module.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 matrix with bounds-checked At/Set,
//     aliasing row views for in-place kernels, and copy-based reshaping
//     (Induced to drop rows/columns, Widen to append zero columns).
//   - SolveLinear, a Gauss–Jordan solver for square systems given as an
//     augmented table; "no unique solution" is reported as ErrSingular.
//   - SnapZero helpers implementing the shared numeric policy: values within
//     a tolerance of zero are stored as exactly zero.
//   - Validators (ValidateRows, ValidateVecLen, ValidateFinite) reporting
//     package sentinels in a fixed priority order.
//
// Matrices here are meant for small, dense, test-sized systems where O(r·c)
// memory is irrelevant and determinism matters more than throughput.
package matrix
