// SPDX-License-Identifier: MIT

package simplex

import "errors"

// Sentinel errors. Optimal, Unbounded and Infeasible are Solution statuses,
// never errors.
var (
	// ErrInvalidInput reports structurally malformed problems: no constraints,
	// no variables, ragged rows, vector lengths that disagree with A, or
	// non-finite numbers.
	ErrInvalidInput = errors.New("simplex: invalid input")

	// ErrNumericDegenerate reports a solve that could not reach a terminal
	// status: the pivot bound was exceeded (cycling), or the auxiliary phase
	// ended in a state that exact arithmetic cannot produce.
	ErrNumericDegenerate = errors.New("simplex: numeric degeneracy")
)
