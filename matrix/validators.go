// SPDX-License-Identifier: MIT

// Package matrix - centralized validators.
//
// All shape/value checks used by constructors and kernels live here so every
// caller reports the same sentinels in the same priority order:
// shape -> dimension mismatch -> NaN/Inf.
package matrix

import "fmt"

// validatorErrorf tags a sentinel with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite ensures every element of x is finite.
// The first offending index is reported.
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateRows checks that rows is a non-empty, rectangular table of finite values.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when any row length differs from the first.
//   - ErrNaNInf on the first non-finite entry.
//
// Complexity: O(r*c).
func ValidateRows(rows [][]float64) error {
	if err := validateRows(rows, true); err != nil {
		return validatorErrorf("ValidateRows", err)
	}

	return nil
}

// validateRows is the policy-aware kernel behind ValidateRows and NewDenseFromRows.
func validateRows(rows [][]float64, finite bool) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}
	if !finite {
		return nil
	}
	for i, row := range rows {
		for j, v := range row {
			if isNonFinite(v) {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}
