// SPDX-License-Identifier: MIT

package matrix

import "math"

// SnapZero returns exactly 0 when |v| < tol, otherwise v unchanged.
// Used after in-place eliminations so sign noise like -3e-17 cannot flip a
// later comparison against zero. A negative tol disables snapping.
func SnapZero(v, tol float64) float64 {
	if math.Abs(v) < tol {
		return 0
	}

	return v
}

// SnapZeroInPlace applies SnapZero to every element of x.
// Complexity: O(len(x)).
func SnapZeroInPlace(x []float64, tol float64) {
	for i, v := range x {
		if math.Abs(v) < tol {
			x[i] = 0
		}
	}
}
