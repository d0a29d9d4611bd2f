// SPDX-License-Identifier: MIT
package bruteforce_test

import (
	"fmt"

	"github.com/katalvlaran/lvlp/bruteforce"
)

// ExampleSolve enumerates the vertices of x ≤ 4, 2y ≤ 12, 3x + 2y ≤ 18.
func ExampleSolve() {
	sol, err := bruteforce.Solve(
		[][]float64{{1, 0}, {0, 2}, {3, 2}},
		[]float64{4, 12, 18},
		[]float64{3, 5},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%v x=(%.1f, %.1f) obj=%.1f\n", sol.Status, sol.X[0], sol.X[1], sol.Objective)

	// Output:
	// optimal x=(2.0, 6.0) obj=36.0
}
