// SPDX-License-Identifier: MIT

package simplex

// Status is the terminal outcome of a solve.
type Status int

const (
	// Optimal means an optimal vertex was found.
	Optimal Status = iota
	// Unbounded means the objective has no finite maximum.
	Unbounded
	// Infeasible means the constraint set is empty.
	Infeasible
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solution is the result of Solve.
//
// X and Objective are meaningful only when Status == Optimal; otherwise X is
// nil and Objective is 0. Pivots counts every pivot performed across both
// phases, including the auxiliary entry and exit pivots.
type Solution struct {
	Status    Status
	X         []float64
	Objective float64
	Pivots    int
}
