// SPDX-License-Identifier: MIT
package bruteforce

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvlp/internal/lpgen"
	"github.com/katalvlaran/lvlp/simplex"
)

// TestCrossCheck_Simplex compares both solvers on random small instances:
// statuses must agree, optimal objectives must match, and when the best
// vertex is strictly better than every other point the x vectors match too.
func TestCrossCheck_Simplex(t *testing.T) {
	gen := lpgen.Gen(lpgen.DefaultConfig())

	rapid.Check(t, func(t *rapid.T) {
		p := gen.Draw(t, "lp")

		o := gatherOptions()
		e, err := enumerate(p.A, p.B, p.C, o)
		if err != nil {
			t.Fatalf("bruteforce: %v", err)
		}
		want := e.classify(p.C, o.tol)
		got, err := simplex.Solve(p.A, p.B, p.C)
		if errors.Is(err, simplex.ErrNumericDegenerate) {
			t.Skip("simplex cycled")
		}
		if err != nil {
			t.Fatalf("simplex: %v", err)
		}

		if got.Status != want.Status {
			t.Fatalf("status: simplex %v, bruteforce %v", got.Status, want.Status)
		}
		if got.Status != simplex.Optimal {
			return
		}
		if d := math.Abs(got.Objective - want.Objective); d > 1e-6*(1+math.Abs(want.Objective)) {
			t.Fatalf("objective: simplex %g, bruteforce %g", got.Objective, want.Objective)
		}
		if err := lpgen.CheckFeasible(p, got.X, 1e-6, 1e-9); err != nil {
			t.Fatalf("simplex x: %v", err)
		}
		if err := lpgen.CheckFeasible(p, want.X, 1e-6, 1e-9); err != nil {
			t.Fatalf("bruteforce x: %v", err)
		}

		margin := 1e-6 * (1 + math.Abs(want.Objective))
		if e.runnerUp != nil && e.finite.obj-e.runnerUp.obj <= margin {
			return
		}
		if !floats.EqualApprox(got.X, want.X, 1e-6) {
			t.Fatalf("unique optimum: simplex x %v, bruteforce x %v", got.X, want.X)
		}
	})
}

// TestEnumerate_RunnerUp checks the runner-up bookkeeping on hand-solved
// instances.
func TestEnumerate_RunnerUp(t *testing.T) {
	o := gatherOptions()

	// vertices of x ≤ 2, y ≤ 2 scored by x + 2y: (2,2)=6 then (0,2)=4
	e, err := enumerate([][]float64{{1, 0}, {0, 1}}, []float64{2, 2}, []float64{1, 2}, o)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, e.finite.x)
	require.NotNil(t, e.runnerUp)
	assert.Equal(t, 4.0, e.runnerUp.obj)
	assert.Equal(t, []float64{0, 2}, e.runnerUp.x)

	// x + y ≤ 1 scored by x + y: (0,1) and (1,0) tie
	e, err = enumerate([][]float64{{1, 1}}, []float64{1}, []float64{1, 1}, o)
	require.NoError(t, err)
	require.NotNil(t, e.runnerUp)
	assert.Equal(t, e.finite.obj, e.runnerUp.obj)
	assert.NotEqual(t, e.finite.x, e.runnerUp.x)
}
