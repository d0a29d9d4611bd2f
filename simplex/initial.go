// SPDX-License-Identifier: MIT

package simplex

import (
	"github.com/katalvlaran/lvlp/matrix"
)

// initialForm is the result of slack-form construction: either the slack
// basis is already feasible, or the auxiliary phase must repair it.
type initialForm interface {
	tableau() *Tableau
}

// feasibleForm: every b >= 0, the slack basis is feasible as is.
type feasibleForm struct {
	tab *Tableau
}

// auxiliaryForm: some b < 0; infeasibleRow holds the most negative b
// (first such row on ties).
type auxiliaryForm struct {
	tab           *Tableau
	infeasibleRow int
}

func (f feasibleForm) tableau() *Tableau  { return f.tab }
func (f auxiliaryForm) tableau() *Tableau { return f.tab }

// buildInitialForm lays out the m × (n+m) slack tableau: A, then the slack
// identity block; Basis[i] = n+i; C = [c, 0…].
// a must already be validated.
func buildInitialForm(a *matrix.Dense, b, c []float64, tol float64) (initialForm, error) {
	m, n := a.Shape()
	slack, err := a.Widen(m)
	if err != nil {
		return nil, err
	}

	t := &Tableau{
		B:     append([]float64(nil), b...),
		C:     make([]float64, n+m),
		Basis: make([]int, m),
		tol:   tol,
	}
	copy(t.C, c)
	for i := 0; i < m; i++ {
		if err = slack.Set(i, n+i, 1); err != nil {
			return nil, err
		}
		t.Basis[i] = n + i
	}
	t.setA(slack)

	minRow := 0
	for i := 1; i < m; i++ {
		if t.B[i] < t.B[minRow] {
			minRow = i
		}
	}
	if t.B[minRow] >= 0 {
		return feasibleForm{tab: t}, nil
	}

	return auxiliaryForm{tab: t, infeasibleRow: minRow}, nil
}
