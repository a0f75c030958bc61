package ilp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Relaxation returns the optimal objective value of the LP relaxation of m,
// where each binary variable may take any value in [0, 1].
//
// The problem is converted to the standard form expected by the simplex,
// minimize c^T x s.t. A x = b, x >= 0, with one slack column per variable upper bound
// and one per constraint.
func (m *Model) Relaxation() (float64, error) {
	nbVars := len(m.vars)
	if nbVars == 0 {
		for _, c := range m.constraints {
			if c.RHS < 0 {
				return 0, ErrInfeasible
			}
		}
		return 0, nil
	}
	nbRows := nbVars + len(m.constraints)
	nbCols := 2*nbVars + len(m.constraints)
	c := make([]float64, nbCols)
	for _, t := range m.objective.Terms {
		c[t.Var.Index] += float64(t.Coeff)
	}
	if m.objective.Sense == Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}
	A := mat.NewDense(nbRows, nbCols, nil)
	b := make([]float64, nbRows)
	for i := 0; i < nbVars; i++ { // x_i + u_i = 1
		A.Set(i, i, 1)
		A.Set(i, nbVars+i, 1)
		b[i] = 1
	}
	for j, cons := range m.constraints { // a.x + s_j = rhs
		row := nbVars + j
		sign := 1.0
		if cons.RHS < 0 { // Keep b nonnegative
			sign = -1
		}
		for _, t := range cons.Terms {
			A.Set(row, t.Var.Index, A.At(row, t.Var.Index)+sign*float64(t.Coeff))
		}
		A.Set(row, 2*nbVars+j, sign)
		b[row] = sign * float64(cons.RHS)
	}
	z, _, err := lp.Simplex(c, A, b, 0, nil)
	if err != nil {
		if err == lp.ErrInfeasible {
			return 0, ErrInfeasible
		}
		return 0, errors.Wrap(err, "could not solve relaxation")
	}
	if m.objective.Sense == Maximize {
		z = -z
	}
	return z, nil
}
