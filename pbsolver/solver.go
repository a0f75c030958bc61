// Package pbsolver solves binary integer linear programs with the gophersat pseudo-boolean solver.
//
// Each "<=" row of an ilp.Model becomes a hard pseudo-boolean constraint and each
// objective term becomes a weighted soft clause, so that minimizing the MAXSAT cost
// is the same as optimizing the objective.
package pbsolver

import (
	"github.com/crillab/gophersat/maxsat"
	"github.com/crillab/gophersat/solver"
	"github.com/pkg/errors"

	"github.com/crillab/knapilp/ilp"
)

// Solver is an ilp.Solver relying on gophersat.
// The zero value is a silent solver.
type Solver struct {
	Verbose bool // Indicates whether gophersat should display information during solving. False by default
}

var _ ilp.Solver = (*Solver)(nil)

// New returns a new silent solver.
func New() *Solver {
	return &Solver{}
}

// Solve returns an optimal solution for m, or ilp.ErrInfeasible if m has no solution.
func (s *Solver) Solve(m *ilp.Model) (*ilp.Solution, error) {
	hard, err := hardConstrs(m)
	if err != nil {
		return nil, err
	}
	soft := softConstrs(m)
	var values []float64
	if len(soft) == 0 {
		values, err = s.satisfy(m, hard)
	} else {
		values, err = s.optimize(m, append(hard, soft...))
	}
	if err != nil {
		return nil, err
	}
	return &ilp.Solution{
		Status:    ilp.Optimal,
		Objective: m.Evaluate(values),
		Values:    values,
	}, nil
}

// merge sums the coefficients of terms sharing the same var, keeping the order of first appearance.
// Vars whose coefficients sum to 0 are dropped.
func merge(terms []ilp.Term) (vars []*ilp.Var, coeffs []int) {
	idx := make(map[*ilp.Var]int)
	for _, t := range terms {
		i, ok := idx[t.Var]
		if !ok {
			i = len(vars)
			idx[t.Var] = i
			vars = append(vars, t.Var)
			coeffs = append(coeffs, 0)
		}
		coeffs[i] += t.Coeff
	}
	j := 0
	for i := range vars {
		if coeffs[i] != 0 {
			vars[j], coeffs[j] = vars[i], coeffs[i]
			j++
		}
	}
	return vars[:j], coeffs[:j]
}

// hardConstrs translates each row a.x <= b into the PB constraint
// sum(a_i * not(x_i)) >= sum(a) - b.
func hardConstrs(m *ilp.Model) ([]maxsat.Constr, error) {
	var res []maxsat.Constr
	for _, c := range m.Constraints() {
		vars, coeffs := merge(c.Terms)
		if len(vars) == 0 {
			if c.RHS < 0 {
				return nil, errors.Wrapf(ilp.ErrInfeasible, "constraint %q cannot be satisfied", c.Name)
			}
			continue
		}
		lits := make([]maxsat.Lit, len(vars))
		sum := 0
		for i, v := range vars {
			lits[i] = maxsat.Not(v.Name)
			sum += coeffs[i]
		}
		res = append(res, maxsat.HardPBConstr(lits, coeffs, sum-c.RHS))
	}
	return res, nil
}

// softConstrs translates the objective into weighted clauses.
// A positive coefficient (once the objective is turned into a maximization) costs its weight
// when the var is false, a negative one costs its opposite when the var is true.
// The MAXSAT cost is thus the sum of positive coefficients minus the objective value.
func softConstrs(m *ilp.Model) []maxsat.Constr {
	obj := m.Objective()
	vars, coeffs := merge(obj.Terms)
	constrs := make([]maxsat.Constr, len(vars))
	for i, v := range vars {
		w := coeffs[i]
		if obj.Sense == ilp.Minimize {
			w = -w
		}
		if w > 0 {
			constrs[i] = maxsat.WeightedClause([]maxsat.Lit{maxsat.Var(v.Name)}, w)
		} else {
			constrs[i] = maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(v.Name)}, -w)
		}
	}
	return constrs
}

// optimize solves the weighted problem with the maxsat layer of gophersat.
func (s *Solver) optimize(m *ilp.Model, constrs []maxsat.Constr) ([]float64, error) {
	pb := maxsat.New(constrs...)
	pb.SetVerbose(s.Verbose)
	model, cost := pb.Solve()
	if model == nil || cost < 0 {
		return nil, errors.Wrapf(ilp.ErrInfeasible, "model %s", m.Name)
	}
	values := make([]float64, m.NbVars())
	for i, v := range m.Vars() {
		if model[v.Name] {
			values[i] = 1
		}
	}
	return values, nil
}

// satisfy looks for any assignment satisfying the constraints, since all of them are optimal.
func (s *Solver) satisfy(m *ilp.Model, constrs []maxsat.Constr) ([]float64, error) {
	values := make([]float64, m.NbVars())
	if len(constrs) == 0 || m.Feasible(values) {
		return values, nil
	}
	ids := make(map[string]int, m.NbVars())
	for _, v := range m.Vars() {
		ids[v.Name] = v.Index + 1 // gophersat vars start at 1
	}
	pbConstrs := make([]solver.PBConstr, len(constrs))
	for i, c := range constrs {
		lits := make([]int, len(c.Lits))
		for j, lit := range c.Lits {
			lits[j] = ids[lit.Var]
			if lit.Negated {
				lits[j] = -lits[j]
			}
		}
		weights := make([]int, len(c.Coeffs))
		copy(weights, c.Coeffs)
		pbConstrs[i] = solver.GtEq(lits, weights, c.AtLeast)
	}
	pb := solver.ParsePBConstrs(pbConstrs)
	if pb.Status == solver.Unsat {
		return nil, errors.Wrapf(ilp.ErrInfeasible, "model %s", m.Name)
	}
	sv := solver.New(pb)
	sv.Verbose = s.Verbose
	if status := sv.Solve(); status != solver.Sat {
		return nil, errors.Wrapf(ilp.ErrInfeasible, "model %s", m.Name)
	}
	for i, binding := range sv.Model() {
		if i < len(values) && binding {
			values[i] = 1
		}
	}
	return values, nil
}
