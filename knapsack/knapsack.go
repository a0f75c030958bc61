package knapsack

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/crillab/knapilp/ilp"
)

// threshold is the value above which a variable returned by a solver is considered true.
const threshold = 0.5

// A Result is the outcome of solving an instance.
type Result struct {
	Items    []Item        // Selected items, in input order
	Weight   int           // Total weight of Items
	Profit   int           // Total profit of Items
	Solution *ilp.Solution // Solution returned by the solver
}

// Formulate returns the binary program associated with inst:
// one variable per item, in item order, the constraint that the selected weight is at most the capacity,
// and the objective of maximizing the selected profit.
func Formulate(inst *Instance) *ilp.Model {
	m := ilp.NewModel("knapsack")
	weights := make([]ilp.Term, len(inst.Items))
	profits := make([]ilp.Term, len(inst.Items))
	for i, it := range inst.Items {
		v, err := m.AddBinaryVar("")
		if err != nil { // Generated names are unique
			panic(err)
		}
		weights[i] = ilp.Term{Var: v, Coeff: it.Weight}
		profits[i] = ilp.Term{Var: v, Coeff: it.Profit}
	}
	if _, err := m.AddConstraint("capacity", weights, inst.Capacity); err != nil {
		panic(err)
	}
	if err := m.SetObjective(profits, ilp.Maximize); err != nil {
		panic(err)
	}
	return m
}

// Select returns the items whose associated value is above 0.5, in input order.
// Will panic if len(values) != len(items).
func Select(items []Item, values []float64) []Item {
	if len(items) != len(values) {
		panic("not as many values as items")
	}
	return lo.Filter(items, func(_ Item, i int) bool { return values[i] > threshold })
}

// Solve formulates inst, solves it with s and returns the selected items.
// If the instance has no solution, the returned error matches ilp.ErrInfeasible.
func Solve(inst *Instance, s ilp.Solver) (*Result, error) {
	m := Formulate(inst)
	sol, err := s.Solve(m)
	if err != nil {
		return nil, errors.Wrap(err, "could not solve knapsack")
	}
	items := Select(inst.Items, sol.Values)
	return &Result{
		Items:    items,
		Weight:   TotalWeight(items),
		Profit:   TotalProfit(items),
		Solution: sol,
	}, nil
}
