/*
Package ilp describes binary integer linear programs and the solvers able to solve them.

A Model is built the way one builds a model with a MIP library:

    m := ilp.NewModel("knapsack")
    x, _ := m.AddBinaryVar("")
    y, _ := m.AddBinaryVar("")
    m.AddConstraint("capacity", []ilp.Term{{Var: x, Coeff: 10}, {Var: y, Coeff: 20}}, 25)
    m.SetObjective([]ilp.Term{{Var: x, Coeff: 60}, {Var: y, Coeff: 100}}, ilp.Maximize)

The package does not solve models itself. Solving is delegated to an implementation
of the Solver interface, and ErrInfeasible signals that no assignment satisfies the constraints.

Relaxation computes the value of the LP relaxation of a model with an external
simplex implementation. For a maximization problem, it is an upper bound on the optimal value.
*/
package ilp
