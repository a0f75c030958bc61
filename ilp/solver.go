package ilp

import "github.com/pkg/errors"

// tolerance absorbs floating rounding in values returned by solvers.
const tolerance = 1e-6

// ErrInfeasible is returned by a Solver when no assignment satisfies all constraints.
var ErrInfeasible = errors.New("model is infeasible")

// Status is the status of a Solution.
type Status byte

const (
	// Unknown means the solver stopped without proving anything.
	Unknown = Status(iota)
	// Optimal means no better assignment exists.
	Optimal
	// Feasible means the assignment satisfies all constraints but may not be optimal.
	Feasible
)

func (s Status) String() string {
	switch s {
	case Unknown:
		return "UNKNOWN"
	case Optimal:
		return "OPTIMAL"
	case Feasible:
		return "FEASIBLE"
	default:
		panic("invalid status")
	}
}

// A Solution is an assignment of the variables of a model.
type Solution struct {
	Status    Status
	Objective float64   // Objective value of Values
	Values    []float64 // For each var, in index order, its value
}

// Value returns the value of v in the solution.
func (s *Solution) Value(v *Var) float64 {
	return s.Values[v.Index]
}

// Solver is any type able to solve a binary integer linear program.
// Implementations return ErrInfeasible (possibly wrapped) when the model cannot be satisfied.
type Solver interface {
	Solve(m *Model) (*Solution, error)
}
