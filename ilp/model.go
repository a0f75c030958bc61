package ilp

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sense is the optimization direction of an objective.
type Sense byte

const (
	// Minimize means the objective value should be as small as possible.
	Minimize = Sense(iota)
	// Maximize means the objective value should be as big as possible.
	Maximize
)

func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		panic("invalid sense")
	}
}

// A Var is a binary decision variable of a Model.
type Var struct {
	Name  string
	Index int // Position of the var in the model, starting at 0
}

// A Term is a variable multiplied by an integer coefficient.
type Term struct {
	Var   *Var
	Coeff int
}

// A Constraint is a linear inequality: the sum of its terms must be at most RHS.
type Constraint struct {
	Name  string
	Terms []Term
	RHS   int
}

// Objective is the linear function to optimize.
type Objective struct {
	Sense Sense
	Terms []Term
}

// A Model is a binary integer linear program.
// All variables are restricted to {0, 1} and all constraints are "<=" rows.
type Model struct {
	Name        string
	vars        []*Var
	byName      map[string]*Var
	constraints []*Constraint
	objective   Objective
}

// NewModel returns an empty model. Its objective is to minimize 0.
func NewModel(name string) *Model {
	return &Model{Name: name, byName: make(map[string]*Var)}
}

// AddBinaryVar creates and returns a new binary variable.
//
// Make name an empty string to get a generated name of the form "x<index>".
// An error is returned if a variable with the same name already exists.
func (m *Model) AddBinaryVar(name string) (*Var, error) {
	if name == "" {
		name = fmt.Sprintf("x%d", len(m.vars))
	}
	if _, ok := m.byName[name]; ok {
		return nil, errors.Errorf("variable with name %s already exists", name)
	}
	v := &Var{Name: name, Index: len(m.vars)}
	m.vars = append(m.vars, v)
	m.byName[name] = v
	return v, nil
}

// LookupVar returns the variable with the given name, or nil if not found.
func (m *Model) LookupVar(name string) *Var {
	return m.byName[name]
}

// AddConstraint adds the row sum(terms) <= rhs to the model.
// All variables in terms must belong to m.
func (m *Model) AddConstraint(name string, terms []Term, rhs int) (*Constraint, error) {
	if err := m.checkTerms(terms); err != nil {
		return nil, errors.Wrapf(err, "invalid constraint %q", name)
	}
	c := &Constraint{Name: name, Terms: terms, RHS: rhs}
	m.constraints = append(m.constraints, c)
	return c, nil
}

// SetObjective replaces the objective of the model.
func (m *Model) SetObjective(terms []Term, sense Sense) error {
	if err := m.checkTerms(terms); err != nil {
		return errors.Wrap(err, "invalid objective")
	}
	m.objective = Objective{Sense: sense, Terms: terms}
	return nil
}

func (m *Model) checkTerms(terms []Term) error {
	for _, t := range terms {
		if t.Var == nil {
			return errors.New("nil variable")
		}
		if t.Var.Index >= len(m.vars) || m.vars[t.Var.Index] != t.Var {
			return errors.Errorf("variable %s does not belong to model %s", t.Var.Name, m.Name)
		}
	}
	return nil
}

// Vars returns the variables of the model, in creation order.
func (m *Model) Vars() []*Var { return m.vars }

// NbVars returns the number of variables in the model.
func (m *Model) NbVars() int { return len(m.vars) }

// Constraints returns the constraints of the model, in creation order.
func (m *Model) Constraints() []*Constraint { return m.constraints }

// Objective returns the objective of the model.
func (m *Model) Objective() Objective { return m.objective }

// Evaluate returns the objective value of the given assignment.
// Will panic if len(values) != m.NbVars().
func (m *Model) Evaluate(values []float64) float64 {
	m.checkValues(values)
	return sum(m.objective.Terms, values)
}

// Feasible returns true iff the given assignment satisfies all constraints.
// Will panic if len(values) != m.NbVars().
func (m *Model) Feasible(values []float64) bool {
	m.checkValues(values)
	for _, c := range m.constraints {
		if sum(c.Terms, values) > float64(c.RHS)+tolerance {
			return false
		}
	}
	return true
}

func (m *Model) checkValues(values []float64) {
	if len(values) != len(m.vars) {
		panic("not as many values as variables")
	}
}

func sum(terms []Term, values []float64) float64 {
	res := 0.0
	for _, t := range terms {
		res += float64(t.Coeff) * values[t.Var.Index]
	}
	return res
}

// String returns a LP-like representation of the model, useful for debugging.
func (m *Model) String() string {
	res := fmt.Sprintf("%s: %s\n", m.objective.Sense, termsString(m.objective.Terms))
	for _, c := range m.constraints {
		res += fmt.Sprintf("%s: %s <= %d\n", c.Name, termsString(c.Terms), c.RHS)
	}
	return res
}

func termsString(terms []Term) string {
	if len(terms) == 0 {
		return "0"
	}
	res := ""
	for i, t := range terms {
		if i > 0 {
			res += " "
		}
		res += fmt.Sprintf("%+d %s", t.Coeff, t.Var.Name)
	}
	return res
}
