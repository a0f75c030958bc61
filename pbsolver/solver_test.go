package pbsolver

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/crillab/knapilp/ilp"
)

// knapsack builds a model maximizing profits under a single capacity row.
func knapsack(t *testing.T, profits, weights []int, capacity int) *ilp.Model {
	t.Helper()
	m := ilp.NewModel("knapsack")
	var wTerms, pTerms []ilp.Term
	for i := range profits {
		v, err := m.AddBinaryVar("")
		if err != nil {
			t.Fatalf("AddBinaryVar: %v", err)
		}
		wTerms = append(wTerms, ilp.Term{Var: v, Coeff: weights[i]})
		pTerms = append(pTerms, ilp.Term{Var: v, Coeff: profits[i]})
	}
	if _, err := m.AddConstraint("capacity", wTerms, capacity); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
	if err := m.SetObjective(pTerms, ilp.Maximize); err != nil {
		t.Fatalf("SetObjective: %v", err)
	}
	return m
}

// bruteForce returns the best objective value over all feasible assignments, or -1 if there is none.
func bruteForce(m *ilp.Model) float64 {
	n := m.NbVars()
	best := -1.0
	found := false
	values := make([]float64, n)
	for mask := 0; mask < 1<<n; mask++ {
		for i := range values {
			values[i] = float64((mask >> i) & 1)
		}
		if !m.Feasible(values) {
			continue
		}
		obj := m.Evaluate(values)
		if m.Objective().Sense == ilp.Minimize {
			obj = -obj
		}
		if !found || obj > best {
			best = obj
			found = true
		}
	}
	if !found {
		return -1
	}
	if m.Objective().Sense == ilp.Minimize {
		return -best
	}
	return best
}

func TestTextbook(t *testing.T) {
	m := knapsack(t, []int{60, 100, 120}, []int{10, 20, 30}, 50)
	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if diff := cmp.Diff([]float64{0, 1, 1}, sol.Values); diff != "" {
		t.Errorf("invalid values (-want +got):\n%s", diff)
	}
	if sol.Objective != 220 {
		t.Errorf("expected objective 220, got %v", sol.Objective)
	}
	if sol.Status != ilp.Optimal {
		t.Errorf("expected status %v, got %v", ilp.Optimal, sol.Status)
	}
}

func TestEmptyModel(t *testing.T) {
	sol, err := New().Solve(ilp.NewModel("empty"))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Values) != 0 || sol.Objective != 0 {
		t.Errorf("expected empty solution, got %+v", sol)
	}
}

func TestInfeasible(t *testing.T) {
	m := knapsack(t, []int{1, 2}, []int{1, 1}, -1)
	if _, err := New().Solve(m); !errors.Is(err, ilp.ErrInfeasible) {
		t.Errorf("expected ErrInfeasible, got %v", err)
	}
	empty := ilp.NewModel("no terms")
	if _, err := empty.AddConstraint("neg", nil, -3); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
	if _, err := New().Solve(empty); !errors.Is(err, ilp.ErrInfeasible) {
		t.Errorf("expected ErrInfeasible on row without terms, got %v", err)
	}
}

func TestMinimize(t *testing.T) {
	m := ilp.NewModel("cover")
	x, _ := m.AddBinaryVar("x")
	y, _ := m.AddBinaryVar("y")
	z, _ := m.AddBinaryVar("z")
	// x + y >= 1 and y + z >= 1, written as "<=" rows.
	if _, err := m.AddConstraint("c1", []ilp.Term{{Var: x, Coeff: -1}, {Var: y, Coeff: -1}}, -1); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
	if _, err := m.AddConstraint("c2", []ilp.Term{{Var: y, Coeff: -1}, {Var: z, Coeff: -1}}, -1); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
	if err := m.SetObjective([]ilp.Term{{Var: x, Coeff: 2}, {Var: y, Coeff: 3}, {Var: z, Coeff: 2}}, ilp.Minimize); err != nil {
		t.Fatalf("SetObjective: %v", err)
	}
	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if diff := cmp.Diff([]float64{0, 1, 0}, sol.Values); diff != "" {
		t.Errorf("invalid values (-want +got):\n%s", diff)
	}
	if sol.Objective != 3 {
		t.Errorf("expected objective 3, got %v", sol.Objective)
	}
}

func TestFeasibilityOnly(t *testing.T) {
	m := ilp.NewModel("feasibility")
	x, _ := m.AddBinaryVar("x")
	y, _ := m.AddBinaryVar("y")
	// x must be true, y is free.
	if _, err := m.AddConstraint("force", []ilp.Term{{Var: x, Coeff: -1}}, -1); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
	if _, err := m.AddConstraint("other", []ilp.Term{{Var: x, Coeff: 1}, {Var: y, Coeff: 1}}, 2); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Value(x) != 1 {
		t.Errorf("expected x = 1, got %v", sol.Value(x))
	}
	if !m.Feasible(sol.Values) {
		t.Errorf("solution %v is not feasible", sol.Values)
	}
}

func TestDuplicateTerms(t *testing.T) {
	m := ilp.NewModel("dup")
	x, _ := m.AddBinaryVar("x")
	y, _ := m.AddBinaryVar("y")
	if _, err := m.AddConstraint("c", []ilp.Term{{Var: x, Coeff: 2}, {Var: x, Coeff: 2}, {Var: y, Coeff: 3}}, 4); err != nil {
		t.Fatalf("AddConstraint: %v", err)
	}
	if err := m.SetObjective([]ilp.Term{{Var: x, Coeff: 3}, {Var: y, Coeff: 2}, {Var: x, Coeff: -1}}, ilp.Maximize); err != nil {
		t.Fatalf("SetObjective: %v", err)
	}
	sol, err := New().Solve(m)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// x alone weighs 4 and is worth 2, y alone weighs 3 and is worth 2, both weigh 7.
	if sol.Objective != 2 {
		t.Errorf("expected objective 2, got %v", sol.Objective)
	}
	if !m.Feasible(sol.Values) {
		t.Errorf("solution %v is not feasible", sol.Values)
	}
}

func TestRandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 50; iter++ {
		n := 1 + rng.Intn(10)
		profits := make([]int, n)
		weights := make([]int, n)
		total := 0
		for i := range profits {
			profits[i] = rng.Intn(50)
			weights[i] = 1 + rng.Intn(30)
			total += weights[i]
		}
		capacity := rng.Intn(total + 1)
		m := knapsack(t, profits, weights, capacity)
		sol, err := New().Solve(m)
		if err != nil {
			t.Fatalf("Solve(profits=%v, weights=%v, capacity=%d): %v", profits, weights, capacity, err)
		}
		if !m.Feasible(sol.Values) {
			t.Errorf("profits=%v, weights=%v, capacity=%d: solution %v is not feasible", profits, weights, capacity, sol.Values)
		}
		if want := bruteForce(m); sol.Objective != want {
			t.Errorf("profits=%v, weights=%v, capacity=%d: expected objective %v, got %v", profits, weights, capacity, want, sol.Objective)
		}
	}
}

func BenchmarkKnapsack(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	m := ilp.NewModel("bench")
	var wTerms, pTerms []ilp.Term
	for i := 0; i < 30; i++ {
		v, _ := m.AddBinaryVar("")
		wTerms = append(wTerms, ilp.Term{Var: v, Coeff: 1 + rng.Intn(100)})
		pTerms = append(pTerms, ilp.Term{Var: v, Coeff: 1 + rng.Intn(100)})
	}
	_, _ = m.AddConstraint("capacity", wTerms, 500)
	_ = m.SetObjective(pTerms, ilp.Maximize)
	for i := 0; i < b.N; i++ {
		if _, err := New().Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}
