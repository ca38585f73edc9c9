package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/schwering/sat/internal/dimacs"
	"github.com/schwering/sat/internal/sat"
)

// toString returns a binary string representation of a model, e.g. model
// [true, false, false] becomes "100". Used so that unordered sets of models
// can be compared with cmp.Equal.
func toString(model []bool) string {
	b := make([]byte, len(model))
	for i, v := range model {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

func toSet(models [][]bool) map[string]struct{} {
	set := map[string]struct{}{}
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAll enumerates every model of the instance loaded into s.
func solveAll(s *sat.Solver) [][]bool {
	var models [][]bool
	for s.Solve() == sat.StatusSat {
		models = append(models, s.Model())
		s.BlockCurrentModel()
	}
	return models
}

func loadString(t *testing.T, cnf string) *sat.Solver {
	t.Helper()
	s := sat.NewSolver()
	if _, _, err := dimacs.LoadDIMACS(strings.NewReader(cnf), s); err != nil {
		t.Fatalf("LoadDIMACS: %s", err)
	}
	return s
}

// TestSolveAllModels exercises end-to-end instance loading, solving, and
// enumeration against small instances with a hand-countable set of models.
func TestSolveAllModels(t *testing.T) {
	tests := []struct {
		name string
		cnf  string
		want [][]bool
	}{
		{
			name: "single unit clause, one free variable",
			cnf: "p cnf 2 1\n" +
				"1 0\n",
			want: [][]bool{{true, true}, {true, false}},
		},
		{
			name: "binary clause, three models",
			cnf: "p cnf 2 1\n" +
				"1 2 0\n",
			want: [][]bool{
				{true, true},
				{true, false},
				{false, true},
			},
		},
		{
			name: "contradictory units are unsat",
			cnf: "p cnf 1 2\n" +
				"1 0\n" +
				"-1 0\n",
			want: nil,
		},
		{
			name: "pigeonhole-style unsat (2 pigeons, 1 hole)",
			cnf: "p cnf 2 3\n" +
				"1 0\n" +
				"2 0\n" +
				"-1 -2 0\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadString(t, tt.cnf)
			got := solveAll(s)
			if !cmp.Equal(toSet(got), toSet(tt.want)) {
				t.Errorf("models mismatch: got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestRootLevelConflictIsUnsat exercises the degenerate case of two directly
// conflicting root-level unit clauses: the solver must detect this without
// ever calling Solve, and Solve itself must report it immediately.
func TestRootLevelConflictIsUnsat(t *testing.T) {
	s := sat.NewSolver()
	v := s.AddVariable()
	s.AddClause([]sat.Literal{sat.Lit(v, true)})
	s.AddClause([]sat.Literal{sat.Lit(v, false)})

	if got := s.Solve(); got != sat.StatusUnsat {
		t.Errorf("Solve() = %s, want UNSATISFIABLE", got)
	}
}

// TestRedundantRootUnitIsNoOp verifies that re-asserting an already-true
// root unit does not disturb the model.
func TestRedundantRootUnitIsNoOp(t *testing.T) {
	s := sat.NewSolver()
	v := s.AddVariable()
	s.AddClause([]sat.Literal{sat.Lit(v, true)})
	s.AddClause([]sat.Literal{sat.Lit(v, true)})

	if got := s.Solve(); got != sat.StatusSat {
		t.Fatalf("Solve() = %s, want SATISFIABLE", got)
	}
	if model := s.Model(); !model[0] {
		t.Errorf("Model()[0] = false, want true")
	}
}
