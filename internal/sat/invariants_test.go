package sat

import "testing"

func TestCheckInvariantsHoldsAfterPropagate(t *testing.T) {
	s := NewSolver()
	newVars(s, 3)
	s.AddClause(lits(1, 2))
	s.AddClause(lits(-1, 3))

	s.newLevel()
	s.addLiteral(Lit(1, true), 0)
	if conflict := s.propagate(); conflict != 0 {
		t.Fatalf("propagate() found an unexpected conflict")
	}

	if err := s.checkInvariants(true); err != nil {
		t.Errorf("checkInvariants: %s", err)
	}
}

func TestCheckInvariantsHoldsAfterBacktrack(t *testing.T) {
	s := NewSolver()
	newVars(s, 2)
	s.AddClause(lits(1, 2))

	s.newLevel()
	s.addLiteral(Lit(1, true), 0)
	s.newLevel()
	s.addLiteral(Lit(2, true), 0)
	s.backtrack(2)

	if err := s.checkInvariants(true); err != nil {
		t.Errorf("checkInvariants: %s", err)
	}
}

func TestCheckInvariantsCatchesUnwatchedClause(t *testing.T) {
	s := NewSolver()
	newVars(s, 2)
	s.AddClause(lits(1, 2))

	// Directly corrupt the watch index to confirm checkInvariants notices.
	s.watchers.setListFor(Lit(1, true), nil)

	if err := s.checkInvariants(true); err == nil {
		t.Errorf("checkInvariants: got nil error, want a violation for the unwatched clause")
	}
}
