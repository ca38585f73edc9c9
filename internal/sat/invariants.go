package sat

import "log"

// debugAsserts gates the invariant checks below. It is always false in
// production; flip it locally when chasing a solver bug. checkInvariants is
// also called directly (independent of this constant) from the package's
// own tests, which exercise it as a correctness oracle rather than a
// production safety net.
const debugAsserts = false

// checkInvariants verifies the universal invariants that must hold after
// every Propagate and every backtrack: each trailed literal matches its
// variable's model entry, every clause of size >= 2 is watched at both of
// its watch positions, and - when called with no pending conflict - every
// such clause has a non-falsified literal at one of those positions. It
// returns the first violation found, or nil if none.
func (s *Solver) checkInvariants(expectNoConflict bool) error {
	for _, l := range s.trail {
		if s.model[l.Var()] != l.Value() {
			return &invariantError{"trailed literal disagrees with model"}
		}
	}

	for i := range s.clauses {
		c := &s.clauses[i]
		if c.Size() < 2 {
			continue
		}
		cr := ClauseRef(i + 1)
		if !watches(s.watchers.listFor(c.At(0)), cr) {
			return &invariantError{"clause not watched at its first literal"}
		}
		if !watches(s.watchers.listFor(c.At(1)), cr) {
			return &invariantError{"clause not watched at its second literal"}
		}
		if expectNoConflict && s.falsified(c.At(0)) && s.falsified(c.At(1)) {
			return &invariantError{"both watches falsified with no conflict reported"}
		}
	}

	return nil
}

func watches(list []ClauseRef, cr ClauseRef) bool {
	for _, c := range list {
		if c == cr {
			return true
		}
	}
	return false
}

type invariantError struct{ msg string }

func (e *invariantError) Error() string { return e.msg }

// assertInvariants calls checkInvariants and, if debugAsserts is enabled,
// fails hard on the first violation - in the same spirit as the reference
// solver's own "should never happen" guards.
func (s *Solver) assertInvariants(expectNoConflict bool) {
	if !debugAsserts {
		return
	}
	if err := s.checkInvariants(expectNoConflict); err != nil {
		log.Fatalf("sat: invariant violated: %s", err)
	}
}
