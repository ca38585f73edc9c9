package sat

// propagateLiteral drives Boolean constraint propagation for the single
// newly-assigned literal x: it scans x's opposite watch list (the clauses
// that might now be unit or conflicting because one of their watches just
// became false) and returns the conflicting clause ref, or the null ref if
// none was found.
//
// The loop below plays out the two-watched-literal scheme: an explicit
// index cursor i walks the active prefix of the watch
// list [0:end), which shrinks in place whenever a clause's watch is
// relocated (the removed entry is swapped with the last active element and
// end is decremented), and i is *not* advanced when that happens so the
// swapped-in element is re-examined on the next loop iteration.
func (s *Solver) propagateLiteral(x Literal) ClauseRef {
	w := s.watchers.listFor(x.Flip())
	end := len(w)
	var conflict ClauseRef

	for i := 0; i < end; {
		cr := w[i]
		c := s.clause(cr)

		// Ensure c.literals[1] is the literal that was just falsified.
		if x.Complements(c.literals[0]) {
			c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
		}

		if s.satisfied(c.literals[0]) {
			i++
			continue
		}

		replaced := false
		for j := 2; j < len(c.literals); j++ {
			if !s.falsified(c.literals[j]) {
				c.literals[1], c.literals[j] = c.literals[j], c.literals[1]
				s.watchers.add(c.literals[1], cr)
				end--
				w[i], w[end] = w[end], w[i]
				replaced = true
				break
			}
		}
		if replaced {
			continue // re-examine the swapped-in element at position i
		}

		if s.falsified(c.literals[0]) {
			conflict = cr
			s.trailHead = len(s.trail)
			break
		}

		// c.literals[0] is unassigned: it is the unit literal.
		s.addLiteral(c.literals[0], cr)
		i++
	}

	s.watchers.setListFor(x.Flip(), w[:end])
	return conflict
}

// propagate drains the trail from trailHead to its current end, running BCP
// for each newly-assigned literal in FIFO order, until either the trail is
// exhausted or a conflict is found.
func (s *Solver) propagate() ClauseRef {
	for s.trailHead < len(s.trail) {
		x := s.trail[s.trailHead]
		s.trailHead++
		s.Stats.Propagations++
		if conflict := s.propagateLiteral(x); conflict != 0 {
			s.assertInvariants(false)
			return conflict
		}
	}
	s.assertInvariants(true)
	return 0
}
