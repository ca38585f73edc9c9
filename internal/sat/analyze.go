package sat

// analyze performs first-UIP conflict analysis starting from the clause
// ref conflict, closely following the resolution walk in the original
// reference solver: starting from the conflicting clause, repeatedly
// resolve against the reason clause of the most recently assigned literal
// that the growing learnt clause still depends on, until exactly one
// literal from the current decision level remains (the first UIP). That
// literal's negation becomes learnt[0].
//
// It returns the learnt clause (with its asserting literal, the negated
// UIP, at position 0) and the level to backtrack to before asserting it:
// ROOT_LEVEL if the clause is unit, otherwise the second-highest level
// among its literals, with the literal at that level moved to position 1
// so the two watched positions are exactly the two most recent levels.
func (s *Solver) analyze(conflict ClauseRef) ([]Literal, int) {
	buf := s.learntBuf[:0]
	buf = append(buf, 0) // placeholder for the asserting literal, set below

	for i := range s.seen {
		s.seen[i] = false
	}

	pending := 0 // number of seen, not-yet-resolved literals at the current level
	idx := len(s.trail) - 1
	cr := conflict
	var p Literal // the literal being resolved away; the zero Literal on the first pass

	for {
		c := s.clause(cr)
		for i := 0; i < c.Size(); i++ {
			l := c.At(i)
			if p != 0 && l == p {
				continue // p's own occurrence in its reason clause
			}
			v := l.Var()
			if s.seen[v] || s.level[v] <= ROOT_LEVEL {
				continue
			}
			s.seen[v] = true
			if s.level[v] == s.currentLevel() {
				pending++
			} else {
				buf = append(buf, l)
			}
		}

		for !s.seen[s.trail[idx].Var()] {
			idx--
		}
		p = s.trail[idx]
		idx--
		s.seen[p.Var()] = false
		pending--
		cr = s.cause[p.Var()]

		if pending == 0 {
			break
		}
	}

	buf[0] = p.Flip()
	s.learntBuf = buf

	learnt := append([]Literal(nil), buf...)

	backtrackLevel := ROOT_LEVEL
	if len(learnt) > 1 {
		maxPos := 1
		maxLevel := s.level[learnt[1].Var()]
		for i := 2; i < len(learnt); i++ {
			lv := s.level[learnt[i].Var()]
			if lv > maxLevel {
				maxLevel = lv
				maxPos = i
			}
		}
		learnt[1], learnt[maxPos] = learnt[maxPos], learnt[1]
		backtrackLevel = maxLevel
	}

	return learnt, backtrackLevel
}
