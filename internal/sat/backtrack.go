package sat

// backtrack unwinds the trail to the end of decision level `level`,
// freeing every variable assigned at a higher level back to the decision queue,
// and truncates levelSize so that currentLevel() becomes level.
func (s *Solver) backtrack(level int) {
	start := s.levelSize[level]
	for i := len(s.trail) - 1; i >= start; i-- {
		v := s.trail[i].Var()
		if !s.order.Contains(v) {
			s.order.Insert(v)
		}
		s.model[v] = Unassigned
	}
	s.trail = s.trail[:start]
	s.trailHead = len(s.trail)
	s.levelSize = s.levelSize[:level]
	s.assertInvariants(true)
}
