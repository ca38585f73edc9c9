package sat

// ROOT_LEVEL is the decision level at which clause-loading units and
// anything forced before the first decision live. The first decision opens
// level ROOT_LEVEL+1.
const ROOT_LEVEL = 1

// currentLevel returns the solver's current decision level, i.e. the number
// of decisions currently on the trail plus the root level.
func (s *Solver) currentLevel() int {
	return len(s.levelSize)
}

// newLevel opens a fresh decision level by snapshotting the current trail
// length.
func (s *Solver) newLevel() {
	s.levelSize = append(s.levelSize, len(s.trail))
}

// addLiteral requires that l is not falsified. It appends l to the trail,
// assigns its variable, and records the level and reason. cause is the null
// ClauseRef for decisions and root-level units.
func (s *Solver) addLiteral(l Literal, cause ClauseRef) {
	v := l.Var()
	s.model[v] = l.Value()
	s.level[v] = s.currentLevel()
	s.cause[v] = cause
	s.trail = append(s.trail, l)
	if s.OnEnqueue != nil {
		s.OnEnqueue(int(l), s.level[v])
	}
}

// satisfied reports whether l is true under the current model.
func (s *Solver) satisfied(l Literal) bool {
	return s.model[l.Var()] == l.Value()
}

// falsified reports whether l is false under the current model.
func (s *Solver) falsified(l Literal) bool {
	return s.model[l.Var()] == l.Value().Opposite()
}

// varValue returns the current value assigned to variable v (Unassigned if
// v has no assignment).
func (s *Solver) varValue(v Var) Value {
	return s.model[v]
}
