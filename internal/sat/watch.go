package sat

// watchIndex maps each literal to the clause refs currently watching it:
// for every non-unit clause c in the database, c.At(0) and c.At(1) appear in
// the watch lists of their respective literals.
type watchIndex struct {
	lists [][]ClauseRef // indexed by Literal.index()
}

func newWatchIndex() *watchIndex {
	return &watchIndex{}
}

// grow extends the index to cover nVars variables (2 literals each).
func (w *watchIndex) grow(nVars int) {
	for len(w.lists) < 2*nVars {
		w.lists = append(w.lists, nil)
	}
}

func (w *watchIndex) listFor(l Literal) []ClauseRef {
	return w.lists[l.index()]
}

func (w *watchIndex) setListFor(l Literal, refs []ClauseRef) {
	w.lists[l.index()] = refs
}

// add registers cr as a watcher of l.
func (w *watchIndex) add(l Literal, cr ClauseRef) {
	i := l.index()
	w.lists[i] = append(w.lists[i], cr)
}
