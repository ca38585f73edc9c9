package sat

import "strings"

// Clause is an ordered, normalized-on-construction sequence of literals.
// Positions 0 and 1 are the watched positions: their identity matters (the
// watch index tracks them) but which literal sits at which of the two
// positions may change freely during propagation.
type Clause struct {
	literals []Literal
}

// ClauseRef is a stable 1-based handle into the solver's clause database.
// The zero ClauseRef is the null reference. Refs remain valid for the
// lifetime of the solver: the database only ever appends.
type ClauseRef int

// Size returns the number of literals in the clause.
func (c *Clause) Size() int {
	return len(c.literals)
}

// At returns the literal at position i.
func (c *Clause) At(i int) Literal {
	return c.literals[i]
}

// normalize sorts lits and removes duplicate literals in place, returning
// the clause's final literal slice. It does not special-case tautological
// clauses (a variable and its negation both present): such a clause is
// logically always true, and the two-watched-literal scheme already keeps
// it satisfied the moment either literal's variable is assigned, so no
// separate detection is needed.
func normalize(lits []Literal) []Literal {
	if len(lits) == 0 {
		return lits
	}
	insertionSort(lits)
	j := 0
	for i := 0; i < len(lits); i++ {
		if i > 0 && lits[i] == lits[i-1] {
			continue // duplicate literal
		}
		lits[j] = lits[i]
		j++
	}
	return lits[:j]
}

// insertionSort sorts lits by their underlying signed-int value. Clause
// sizes are small in practice (the vast majority are binary or ternary), so
// an allocation-free insertion sort outperforms a general-purpose sort here
// and avoids pulling in sort.Slice's interface overhead for the hot path.
func insertionSort(lits []Literal) {
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && lits[j] < lits[j-1]; j-- {
			lits[j], lits[j-1] = lits[j-1], lits[j]
		}
	}
}

// String renders the clause in DIMACS clause-line form, literals
// space-separated and terminated by " 0".
func (c *Clause) String() string {
	parts := make([]string, 0, len(c.literals)+1)
	for _, l := range c.literals {
		parts = append(parts, l.String())
	}
	parts = append(parts, "0")
	return strings.Join(parts, " ")
}
