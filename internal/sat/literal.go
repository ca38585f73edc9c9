package sat

import "fmt"

// Var is a variable identity, 1..N. The zero Var is the null variable,
// representing "no variable" (used as a sentinel by the decision queue and
// by SelectVar).
type Var int

// Literal is a nonzero signed integer whose absolute value names a
// variable: positive means the variable is asserted true, negative means
// false. The zero Literal is the null literal and never appears on the
// trail or in a clause.
type Literal int

// Lit returns the literal for variable v with the given sign: sign=true
// gives the positive literal, sign=false gives the negative one.
func Lit(v Var, sign bool) Literal {
	if sign {
		return Literal(v)
	}
	return Literal(-v)
}

// Var returns the variable named by l.
func (l Literal) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// IsPositive reports whether l asserts its variable true.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Flip returns the complementary literal.
func (l Literal) Flip() Literal {
	return -l
}

// Complements reports whether l and x are complementary, i.e. l == flip(x).
func (l Literal) Complements(x Literal) bool {
	return l == -x
}

// Value returns the Value that satisfies l: True if l is positive, False if
// l is negative.
func (l Literal) Value() Value {
	if l.IsPositive() {
		return True
	}
	return False
}

// index returns a dense index in [0, 2*n) suitable for indexing arrays keyed
// by literal (the watch index). Positive and negative literals of the same
// variable land on adjacent slots.
func (l Literal) index() int {
	v := int(l.Var())
	if l.IsPositive() {
		return 2 * (v - 1)
	}
	return 2*(v-1) + 1
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}
