// Package grammar implements grammar ingestion, symbol classification, and
// FIRST-set computation. It is grounded on ictiobus/grammar and
// tunascript/grammar.go, adapted to a flat, insertion-ordered production
// list so reduce actions can name productions by index.
package grammar

import "strings"

// Epsilon marks an empty right-hand side. It is never pushed on the stack.
const Epsilon = "ε"

// EndMarker is the lookahead/input symbol denoting end of input.
const EndMarker = "$"

// Production is an ordered pair (LHS, RHS). RHS is either an ordered
// sequence of symbols, or the singleton []string{Epsilon}.
type Production struct {
	LHS string
	RHS []string
}

// IsEpsilon returns whether p is the epsilon production.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 1 && p.RHS[0] == Epsilon
}

// Equal reports whether p and o denote the same production.
func (p Production) Equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

// String renders the production as "LHS -> RHS", with ε shown literally for
// empty productions.
func (p Production) String() string {
	return p.LHS + " -> " + p.RHSString()
}

// RHSString renders just the right-hand side.
func (p Production) RHSString() string {
	if p.IsEpsilon() {
		return Epsilon
	}
	return strings.Join(p.RHS, " ")
}

// DottedString renders the production with a dot inserted at dotPos,
// 0 <= dotPos <= len(RHS). ε productions render with the dot immediately
// after the ε symbol.
func (p Production) DottedString(dotPos int) string {
	if p.IsEpsilon() {
		return p.LHS + " -> " + Epsilon + " •"
	}

	parts := make([]string, 0, len(p.RHS)+1)
	for i, sym := range p.RHS {
		if i == dotPos {
			parts = append(parts, "•")
		}
		parts = append(parts, sym)
	}
	if dotPos == len(p.RHS) {
		parts = append(parts, "•")
	}

	return p.LHS + " -> " + strings.Join(parts, " ")
}
