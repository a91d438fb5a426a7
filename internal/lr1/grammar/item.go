package grammar

import "strings"

// LR0Item is an LR(0) item: a production with a dot position, represented
// (in the style of ictiobus/grammar/item.go) as the RHS split into the
// symbols already consumed (Left) and the symbols remaining (Right); the
// dot position is implicitly len(Left).
//
// An item whose RHS is [ε] is modeled as already complete for the purpose
// of reduction: Complete() reports true for it regardless of Left/Right
// contents.
type LR0Item struct {
	LHS   string
	Left  []string
	Right []string
}

// Complete returns whether the dot has reached the end of the production,
// i.e. there is nothing left to shift. ε productions are always complete.
func (it LR0Item) Complete() bool {
	if len(it.Right) == 1 && it.Right[0] == Epsilon {
		return true
	}
	return len(it.Right) == 0
}

// NextSymbol returns the symbol immediately after the dot and true, or ""
// and false if the item is complete.
func (it LR0Item) NextSymbol() (string, bool) {
	if it.Complete() || len(it.Right) == 0 {
		return "", false
	}
	return it.Right[0], true
}

// Production reconstructs the (LHS, RHS) production this item marks a dot
// within.
func (it LR0Item) Production() Production {
	if len(it.Left) == 0 && len(it.Right) == 1 && it.Right[0] == Epsilon {
		return Production{LHS: it.LHS, RHS: []string{Epsilon}}
	}
	rhs := make([]string, 0, len(it.Left)+len(it.Right))
	rhs = append(rhs, it.Left...)
	rhs = append(rhs, it.Right...)
	return Production{LHS: it.LHS, RHS: rhs}
}

// Advance returns the item with the dot moved one position to the right
// over the given symbol. Caller must ensure NextSymbol() == sym.
func (it LR0Item) Advance() LR0Item {
	next := LR0Item{
		LHS:   it.LHS,
		Left:  append(append([]string{}, it.Left...), it.Right[0]),
		Right: append([]string{}, it.Right[1:]...),
	}
	return next
}

// String renders the item as "LHS -> α • β" (no lookahead).
func (it LR0Item) String() string {
	return it.Production().DottedString(len(it.Left))
}

// LR1Item is an LR0Item paired with a single-token lookahead.
type LR1Item struct {
	LR0Item
	Lookahead string
}

// Equal reports whether two LR1Items denote the same (lhs, rhs, dot,
// lookahead) tuple.
func (it LR1Item) Equal(o LR1Item) bool {
	return it.String() == o.String()
}

// String renders the item as "[LHS -> α • β, lookahead]".
func (it LR1Item) String() string {
	return "[" + it.LR0Item.String() + ", " + it.Lookahead + "]"
}

// Key is the canonical map key used to store LR1Items in item sets: the
// LHS/RHS/dot/lookahead tuple rendered as a string, so that value-equal
// items collide. This is how item-set equality is implemented without a
// custom hash function.
func (it LR1Item) Key() string {
	return it.LR0Item.LHS + "\x00" + strings.Join(it.LR0Item.Left, "\x01") +
		"\x00" + strings.Join(it.LR0Item.Right, "\x01") + "\x00" + it.Lookahead
}
