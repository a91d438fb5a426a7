// Package automaton implements CLOSURE/GOTO over LR(1) item sets and the
// canonical collection builder. It is grounded on ictiobus/automaton, with
// the generic DFA[E]/NFA[E]/LALR-merge machinery dropped: that machinery
// exists to let LR(0), SLR, and LALR(1) share a representation, and LALR
// merging is out of scope here, so CLOSURE/GOTO operate directly on LR(1)
// item sets.
package automaton

import (
	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
)

// ItemSet is an unordered set of LR(1) items, keyed by grammar.LR1Item.Key
// so that value-equal items collapse to one entry.
type ItemSet map[string]grammar.LR1Item

// NewItemSet builds an ItemSet from the given items.
func NewItemSet(items ...grammar.LR1Item) ItemSet {
	s := ItemSet{}
	for _, it := range items {
		s[it.Key()] = it
	}
	return s
}

// Add inserts an item, returning whether the set changed.
func (s ItemSet) Add(it grammar.LR1Item) bool {
	k := it.Key()
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = it
	return true
}

// Items returns the set's items in a stable (sorted by key) order, so that
// canonical-collection output and table construction are deterministic.
func (s ItemSet) Items() []grammar.LR1Item {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sortStrings(keys)

	out := make([]grammar.LR1Item, 0, len(s))
	for _, k := range keys {
		out = append(out, s[k])
	}
	return out
}

// SetKey returns a key over the full (lhs, rhs, dot, lookahead) content of
// every item in s, used to detect set-equality between states. Unlike an
// LR(0) core key, this does not collapse states whose items share a core
// but differ in lookaheads -- that collapsing is LALR(1) merging, which is
// out of scope here.
func (s ItemSet) SetKey() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sortStrings(keys)
	out := ""
	for _, k := range keys {
		out += k + "\x02"
	}
	return out
}

func sortStrings(s []string) {
	// local insertion sort avoids importing sort twice across this small
	// package; n is always the number of items in one state, which is
	// small in practice, but correctness, not speed, is what matters here.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Closure computes CLOSURE(I): starting from I, repeatedly, for every item
// [A -> α•Bβ, a] with B a non-terminal, for every production B -> γ, for
// every b in FIRST(βa) with b != ε, add [B -> •γ, b], until a fixed point
// is reached.
func Closure(g grammar.Grammar, first grammar.FirstSets, I ItemSet) ItemSet {
	closure := ItemSet{}
	for k, v := range I {
		closure[k] = v
	}

	changed := true
	for changed {
		changed = false

		for _, item := range closure.Items() {
			B, ok := item.NextSymbol()
			if !ok || !g.IsNonTerminal(B) {
				continue
			}

			beta := append([]string{}, item.Right[1:]...)
			betaA := append(beta, item.Lookahead)
			lookaheads := grammar.FirstOfString(betaA, first)

			for _, gamma := range g.ProductionsFor(B) {
				var right []string
				if gamma.IsEpsilon() {
					right = []string{grammar.Epsilon}
				} else {
					right = append([]string{}, gamma.RHS...)
				}

				for b := range lookaheads {
					if b == grammar.Epsilon {
						continue
					}
					newItem := grammar.LR1Item{
						LR0Item: grammar.LR0Item{
							LHS:   B,
							Left:  nil,
							Right: right,
						},
						Lookahead: b,
					}
					if closure.Add(newItem) {
						changed = true
					}
				}
			}
		}
	}

	return closure
}

// Goto computes GOTO(I, X): let J be the set of items [A -> αX•β, a] for
// every [A -> α•Xβ, a] in I, then return CLOSURE(J). An empty J yields an
// empty set (no transition).
func Goto(g grammar.Grammar, first grammar.FirstSets, I ItemSet, X string) ItemSet {
	J := ItemSet{}
	for _, item := range I.Items() {
		next, ok := item.NextSymbol()
		if !ok || next != X {
			continue
		}
		advanced := grammar.LR1Item{
			LR0Item:   item.LR0Item.Advance(),
			Lookahead: item.Lookahead,
		}
		J.Add(advanced)
	}

	if len(J) == 0 {
		return J
	}

	return Closure(g, first, J)
}
