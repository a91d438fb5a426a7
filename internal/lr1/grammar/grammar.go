package grammar

import (
	"fmt"
	"strings"

	"github.com/corvidlabs/lr1construct/internal/util"
)

// Grammar is an ordered list of productions, a distinguished start symbol,
// and the two disjoint symbol sets classified from it.
//
// Productions is insertion-ordered and that order is the reduce identifier
// used throughout the core; production 0 after augmentation is S' -> S,
// except when Augmented reuses a primed non-terminal already in the
// grammar, in which case no production is prepended. Grammar is immutable once built; Augmented returns a new value
// rather than mutating the receiver.
type Grammar struct {
	Productions []Production

	start    string
	augStart string // set only once Augmented() has been called

	nonTerminals util.StringSet
	terminals    util.StringSet
}

// New builds a Grammar from an ordered list of productions. The start
// symbol is the LHS of the first production. A symbol is classified as a
// non-terminal iff it appears as some LHS; everything else appearing on
// any RHS except ε is a terminal.
func New(productions []Production) Grammar {
	g := Grammar{
		Productions:  productions,
		nonTerminals: util.NewStringSet(),
		terminals:    util.StringSet{},
	}
	if len(productions) > 0 {
		g.start = productions[0].LHS
	}

	for _, p := range productions {
		g.nonTerminals.Add(p.LHS)
	}

	rhsSymbols := util.NewStringSet()
	for _, p := range productions {
		if p.IsEpsilon() {
			continue
		}
		for _, sym := range p.RHS {
			rhsSymbols.Add(sym)
		}
	}

	g.terminals = util.NewStringSet()
	for sym := range rhsSymbols {
		if !g.nonTerminals.Has(sym) {
			g.terminals.Add(sym)
		}
	}

	return g
}

// StartSymbol returns the grammar's (non-augmented) start symbol S.
func (g Grammar) StartSymbol() string {
	return g.start
}

// IsAugmented returns whether Augmented has already produced this value.
func (g Grammar) IsAugmented() bool {
	return g.augStart != ""
}

// AugmentedStartSymbol returns S', valid only after Augmented has been
// called.
func (g Grammar) AugmentedStartSymbol() string {
	return g.augStart
}

// NonTerminals returns the grammar's non-terminal symbols in sorted order.
func (g Grammar) NonTerminals() []string {
	return g.nonTerminals.Sorted()
}

// Terminals returns the grammar's terminal symbols in sorted order.
func (g Grammar) Terminals() []string {
	return g.terminals.Sorted()
}

// IsTerminal returns whether sym was classified as a terminal.
func (g Grammar) IsTerminal(sym string) bool {
	return g.terminals.Has(sym)
}

// IsNonTerminal returns whether sym was classified as a non-terminal.
func (g Grammar) IsNonTerminal(sym string) bool {
	return g.nonTerminals.Has(sym)
}

// ProductionsFor returns every production whose LHS is nt, in insertion
// order.
func (g Grammar) ProductionsFor(nt string) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.LHS == nt {
			out = append(out, p)
		}
	}
	return out
}

// Augmented returns a copy of g with a fresh start production S' -> S
// prepended as production 0. If g already defines a non-terminal ending in
// a prime character, that symbol is reused as S': the first unit production
// with that LHS recovers the original start symbol, or, if no such
// production exists, the start symbol is taken by stripping the trailing
// prime(s) from the reused symbol's name. Calling Augmented on an
// already-augmented grammar is a no-op that returns g unchanged. Mirrors
// original_source/app.py's build_parser: reuse the first primed
// non-terminal found, never fall through to synthesizing a fresh one
// alongside it.
func (g Grammar) Augmented() Grammar {
	if g.IsAugmented() {
		return g
	}

	for _, nt := range g.NonTerminals() {
		if len(nt) == 0 || nt[len(nt)-1] != '\'' {
			continue
		}

		g2 := g
		g2.augStart = nt
		g2.start = strings.TrimRight(nt, "'")
		for _, p := range g.Productions {
			if p.LHS == nt && len(p.RHS) == 1 {
				g2.start = p.RHS[0]
				break
			}
		}
		return g2
	}

	augStart := g.start + "'"
	augProd := Production{LHS: augStart, RHS: []string{g.start}}
	newProds := make([]Production, 0, len(g.Productions)+1)
	newProds = append(newProds, augProd)
	newProds = append(newProds, g.Productions...)

	g2 := New(newProds)
	g2.start = g.start
	g2.augStart = augStart
	return g2
}

// Index returns the insertion-order index of p within Productions, or -1 if
// not present. This is the production's reduce identifier.
func (g Grammar) Index(p Production) int {
	for i, cand := range g.Productions {
		if cand.Equal(p) {
			return i
		}
	}
	return -1
}

// Validate returns an error describing why the grammar is unusable, or nil.
// An empty grammar (zero accepted productions) is the only failure mode the
// reader itself surfaces.
func (g Grammar) Validate() error {
	if len(g.Productions) == 0 {
		return fmt.Errorf("empty grammar")
	}
	return nil
}
