package grammar

import "github.com/corvidlabs/lr1construct/internal/util"

// FirstSets maps every symbol (terminal or non-terminal) of a grammar to
// its FIRST set. Terminals always map to the singleton set containing
// themselves.
type FirstSets map[string]util.StringSet

// ComputeFirstSets computes FIRST(X) for every symbol X of g to a fixed
// point, following the standard textbook definition. Ported directly from
// original_source/app.py's compute_first_sets, restructured as a per-symbol
// fixed-point loop.
func (g Grammar) ComputeFirstSets() FirstSets {
	first := FirstSets{}

	for _, t := range g.Terminals() {
		first[t] = util.NewStringSet([]string{t})
	}
	for _, nt := range g.NonTerminals() {
		first[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false

		for _, p := range g.Productions {
			before := len(first[p.LHS])

			if p.IsEpsilon() {
				first[p.LHS].Add(Epsilon)
			} else {
				nullableSoFar := true
				for _, sym := range p.RHS {
					symFirst, ok := first[sym]
					if !ok {
						// undeclared symbol on an RHS; treat as its own
						// singleton FIRST set so construction can still
						// proceed and the reader's classification rule
						// remains the sole source of truth.
						symFirst = util.NewStringSet([]string{sym})
						first[sym] = symFirst
					}

					for sym2 := range symFirst {
						if sym2 != Epsilon {
							first[p.LHS].Add(sym2)
						}
					}

					if !symFirst.Has(Epsilon) {
						nullableSoFar = false
						break
					}
				}
				if nullableSoFar {
					first[p.LHS].Add(Epsilon)
				}
			}

			if len(first[p.LHS]) != before {
				changed = true
			}
		}
	}

	return first
}

// FirstOfString computes FIRST(beta) for an arbitrary symbol string. The
// empty string's FIRST set is {ε}. This is the hot inner call of CLOSURE.
func FirstOfString(beta []string, first FirstSets) util.StringSet {
	if len(beta) == 0 {
		return util.NewStringSet([]string{Epsilon})
	}

	result := util.NewStringSet()
	for _, sym := range beta {
		symFirst, ok := first[sym]
		if !ok {
			symFirst = util.NewStringSet([]string{sym})
		}

		for s := range symFirst {
			if s != Epsilon {
				result.Add(s)
			}
		}

		if !symFirst.Has(Epsilon) {
			return result
		}
	}

	// every symbol in beta was nullable
	result.Add(Epsilon)
	return result
}

// FirstTableEntry is one row of a rendered FIRST-set table.
type FirstTableEntry struct {
	NonTerminal string
	First       []string
}

// FirstTable returns FIRST per non-terminal for display, sorted by
// non-terminal name with each FIRST set itself sorted.
func (g Grammar) FirstTable(first FirstSets) []FirstTableEntry {
	var out []FirstTableEntry
	for _, nt := range g.NonTerminals() {
		out = append(out, FirstTableEntry{
			NonTerminal: nt,
			First:       first[nt].Sorted(),
		})
	}
	return out
}
