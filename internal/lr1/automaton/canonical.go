package automaton

import (
	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
)

// State is one member of the canonical collection: a closed LR(1) item set
// with a stable integer ID assigned by discovery order.
type State struct {
	ID    int
	Items ItemSet
}

// Collection is the canonical collection of LR(1) item sets for an
// augmented grammar, plus the transition relation between them.
type Collection struct {
	States []State

	// Transitions[stateID][symbol] = target state ID.
	Transitions map[int]map[string]int
}

// StateByID returns the state with the given ID. Panics if out of range;
// callers only ever index with IDs this package itself produced.
func (c *Collection) StateByID(id int) State {
	return c.States[id]
}

// SymbolsAfterDot returns the set of symbols on which state stateID has at
// least one outgoing transition, i.e. the symbols immediately following a
// dot in some item of that state.
func (c *Collection) SymbolsAfterDot(stateID int) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range c.States[stateID].Items.Items() {
		sym, ok := item.NextSymbol()
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	return out
}

// Build enumerates all LR(1) item sets reachable from the augmented start
// item. g must already be augmented (its Productions[0] is S' -> S); the
// caller (parse.BuildTables) is responsible for calling g.Augmented()
// first. ictiobus's constructCanonicalLR1ParseTable instead receives the
// non-augmented grammar and augments it itself -- here the augmentation
// happens one layer up so that Build, Closure, and Goto all agree on a
// single already-augmented grammar.Grammar value.
func Build(g grammar.Grammar, first grammar.FirstSets) *Collection {
	startItem := grammar.LR1Item{
		LR0Item: grammar.LR0Item{
			LHS:   g.AugmentedStartSymbol(),
			Right: []string{g.StartSymbol()},
		},
		Lookahead: grammar.EndMarker,
	}

	startSet := Closure(g, first, NewItemSet(startItem))

	coll := &Collection{
		Transitions: map[int]map[string]int{},
	}
	coll.States = append(coll.States, State{ID: 0, Items: startSet})

	bySetKey := map[string]int{startSet.SetKey(): 0}

	worklist := []int{0}
	for len(worklist) > 0 {
		stateID := worklist[0]
		worklist = worklist[1:]

		for _, X := range coll.SymbolsAfterDot(stateID) {
			J := Goto(g, first, coll.States[stateID].Items, X)
			if len(J) == 0 {
				continue
			}

			key := J.SetKey()
			targetID, exists := bySetKey[key]
			if !exists {
				targetID = len(coll.States)
				coll.States = append(coll.States, State{ID: targetID, Items: J})
				bySetKey[key] = targetID
				worklist = append(worklist, targetID)
			}

			if coll.Transitions[stateID] == nil {
				coll.Transitions[stateID] = map[string]int{}
			}
			coll.Transitions[stateID][X] = targetID
		}
	}

	return coll
}
