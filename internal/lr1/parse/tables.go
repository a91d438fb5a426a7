package parse

import (
	"sort"
	"strconv"

	"github.com/corvidlabs/lr1construct/internal/lr1/automaton"
	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
	"github.com/dekarrin/rosed"
)

// Tables is the synthesized ACTION/GOTO table pair plus the canonical
// collection and augmented grammar it was built from. Unlike
// ictiobus/parse/clr1.go's constructCanonicalLR1ParseTable, BuildTables
// never fails on a conflicting cell -- conflicts are recorded in Conflicts
// and also live inside the ACTION cell itself.
type Tables struct {
	Grammar    grammar.Grammar // augmented
	Collection *automaton.Collection
	Action     ActionTable
	Goto       GotoTable
	Conflicts  []Conflict
}

// BuildTables synthesizes the canonical LR(1) ACTION/GOTO tables for g: for
// every state/item, shift on a terminal, accept on the augmented start,
// reduce on a complete item, goto on a non-terminal. g need not already be
// augmented; BuildTables augments it. This is grounded on
// ictiobus/parse/clr1.go's constructCanonicalLR1ParseTable, with every
// `return nil, err` on a conflicting write replaced by recording the
// conflict and continuing instead.
func BuildTables(g grammar.Grammar) (*Tables, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	aug := g.Augmented()
	first := aug.ComputeFirstSets()
	coll := automaton.Build(aug, first)

	t := &Tables{
		Grammar:    aug,
		Collection: coll,
		Action:     ActionTable{},
		Goto:       GotoTable{},
	}

	for _, state := range coll.States {
		for _, item := range state.Items.Items() {
			sym, hasNext := item.NextSymbol()

			switch {
			case hasNext && aug.IsTerminal(sym):
				target, ok := coll.Transitions[state.ID][sym]
				if !ok {
					continue
				}
				t.Action.set(state.ID, sym, Action{Kind: ActionShift, ShiftState: target})

			case hasNext && aug.IsNonTerminal(sym):
				target, ok := coll.Transitions[state.ID][sym]
				if !ok {
					continue
				}
				if t.Goto[state.ID] == nil {
					t.Goto[state.ID] = map[string]int{}
				}
				t.Goto[state.ID][sym] = target

			case !hasNext:
				prod := item.Production()
				if item.LHS == aug.AugmentedStartSymbol() && item.Lookahead == grammar.EndMarker {
					t.Action.set(state.ID, grammar.EndMarker, Action{Kind: ActionAccept})
					continue
				}
				idx := aug.Index(prod)
				t.Action.set(state.ID, item.Lookahead, Action{Kind: ActionReduce, ReduceProd: idx})
			}
		}
	}

	t.collectConflicts()
	return t, nil
}

// collectConflicts walks the finished ACTION table and extracts every
// Conflict cell into t.Conflicts, sorted by (state, symbol) for
// deterministic reporting.
func (t *Tables) collectConflicts() {
	var states []int
	for s := range t.Action {
		states = append(states, s)
	}
	sort.Ints(states)

	for _, s := range states {
		var symbols []string
		for sym := range t.Action[s] {
			symbols = append(symbols, sym)
		}
		sort.Strings(symbols)

		for _, sym := range symbols {
			act := t.Action[s][sym]
			if act.Kind != ActionConflict {
				continue
			}
			t.Conflicts = append(t.Conflicts, Conflict{
				State:        s,
				Symbol:       sym,
				Grammar:      t.Grammar,
				Alternatives: act.Alternatives,
			})
		}
	}
}

// HasConflicts reports whether table synthesis recorded any ACTION
// conflicts.
func (t *Tables) HasConflicts() bool {
	return len(t.Conflicts) > 0
}

// String renders the ACTION/GOTO tables as an aligned grid, in the manner
// of ictiobus/parse/clr1.go's canonicalLR1Table.String(), using rosed for
// column alignment.
func (t *Tables) String() string {
	terminals := t.Grammar.Terminals()
	terminals = append(terminals, grammar.EndMarker)
	nonTerminals := t.Grammar.NonTerminals()

	var data [][]string

	header := []string{"STATE", "|"}
	for _, term := range terminals {
		header = append(header, "A:"+term)
	}
	header = append(header, "|")
	for _, nt := range nonTerminals {
		header = append(header, "G:"+nt)
	}
	data = append(data, header)

	for _, state := range t.Collection.States {
		row := []string{strconv.Itoa(state.ID), "|"}
		for _, term := range terminals {
			row = append(row, t.Action.Get(state.ID, term).String())
		}
		row = append(row, "|")
		for _, nt := range nonTerminals {
			cell := ""
			if target, ok := t.Goto.Get(state.ID, nt); ok {
				cell = strconv.Itoa(target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
