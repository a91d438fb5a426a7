// Package parse implements ACTION/GOTO table synthesis and the
// shift-reduce parser driver. It is grounded on ictiobus/parse
// (lraction.go, clr1.go, lr.go), generalized so that a conflicting ACTION
// cell is recorded as data rather than failing construction the way
// ictiobus/parse/clr1.go does.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
)

// ActionKind is the tag of an ACTION cell.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
	ActionConflict
)

// Action is one ACTION cell: shift(state), reduce(production), accept, or
// conflict([]Action). Conflict cells never nest; appending to one flattens
// the new alternative into Alternatives alongside the existing ones.
type Action struct {
	Kind ActionKind

	ShiftState int
	ReduceProd int // index into the augmented grammar's Productions

	Alternatives []Action // populated only when Kind == ActionConflict
}

// Equal reports whether two non-conflict actions denote the same decision.
func (a Action) Equal(o Action) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case ActionShift:
		return a.ShiftState == o.ShiftState
	case ActionReduce:
		return a.ReduceProd == o.ReduceProd
	case ActionAccept, ActionNone:
		return true
	default:
		return false
	}
}

// String renders the action as a compact human-readable label -- shift n,
// reduce k, accept, or conflict(...) -- rather than literal JSON; JSON
// encoding is produced separately by the report layer.
func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.ShiftState)
	case ActionReduce:
		return fmt.Sprintf("reduce %d", a.ReduceProd)
	case ActionAccept:
		return "accept"
	case ActionConflict:
		parts := make([]string, len(a.Alternatives))
		for i, alt := range a.Alternatives {
			parts[i] = alt.String()
		}
		return "conflict(" + strings.Join(parts, " / ") + ")"
	default:
		return ""
	}
}

// MarshalJSON renders the action as a tagged two-element array: ["shift",
// n], ["reduce", k], ["accept", null], or ["conflict", [...]] with each
// alternative recursively tagged the same way. original_source/app.py has
// no equivalent since it has no conflict concept; this extends its
// tuple-as-array convention to cover conflicts.
func (a Action) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case ActionShift:
		return json.Marshal([2]interface{}{"shift", a.ShiftState})
	case ActionReduce:
		return json.Marshal([2]interface{}{"reduce", a.ReduceProd})
	case ActionAccept:
		return json.Marshal([2]interface{}{"accept", nil})
	case ActionConflict:
		return json.Marshal([2]interface{}{"conflict", a.Alternatives})
	default:
		return json.Marshal([2]interface{}{"error", nil})
	}
}

// merge combines a new candidate action into the existing cell value,
// producing a conflict if the two disagree: if a cell would be written
// twice with different values, the cell becomes conflict([old, new, ...]);
// further writes append.
func merge(existing, next Action) Action {
	if existing.Kind == ActionNone {
		return next
	}

	if existing.Kind == ActionConflict {
		for _, alt := range existing.Alternatives {
			if alt.Equal(next) {
				return existing
			}
		}
		existing.Alternatives = append(existing.Alternatives, next)
		return existing
	}

	if existing.Equal(next) {
		return existing
	}

	return Action{Kind: ActionConflict, Alternatives: []Action{existing, next}}
}

// GotoTable maps (state, non-terminal) pairs to a successor state.
type GotoTable map[int]map[string]int

// Get returns the goto target for (state, symbol) and whether it exists.
func (t GotoTable) Get(state int, symbol string) (int, bool) {
	row, ok := t[state]
	if !ok {
		return 0, false
	}
	v, ok := row[symbol]
	return v, ok
}

// ActionTable maps (state, terminal-or-$) pairs to an Action.
type ActionTable map[int]map[string]Action

// Get returns the ACTION cell for (state, symbol), or a zero Action
// (ActionNone) if absent -- an absent cell is the parse-error case: an
// unrecognized symbol in the input at that state.
func (t ActionTable) Get(state int, symbol string) Action {
	row, ok := t[state]
	if !ok {
		return Action{}
	}
	return row[symbol]
}

func (t ActionTable) set(state int, symbol string, act Action) {
	row, ok := t[state]
	if !ok {
		row = map[string]Action{}
		t[state] = row
	}
	row[symbol] = merge(row[symbol], act)
}

// Conflict describes a single surfaced ACTION conflict for the report
// layer, naming the state and symbol involved in addition to the
// alternatives already carried by Action.
type Conflict struct {
	State      int
	Symbol     string
	Grammar    grammar.Grammar
	Alternatives []Action
}

func (c Conflict) String() string {
	parts := make([]string, len(c.Alternatives))
	for i, a := range c.Alternatives {
		parts[i] = describeAction(a, c.Grammar)
	}
	return fmt.Sprintf("state %d, symbol %q: %s", c.State, c.Symbol, strings.Join(parts, " vs. "))
}

func describeAction(a Action, g grammar.Grammar) string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift to state %d", a.ShiftState)
	case ActionReduce:
		if a.ReduceProd >= 0 && a.ReduceProd < len(g.Productions) {
			return fmt.Sprintf("reduce by %s", g.Productions[a.ReduceProd].String())
		}
		return fmt.Sprintf("reduce by production %d", a.ReduceProd)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}
