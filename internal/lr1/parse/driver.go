package parse

import (
	"strings"

	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
	"github.com/corvidlabs/lr1construct/internal/util"
)

// Tokenize splits input into the token stream the driver consumes:
// whitespace separates tokens; '(' and ')' are always standalone
// single-character tokens; everything else between separators is one
// token. The end marker is appended by Run, not here, so Tokenize's output
// reflects only what the caller actually typed.
//
// Ported directly from original_source/app.py's parse() tokenizer loop.
func Tokenize(input string) []string {
	var tokens []string
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			tokens = append(tokens, string(c))
			i++
		default:
			start := i
			for i < len(runes) {
				c2 := runes[i]
				if c2 == ' ' || c2 == '\t' || c2 == '\n' || c2 == '\r' || c2 == '(' || c2 == ')' {
					break
				}
				i++
			}
			tokens = append(tokens, string(runes[start:i]))
		}
	}
	return tokens
}

// Step records one iteration of the shift-reduce driver loop: the
// stack/input snapshot and the action taken, mirroring the original's
// per-step trace entries.
type Step struct {
	StepNum int
	Stack   []string // symbols, not state IDs, oldest first
	Input   []string // remaining tokens including the end marker
	Action  string   // human-readable: "shift 3", "reduce 2", "accept", "error"
}

// Result is the outcome of running the driver against a token stream.
type Result struct {
	Accepted bool
	Steps    []Step
	Tree     *Tree

	// ErrorState/ErrorToken/Expected are populated when Accepted is false
	// because the driver hit a missing ACTION cell (a parse error), not a
	// step-ceiling abort.
	ErrorState  int
	ErrorToken  string
	Expected    []string
	StepLimited bool
}

// stepCeiling bounds the driver loop so a malformed table (e.g. one built
// from a grammar with an unresolved conflict picked arbitrarily) can never
// hang a request: max(1000, 50*len(tokens)).
func stepCeiling(tokenCount int) int {
	limit := 50 * tokenCount
	if limit < 1000 {
		limit = 1000
	}
	return limit
}

// Run drives tables against tokens using the classic shift-reduce
// algorithm: a state stack and a parallel symbol/tree stack, consulting
// ACTION on (top-of-state-stack, current token) and GOTO on (state, lhs)
// after every reduce. A conflict cell is resolved by taking its first
// alternative -- a conflicting cell still has one usable shift/reduce
// action for driving, since conflicts are reported rather than fatal --
// and that first alternative is whichever of shift/reduce/accept table
// synthesis wrote first, which for a grammar with no real conflicts is
// simply the correct action.
//
// Ported from original_source/app.py's parse(), generalized to report a
// structured error on unknown symbols instead of just an "ERROR" trace
// action.
func Run(t *Tables, tokens []string) *Result {
	allTokens := append(append([]string{}, tokens...), grammar.EndMarker)

	stateStack := util.Stack[int]{}
	stateStack.Push(0)
	symbolStack := util.Stack[string]{}
	treeStack := util.Stack[*Tree]{}

	var steps []Step
	limit := stepCeiling(len(allTokens))

	i := 0
	stepNum := 0
	for i < len(allTokens) && stepNum < limit {
		stepNum++
		state := stateStack.Peek()
		token := allTokens[i]

		act := t.Action.Get(state, token)
		if act.Kind == ActionConflict {
			act = act.Alternatives[0]
		}

		switch act.Kind {
		case ActionShift:
			stateStack.Push(act.ShiftState)
			symbolStack.Push(token)
			treeStack.Push(leaf(token, token))
			steps = append(steps, Step{
				StepNum: stepNum,
				Stack:   append([]string{}, symbolStack.Of...),
				Input:   append([]string{}, allTokens[i:]...),
				Action:  act.String(),
			})
			i++

		case ActionReduce, ActionAccept:
			if act.Kind == ActionAccept {
				steps = append(steps, Step{
					StepNum: stepNum,
					Stack:   append([]string{}, symbolStack.Of...),
					Input:   []string{grammar.EndMarker},
					Action:  "accept",
				})
				var tree *Tree
				if !treeStack.Empty() {
					tree = treeStack.Peek()
				}
				return &Result{Accepted: true, Steps: steps, Tree: tree}
			}

			prod := t.Grammar.Productions[act.ReduceProd]
			n := len(prod.RHS)
			if prod.IsEpsilon() {
				n = 0
			}

			children := make([]*Tree, n)
			for k := 0; k < n; k++ {
				if !symbolStack.Empty() {
					symbolStack.Pop()
				}
				if !stateStack.Empty() {
					stateStack.Pop()
				}
				if !treeStack.Empty() {
					children[n-1-k] = treeStack.Pop()
				}
			}

			node := reduceNode(prod, children)
			treeStack.Push(node)
			symbolStack.Push(prod.LHS)

			cur := 0
			if !stateStack.Empty() {
				cur = stateStack.Peek()
			}
			if target, ok := t.Goto.Get(cur, prod.LHS); ok {
				stateStack.Push(target)
			}

			steps = append(steps, Step{
				StepNum: stepNum,
				Stack:   append([]string{}, symbolStack.Of...),
				Input:   append([]string{}, allTokens[i:]...),
				Action:  act.String(),
			})

		default: // ActionNone: no cell for (state, token).
			steps = append(steps, Step{
				StepNum: stepNum,
				Stack:   append([]string{}, symbolStack.Of...),
				Input:   append([]string{}, allTokens[i:]...),
				Action:  "error",
			})
			return &Result{
				Accepted:   false,
				Steps:      steps,
				ErrorState: state,
				ErrorToken: token,
				Expected:   expectedTokens(t, state),
			}
		}
	}

	return &Result{Accepted: false, Steps: steps, StepLimited: true}
}

// expectedTokens lists every terminal (or end marker) for which state has a
// non-empty ACTION cell, for the parse-error report, grounded on
// ictiobus/parse/lr.go's findExpectedTokens/getExpectedString.
func expectedTokens(t *Tables, state int) []string {
	row, ok := t.Action[state]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(row))
	for sym, act := range row {
		if act.Kind != ActionNone {
			out = append(out, sym)
		}
	}
	return util.NewStringSet(out).Sorted()
}

// ExpectedString renders an expected-token list as a human sentence joined
// by util.MakeTextList, e.g. "an 'id' and a '('" for {"id", "("}; the end
// marker is rendered as "end of input". Grounded on ictiobus/parse/lr.go's
// getExpectedString/util.ArticleFor.
func ExpectedString(expected []string) string {
	if len(expected) == 0 {
		return ""
	}
	phrased := make([]string, len(expected))
	for i, sym := range expected {
		phrased[i] = util.ArticleFor(sym) + " " + quoteSymbol(sym)
	}
	return util.MakeTextList(phrased)
}

func quoteSymbol(sym string) string {
	if sym == grammar.EndMarker {
		return "end of input"
	}
	return "'" + strings.TrimSpace(sym) + "'"
}
