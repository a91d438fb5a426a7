package api

import (
	"errors"
	"net/http"

	"github.com/corvidlabs/lr1construct/internal/icerrors"
	"github.com/corvidlabs/lr1construct/internal/lr1/parse"
	"github.com/corvidlabs/lr1construct/internal/lr1/report"
	"github.com/corvidlabs/lr1construct/server/result"
)

// ParseRequest is the JSON body of POST /api/v1/parse: a grammar text and
// an optional input string to drive the constructed parser over.
type ParseRequest struct {
	Grammar     string `json:"grammar"`
	InputString string `json:"input_string"`
}

// ParseResponse is the JSON body of a successful POST /api/v1/parse: the
// full constructed-parser report.
type ParseResponse struct {
	Accepted            bool                          `json:"accepted"`
	AugmentedGrammar    []AugmentedGrammarEntry        `json:"augmented_grammar"`
	FirstSets           map[string][]string            `json:"first_sets"`
	FirstTable          []FirstSetEntry                `json:"first_table"`
	CanonicalCollection []StateEntry                   `json:"canonical_collection"`
	ParsingTableAction  map[int]map[string]parse.Action `json:"parsing_table_action"`
	ParsingTableGoto    map[string]int                  `json:"parsing_table_goto"`
	ParsingSteps        []StepEntry                     `json:"parsing_steps"`
	ParseTree           *TreeEntry                      `json:"parse_tree"`
	Conflicts           []ConflictEntry                 `json:"conflicts"`
	LR1Dot              string                          `json:"lr1_dot"`
}

// AugmentedGrammarEntry is one dot position of one production of the
// augmented grammar, matching original_source/app.py's
// get_augmented_grammar response shape.
type AugmentedGrammarEntry struct {
	LHS        string `json:"lhs"`
	RHS        string `json:"rhs"`
	Production string `json:"production"`
}

// FirstSetEntry is one row of the FIRST-set table.
type FirstSetEntry struct {
	NonTerminal string   `json:"nonterminal"`
	First       []string `json:"first"`
}

// ConflictEntry describes a single surfaced ACTION conflict: the state and
// symbol it occurs at, and the competing actions, each tagged the same way
// an ordinary ACTION cell is.
type ConflictEntry struct {
	State        int           `json:"state"`
	Symbol       string        `json:"symbol"`
	Alternatives []parse.Action `json:"alternatives"`
}

// StateEntry is one canonical-collection state.
type StateEntry struct {
	ID    int      `json:"id"`
	Items []string `json:"items"`
}

// StepEntry is one row of the parse trace.
type StepEntry struct {
	Step   int    `json:"step"`
	Stack  string `json:"stack"`
	Input  string `json:"input"`
	Action string `json:"action"`
}

// TreeEntry is a parse-tree node, serialized recursively.
type TreeEntry struct {
	Symbol   string       `json:"symbol"`
	Token    string       `json:"token,omitempty"`
	Children []*TreeEntry `json:"children"`
}

// HTTPPostParse returns the handler for POST /api/v1/parse.
func (api API) HTTPPostParse() http.HandlerFunc {
	return Endpoint(api.epPostParse)
}

func (api API) epPostParse(req *http.Request) result.Result {
	var body ParseRequest
	if err := parseJSON(req, &body); err != nil {
		return result.BadRequest(err.Error(), "malformed parse request: %s", err.Error())
	}

	rep, err := report.Build(body.Grammar, body.InputString)
	if err != nil {
		if errors.Is(err, icerrors.ErrEmptyGrammar) {
			return result.BadRequest("The grammar must contain at least one production.", "empty grammar: %s", err.Error())
		}
		return result.InternalServerError("failed to construct parser: %s", err.Error())
	}

	return result.OK(toParseResponse(rep), "constructed parser for %d-production grammar", len(rep.Tables.Grammar.Productions))
}
