package api

import (
	"fmt"

	"github.com/corvidlabs/lr1construct/internal/lr1/parse"
	"github.com/corvidlabs/lr1construct/internal/lr1/report"
	"github.com/corvidlabs/lr1construct/internal/util"
)

// toParseResponse flattens a report.Report into ParseResponse's wire shape,
// in the manner of original_source/app.py's handle_parse_request response
// assembly (goto_table keyed "state,symbol", action_table keyed by nested
// state/symbol, etc.), but with a typed Go struct instead of an ad hoc dict.
func toParseResponse(rep *report.Report) ParseResponse {
	resp := ParseResponse{
		FirstSets:          rep.FirstSets,
		ParsingTableAction: map[int]map[string]parse.Action{},
		ParsingTableGoto:   map[string]int{},
		LR1Dot:             rep.DOT,
	}

	for _, entry := range rep.AugmentedGrammar {
		resp.AugmentedGrammar = append(resp.AugmentedGrammar, AugmentedGrammarEntry{
			LHS:        entry.LHS,
			RHS:        entry.RHS,
			Production: entry.Production,
		})
	}

	for _, entry := range rep.FirstTable {
		resp.FirstTable = append(resp.FirstTable, FirstSetEntry{NonTerminal: entry.NonTerminal, First: entry.First})
	}

	for _, st := range rep.CanonicalCollection {
		resp.CanonicalCollection = append(resp.CanonicalCollection, StateEntry{ID: st.ID, Items: st.Items})
	}

	for _, state := range rep.Tables.Collection.States {
		row := map[string]parse.Action{}
		for _, sym := range util.OrderedKeys(rep.Tables.Action[state.ID]) {
			row[sym] = rep.Tables.Action[state.ID][sym]
		}
		if len(row) > 0 {
			resp.ParsingTableAction[state.ID] = row
		}

		for _, sym := range util.OrderedKeys(rep.Tables.Goto[state.ID]) {
			key := fmt.Sprintf("%d,%s", state.ID, sym)
			resp.ParsingTableGoto[key] = rep.Tables.Goto[state.ID][sym]
		}
	}

	for _, c := range rep.Tables.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictEntry{
			State:        c.State,
			Symbol:       c.Symbol,
			Alternatives: c.Alternatives,
		})
	}

	if rep.Parsed && rep.Result != nil {
		resp.Accepted = rep.Result.Accepted
		for _, step := range rep.Result.Steps {
			resp.ParsingSteps = append(resp.ParsingSteps, StepEntry{
				Step:   step.StepNum,
				Stack:  joinSpace(step.Stack),
				Input:  joinSpace(step.Input),
				Action: step.Action,
			})
		}
		resp.ParseTree = toTreeEntry(rep.Result.Tree)
	} else {
		resp.Accepted = true
		resp.ParsingSteps = []StepEntry{{Step: 1, Stack: "N/A", Input: "empty string", Action: "no input string supplied"}}
	}

	return resp
}

func toTreeEntry(t *parse.Tree) *TreeEntry {
	if t == nil {
		return nil
	}
	entry := &TreeEntry{Symbol: t.Symbol}
	if t.IsLeaf {
		entry.Token = t.Token
	}
	for _, child := range t.Children {
		entry.Children = append(entry.Children, toTreeEntry(child))
	}
	return entry
}

func joinSpace(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
