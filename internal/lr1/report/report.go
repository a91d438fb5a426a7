// Package report implements the single entrypoint that ties the grammar
// reader, FIRST engine, canonical collection builder, table synthesizer,
// parser driver, and DOT exporter together into one response value.
// Grounded on original_source/app.py's handle_parse_request, restructured
// as a plain Go function rather than a Flask view so it can be called
// identically from the HTTP server and the REPL.
package report

import (
	"strings"

	"github.com/corvidlabs/lr1construct/internal/icerrors"
	"github.com/corvidlabs/lr1construct/internal/lr1/export"
	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
	"github.com/corvidlabs/lr1construct/internal/lr1/parse"
)

// Report is the full result of constructing a parser from a grammar and,
// optionally, driving it over an input string.
type Report struct {
	AugmentedGrammar    []AugmentedGrammarEntry
	FirstSets           map[string][]string // non-terminal -> FIRST set, matching original_source's first_sets_nonterminals
	FirstTable          []grammar.FirstTableEntry
	CanonicalCollection []StateView
	Tables              *parse.Tables
	DOT                 string

	Parsed bool // whether an input string was supplied at all
	Result *parse.Result
}

// AugmentedGrammarEntry is one dot position of one production of the
// augmented grammar: lhs, the RHS text with the dot inserted, and the full
// "lhs -> rhs" production text.
type AugmentedGrammarEntry struct {
	LHS        string
	RHS        string
	Production string
}

// StateView is the canonical-collection rendering used by the report: a
// state's id plus the item strings belonging to it.
type StateView struct {
	ID    int
	Items []string
}

// Build runs the full pipeline against grammarText and, if inputString is
// non-empty, drives the resulting tables over it. An empty grammarText (or
// one with zero accepted productions after reading) yields
// icerrors.ErrEmptyGrammar; a parse that hits the driver's step ceiling
// yields icerrors.ErrInternal.
func Build(grammarText, inputString string) (*Report, error) {
	if strings.TrimSpace(grammarText) == "" {
		return nil, icerrors.New("grammar text was empty", icerrors.ErrEmptyGrammar)
	}

	g := grammar.ParseGrammar(grammarText)
	if err := g.Validate(); err != nil {
		return nil, icerrors.New("grammar produced no usable productions", icerrors.ErrEmptyGrammar)
	}

	tables, err := parse.BuildTables(g)
	if err != nil {
		return nil, icerrors.New("failed to construct parse tables", icerrors.ErrInternal, err)
	}

	firstSets := tables.Grammar.ComputeFirstSets()

	rep := &Report{
		AugmentedGrammar: augmentedGrammarEntries(tables.Grammar),
		FirstSets:        firstSetsByNonTerminal(tables.Grammar, firstSets),
		FirstTable:       tables.Grammar.FirstTable(firstSets),
		Tables:           tables,
		DOT:              export.DOT(tables.Collection),
	}

	for _, state := range tables.Collection.States {
		var items []string
		for _, item := range state.Items.Items() {
			items = append(items, item.String())
		}
		rep.CanonicalCollection = append(rep.CanonicalCollection, StateView{ID: state.ID, Items: items})
	}

	if strings.TrimSpace(inputString) != "" {
		rep.Parsed = true
		tokens := parse.Tokenize(inputString)
		rep.Result = parse.Run(tables, tokens)
		if rep.Result.StepLimited {
			return nil, icerrors.New("parser exceeded its step ceiling", icerrors.ErrInternal)
		}
	}

	return rep, nil
}

// augmentedGrammarEntries renders every dot position (0..len(rhs) inclusive)
// of every production of g (already augmented), matching
// original_source/app.py's get_augmented_grammar. An epsilon production's
// RHS is treated literally as the one-element list [ε], so it contributes
// two entries (dot before and dot after), unlike DottedString's
// single-position item rendering.
func augmentedGrammarEntries(g grammar.Grammar) []AugmentedGrammarEntry {
	var out []AugmentedGrammarEntry
	for _, p := range g.Productions {
		rhs := p.RHS
		if p.IsEpsilon() {
			rhs = []string{grammar.Epsilon}
		}

		for dotPos := 0; dotPos <= len(rhs); dotPos++ {
			parts := make([]string, 0, len(rhs)+1)
			for i, sym := range rhs {
				if i == dotPos {
					parts = append(parts, "•")
				}
				parts = append(parts, sym)
			}
			if dotPos == len(rhs) {
				parts = append(parts, "•")
			}

			rhsText := strings.Join(parts, " ")
			out = append(out, AugmentedGrammarEntry{
				LHS:        p.LHS,
				RHS:        rhsText,
				Production: p.LHS + " -> " + rhsText,
			})
		}
	}
	return out
}

// firstSetsByNonTerminal filters first to non-terminals only and converts
// each FIRST set to a sorted slice, matching original_source/app.py's
// first_sets_nonterminals response key.
func firstSetsByNonTerminal(g grammar.Grammar, first grammar.FirstSets) map[string][]string {
	out := make(map[string][]string)
	for _, nt := range g.NonTerminals() {
		out[nt] = first[nt].Sorted()
	}
	return out
}
