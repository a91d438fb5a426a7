package export

import (
	"strconv"
	"strings"
	"testing"

	"github.com/corvidlabs/lr1construct/internal/lr1/automaton"
	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_DOT_rendersOneNodePerState(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New([]grammar.Production{
		{LHS: "S", RHS: []string{"a"}},
	}).Augmented()
	first := g.ComputeFirstSets()
	coll := automaton.Build(g, first)

	out := DOT(coll)

	assert.True(strings.HasPrefix(out, "digraph LR1 {"))
	assert.True(strings.HasSuffix(out, "}"))
	for _, state := range coll.States {
		assert.Contains(out, "I"+strconv.Itoa(state.ID)+" [label=")
	}
}

func Test_DOT_labelLinesAreTerminated(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New([]grammar.Production{
		{LHS: "S", RHS: []string{"a"}},
	}).Augmented()
	first := g.ComputeFirstSets()
	coll := automaton.Build(g, first)

	out := DOT(coll)

	// every label line must be valid (no inner text breaking the attribute)
	// -- a crude check is that each line carrying a label still ends with
	// the closing `"];`. Quote escaping itself is covered by
	// Test_escapeDOT_escapesBackslashesAndQuotes.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "label=\"") {
			assert.True(strings.HasSuffix(strings.TrimSpace(line), "\"];"))
		}
	}
}

func Test_escapeDOT_escapesBackslashesAndQuotes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(`a\\b`, escapeDOT(`a\b`))
	assert.Equal(`a\"b`, escapeDOT(`a"b`))
	assert.Equal(`a\\\"b`, escapeDOT(`a\"b`))
}

func Test_DOT_isDeterministic(t *testing.T) {
	assert := assert.New(t)

	g := grammar.ParseGrammar("S -> A | B\nA -> a\nB -> a").Augmented()
	first := g.ComputeFirstSets()
	coll := automaton.Build(g, first)

	first1 := DOT(coll)
	second := DOT(coll)

	assert.Equal(first1, second)
}
