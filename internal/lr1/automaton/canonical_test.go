package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Build_constructsReachableStates(t *testing.T) {
	assert := assert.New(t)

	g := testGrammar()
	first := g.ComputeFirstSets()

	coll := Build(g, first)

	assert.NotEmpty(coll.States)
	assert.Equal(0, coll.States[0].ID)

	for i, state := range coll.States {
		assert.Equal(i, state.ID, "state IDs must be assigned by discovery order")
	}
}

func Test_Build_isDeduplicatedBySetEquality(t *testing.T) {
	assert := assert.New(t)

	g := testGrammar()
	first := g.ComputeFirstSets()

	coll := Build(g, first)

	seen := map[string]bool{}
	for _, state := range coll.States {
		key := state.Items.SetKey()
		assert.False(seen[key], "two states shared an identical item set")
		seen[key] = true
	}
}

func Test_Collection_SymbolsAfterDot(t *testing.T) {
	assert := assert.New(t)

	g := testGrammar()
	first := g.ComputeFirstSets()

	coll := Build(g, first)

	syms := coll.SymbolsAfterDot(0)
	assert.ElementsMatch([]string{"S", "C", "c", "d"}, syms)
}

func Test_Collection_Transitions_agreeWithGoto(t *testing.T) {
	assert := assert.New(t)

	g := testGrammar()
	first := g.ComputeFirstSets()

	coll := Build(g, first)

	for stateID, row := range coll.Transitions {
		for symbol, targetID := range row {
			expected := Goto(g, first, coll.States[stateID].Items, symbol)
			assert.Equal(expected.SetKey(), coll.States[targetID].Items.SetKey())
		}
	}
}
