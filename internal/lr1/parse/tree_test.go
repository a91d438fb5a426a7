package parse

import (
	"testing"

	"github.com/corvidlabs/lr1construct/internal/lr1/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_reduceNode_epsilonProductionYieldsSyntheticLeaf(t *testing.T) {
	assert := assert.New(t)

	p := grammar.Production{LHS: "S", RHS: []string{grammar.Epsilon}}
	tree := reduceNode(p, nil)

	assert.Equal("S", tree.Symbol)
	assert.Len(tree.Children, 1)
	assert.Equal(grammar.Epsilon, tree.Children[0].Symbol)
	assert.True(tree.Children[0].IsLeaf)
	assert.Empty(tree.Children[0].Children)
}

func Test_Run_emptyInputOnEpsilonGrammarYieldsEpsilonLeaf(t *testing.T) {
	assert := assert.New(t)

	g := grammar.ParseGrammar("S -> ε")
	tables, err := BuildTables(g)
	assert.NoError(err)

	result := Run(tables, Tokenize(""))

	assert.True(result.Accepted)
	assert.NotNil(result.Tree)
	assert.Equal("S", result.Tree.Symbol)
	assert.Len(result.Tree.Children, 1)
	assert.Equal(grammar.Epsilon, result.Tree.Children[0].Symbol)
}
