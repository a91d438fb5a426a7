package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseGrammar(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []Production
	}{
		{
			name: "single production",
			text: "S -> a",
			expected: []Production{
				{LHS: "S", RHS: []string{"a"}},
			},
		},
		{
			name: "alternatives on one line",
			text: "S -> a | b",
			expected: []Production{
				{LHS: "S", RHS: []string{"a"}},
				{LHS: "S", RHS: []string{"b"}},
			},
		},
		{
			name: "continuation line",
			text: "S -> a\n| b\n| c",
			expected: []Production{
				{LHS: "S", RHS: []string{"a"}},
				{LHS: "S", RHS: []string{"b"}},
				{LHS: "S", RHS: []string{"c"}},
			},
		},
		{
			name: "epsilon production",
			text: "S -> ε",
			expected: []Production{
				{LHS: "S", RHS: []string{Epsilon}},
			},
		},
		{
			name: "epsilon spelled out",
			text: "S -> epsilon",
			expected: []Production{
				{LHS: "S", RHS: []string{Epsilon}},
			},
		},
		{
			name: "unicode arrow",
			text: "S → a b",
			expected: []Production{
				{LHS: "S", RHS: []string{"a", "b"}},
			},
		},
		{
			name: "quoted terminal with spaces",
			text: "S -> 'a b' c",
			expected: []Production{
				{LHS: "S", RHS: []string{"a b", "c"}},
			},
		},
		{
			name: "parens are standalone symbols",
			text: "S -> ( E )",
			expected: []Production{
				{LHS: "S", RHS: []string{"(", "E", ")"}},
			},
		},
		{
			name: "malformed line is skipped",
			text: "this has no arrow\nS -> a",
			expected: []Production{
				{LHS: "S", RHS: []string{"a"}},
			},
		},
		{
			name: "continuation without a prior LHS is skipped",
			text: "| a",
			expected: nil,
		},
		{
			name:     "blank text",
			text:     "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := ParseGrammar(tc.text)

			assert.Equal(tc.expected, g.Productions)
		})
	}
}

func Test_Grammar_Validate(t *testing.T) {
	assert := assert.New(t)

	assert.Error(New(nil).Validate())
	assert.NoError(New([]Production{{LHS: "S", RHS: []string{"a"}}}).Validate())
}

func Test_Grammar_symbolClassification(t *testing.T) {
	assert := assert.New(t)

	g := ParseGrammar("S -> A b\nA -> a | ε")

	assert.ElementsMatch([]string{"S", "A"}, g.NonTerminals())
	assert.ElementsMatch([]string{"a", "b"}, g.Terminals())
	assert.True(g.IsNonTerminal("S"))
	assert.True(g.IsTerminal("b"))
	assert.False(g.IsTerminal("S"))
}
