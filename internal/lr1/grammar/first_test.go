package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Grammar_ComputeFirstSets(t *testing.T) {
	assert := assert.New(t)

	// E -> T E'
	// E' -> + T E' | ε
	// T -> id
	g := New([]Production{
		{LHS: "E", RHS: []string{"T", "E'"}},
		{LHS: "E'", RHS: []string{"+", "T", "E'"}},
		{LHS: "E'", RHS: []string{Epsilon}},
		{LHS: "T", RHS: []string{"id"}},
	})

	first := g.ComputeFirstSets()

	assert.ElementsMatch([]string{"id"}, first["E"].Sorted())
	assert.ElementsMatch([]string{"+", Epsilon}, first["E'"].Sorted())
	assert.ElementsMatch([]string{"id"}, first["T"].Sorted())
	assert.ElementsMatch([]string{"+"}, first["+"].Sorted())
}

func Test_FirstOfString(t *testing.T) {
	g := New([]Production{
		{LHS: "A", RHS: []string{"a"}},
		{LHS: "A", RHS: []string{Epsilon}},
		{LHS: "B", RHS: []string{"b"}},
	})
	first := g.ComputeFirstSets()

	testCases := []struct {
		name     string
		beta     []string
		expected []string
	}{
		{
			name:     "empty string is nullable",
			beta:     nil,
			expected: []string{Epsilon},
		},
		{
			name:     "nullable prefix falls through to next symbol",
			beta:     []string{"A", "B"},
			expected: []string{"a", "b"},
		},
		{
			name:     "non-nullable first symbol stops early",
			beta:     []string{"B", "A"},
			expected: []string{"b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := FirstOfString(tc.beta, first)
			assert.ElementsMatch(t, tc.expected, actual.Sorted())
		})
	}
}

func Test_Grammar_FirstTable(t *testing.T) {
	assert := assert.New(t)

	g := New([]Production{
		{LHS: "S", RHS: []string{"A"}},
		{LHS: "A", RHS: []string{"a"}},
	})
	first := g.ComputeFirstSets()

	table := g.FirstTable(first)

	assert.Equal([]FirstTableEntry{
		{NonTerminal: "A", First: []string{"a"}},
		{NonTerminal: "S", First: []string{"a"}},
	}, table)
}
