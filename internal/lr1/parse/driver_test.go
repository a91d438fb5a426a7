package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "whitespace separated",
			input:    "id + id",
			expected: []string{"id", "+", "id"},
		},
		{
			name:     "parens are standalone even without spaces",
			input:    "(id)",
			expected: []string{"(", "id", ")"},
		},
		{
			name:     "mixed whitespace",
			input:    "id\t+\n id",
			expected: []string{"id", "+", "id"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.input))
		})
	}
}

func Test_Run_acceptsValidExpression(t *testing.T) {
	assert := assert.New(t)

	tables, err := BuildTables(exprGrammar())
	assert.NoError(err)

	result := Run(tables, Tokenize("id + id * id"))

	assert.True(result.Accepted)
	assert.False(result.StepLimited)
	assert.NotNil(result.Tree)
	assert.Equal("E", result.Tree.Symbol)
	assert.NotEmpty(result.Steps)
}

func Test_Run_acceptsParenthesizedExpression(t *testing.T) {
	assert := assert.New(t)

	tables, err := BuildTables(exprGrammar())
	assert.NoError(err)

	result := Run(tables, Tokenize("( id + id ) * id"))

	assert.True(result.Accepted)
}

func Test_Run_rejectsUnknownToken(t *testing.T) {
	assert := assert.New(t)

	tables, err := BuildTables(exprGrammar())
	assert.NoError(err)

	result := Run(tables, Tokenize("id +"))

	assert.False(result.Accepted)
	assert.False(result.StepLimited)
	assert.Equal("$", result.ErrorToken)
	assert.NotEmpty(result.Expected)
}

func Test_Run_rejectsMalformedInput(t *testing.T) {
	assert := assert.New(t)

	tables, err := BuildTables(exprGrammar())
	assert.NoError(err)

	result := Run(tables, Tokenize("id id"))

	assert.False(result.Accepted)
	assert.Equal("id", result.ErrorToken)
}

func Test_ExpectedString(t *testing.T) {
	assert := assert.New(t)

	out := ExpectedString([]string{"id", "("})
	assert.Contains(out, "'id'")
	assert.Contains(out, "'('")

	assert.Empty(ExpectedString(nil))
}

func Test_stepCeiling(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1000, stepCeiling(1))
	assert.Equal(1000, stepCeiling(10))
	assert.Equal(5000, stepCeiling(100))
}
