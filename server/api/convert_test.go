package api

import (
	"testing"

	"github.com/corvidlabs/lr1construct/internal/lr1/report"
	"github.com/stretchr/testify/assert"
)

func Test_toParseResponse_conflictsSurfaceAsStructuredData(t *testing.T) {
	assert := assert.New(t)

	rep, err := report.Build("S -> A | B\nA -> a\nB -> a", "")
	assert.NoError(err)

	resp := toParseResponse(rep)

	assert.NotEmpty(resp.Conflicts)
	for _, c := range resp.Conflicts {
		assert.GreaterOrEqual(c.State, 0)
		assert.NotEmpty(c.Symbol)
		assert.True(len(c.Alternatives) >= 2)
	}
}

func Test_toParseResponse_actionTableNestsByStateThenSymbol(t *testing.T) {
	assert := assert.New(t)

	rep, err := report.Build("S -> a", "")
	assert.NoError(err)

	resp := toParseResponse(rep)

	assert.Contains(resp.ParsingTableAction, 0)
	assert.Contains(resp.ParsingTableAction[0], "a")
}

func Test_toParseResponse_gotoTableKeysAreStateCommaSymbol(t *testing.T) {
	assert := assert.New(t)

	rep, err := report.Build("S -> A a\nA -> a", "")
	assert.NoError(err)

	resp := toParseResponse(rep)

	assert.NotEmpty(resp.ParsingTableGoto)
	assert.Contains(resp.ParsingTableGoto, "0,S")
	assert.Contains(resp.ParsingTableGoto, "0,A")
}

func Test_toParseResponse_parseTreeReflectsDerivation(t *testing.T) {
	assert := assert.New(t)

	rep, err := report.Build("S -> a", "a")
	assert.NoError(err)

	resp := toParseResponse(rep)

	assert.NotNil(resp.ParseTree)
	assert.Equal("S", resp.ParseTree.Symbol)
	assert.Len(resp.ParseTree.Children, 1)
	assert.Equal("a", resp.ParseTree.Children[0].Token)
}
