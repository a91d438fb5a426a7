package parse

import "github.com/corvidlabs/lr1construct/internal/lr1/grammar"

// Tree is a parse-tree node: a leaf for a shifted token or an interior node
// for a reduced production, with Children in left-to-right order.
type Tree struct {
	Symbol   string
	IsLeaf   bool
	Token    string // set only when IsLeaf
	Children []*Tree
}

// String renders a leaf as its token text and an interior node as its
// symbol, ignoring children -- full rendering is the report layer's job.
func (t *Tree) String() string {
	if t == nil {
		return ""
	}
	if t.IsLeaf {
		return t.Token
	}
	return t.Symbol
}

func leaf(symbol, token string) *Tree {
	return &Tree{Symbol: symbol, IsLeaf: true, Token: token}
}

func reduceNode(p grammar.Production, children []*Tree) *Tree {
	if p.IsEpsilon() {
		return &Tree{Symbol: p.LHS, Children: []*Tree{leaf(grammar.Epsilon, grammar.Epsilon)}}
	}
	return &Tree{Symbol: p.LHS, Children: children}
}
