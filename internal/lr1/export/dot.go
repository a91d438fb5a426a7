// Package export renders a canonical collection as a Graphviz DOT digraph.
// Grounded on original_source/app.py's to_dot(), in idiomatic Go
// (strings.Builder instead of a line list).
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corvidlabs/lr1construct/internal/lr1/automaton"
)

// DOT renders the canonical collection coll as a Graphviz digraph: one box
// node per state labeled with its item set, one edge per transition labeled
// with its symbol.
func DOT(coll *automaton.Collection) string {
	var b strings.Builder

	b.WriteString("digraph LR1 {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(`  node [shape=box, style="rounded,filled", fillcolor="#ffffff", fontname="Inter"];` + "\n")
	b.WriteString(`  edge [fontname="Inter"];` + "\n")

	for _, state := range coll.States {
		var itemLines []string
		for _, item := range state.Items.Items() {
			itemLines = append(itemLines, escapeDOT(item.String()))
		}
		label := fmt.Sprintf("I%d\\n%s", state.ID, strings.Join(itemLines, "\\n"))
		fmt.Fprintf(&b, "  I%d [label=\"%s\"];\n", state.ID, label)
	}

	var froms []int
	for from := range coll.Transitions {
		froms = append(froms, from)
	}
	sort.Ints(froms)

	for _, from := range froms {
		row := coll.Transitions[from]
		var symbols []string
		for symbol := range row {
			symbols = append(symbols, symbol)
		}
		sort.Strings(symbols)

		for _, symbol := range symbols {
			fmt.Fprintf(&b, "  I%d -> I%d [label=\"%s\"];\n", from, row[symbol], escapeDOT(symbol))
		}
	}

	b.WriteString("}")
	return b.String()
}

// escapeDOT escapes backslashes first, then quotes, so a literal backslash
// in a symbol name isn't left dangling in the emitted label; this goes
// further than original_source/app.py's esc(), which only escapes quotes.
func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
