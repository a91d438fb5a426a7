package grammar

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseGrammar reads grammar source text into a Grammar: each non-empty
// line is "LHS -> RHS1 | RHS2 | ...", '->' and '→' are both accepted, and a
// line that starts with '|' continues the previous LHS. Malformed lines are
// skipped silently; a grammar with zero accepted productions is returned
// as-is, and it is the caller's job to report that as an empty grammar at
// the request boundary.
//
// Ported from original_source/app.py's parse_grammar, with Unicode NFC
// normalization added ahead of the literal non-breaking-space replacement
// the original performs.
func ParseGrammar(text string) Grammar {
	text = norm.NFC.String(text)

	var productions []Production
	var currentLHS string
	haveLHS := false

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "|") {
			if !haveLHS {
				continue // malformed: continuation with no prior LHS
			}
			rhsText := strings.TrimSpace(strings.TrimPrefix(line, "|"))
			for _, alt := range splitAlternatives(rhsText) {
				productions = append(productions, Production{
					LHS: currentLHS,
					RHS: tokenizeRHS(alt),
				})
			}
			continue
		}

		lhs, rhsFull, ok := splitArrow(line)
		if !ok {
			continue // malformed: no arrow, or more than one
		}
		lhs = strings.TrimSpace(lhs)
		if lhs == "" {
			continue
		}

		currentLHS = lhs
		haveLHS = true

		for _, alt := range splitAlternatives(rhsFull) {
			productions = append(productions, Production{
				LHS: lhs,
				RHS: tokenizeRHS(alt),
			})
		}
	}

	return New(productions)
}

// splitArrow splits a line on the first occurrence of "->" or "→". Returns
// ok=false if neither or more than one arrow token appears — multiple
// arrows on one line is treated as malformed.
func splitArrow(line string) (lhs, rhs string, ok bool) {
	normalized := strings.ReplaceAll(line, "→", "->")

	count := strings.Count(normalized, "->")
	if count != 1 {
		return "", "", false
	}

	idx := strings.Index(normalized, "->")
	return normalized[:idx], normalized[idx+2:], true
}

// splitAlternatives splits an RHS on top-level '|' (alternation is never
// nested inside quotes in this grammar syntax, so a plain split suffices).
func splitAlternatives(s string) []string {
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// tokenizeRHS tokenizes a single alternative: whitespace separates symbols;
// '...' fragments are literal terminals with quotes stripped; '(' and ')'
// are always single-character terminals; ε/epsilon/empty yields the
// singleton [ε]; non-breaking spaces are normalized to ordinary spaces
// first.
func tokenizeRHS(rhs string) []string {
	rhs = strings.ReplaceAll(rhs, " ", " ")
	rhs = strings.TrimSpace(rhs)

	lower := strings.ToLower(rhs)
	if rhs == "" || rhs == Epsilon || lower == "epsilon" {
		return []string{Epsilon}
	}

	var symbols []string
	runes := []rune(rhs)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '\'':
			i++
			start := i
			for i < len(runes) && runes[i] != '\'' {
				i++
			}
			symbols = append(symbols, string(runes[start:i]))
			if i < len(runes) {
				i++ // consume closing quote
			}
		case c == '(' || c == ')':
			symbols = append(symbols, string(c))
			i++
		default:
			start := i
			for i < len(runes) && runes[i] != ' ' && runes[i] != '\t' && runes[i] != '\'' && runes[i] != '(' && runes[i] != ')' {
				i++
			}
			symbols = append(symbols, string(runes[start:i]))
		}
	}

	if len(symbols) == 0 {
		return []string{Epsilon}
	}
	return symbols
}
