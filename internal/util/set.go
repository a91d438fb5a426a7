// Package util holds small generic helpers shared across the lr1construct
// core and its surrounding layers. It is a deliberately trimmed descendant
// of dekarrin/tunaq's internal/util package: the generic ISet/VSet/BSet
// hierarchy existed there to let several interchangeable set-backed
// automaton representations share code, which this module does not need
// since it implements only canonical LR(1) construction and has no use for
// LALR merging.
package util

import "sort"

// StringSet is a set of strings backed by a map, in the style of
// dekarrin/tunaq's util.StringSet. The zero value is not usable; use
// NewStringSet.
type StringSet map[string]bool

// NewStringSet creates a StringSet optionally pre-populated from the given
// slices.
func NewStringSet(of ...[]string) StringSet {
	s := StringSet{}
	for _, sl := range of {
		for _, v := range sl {
			s.Add(v)
		}
	}
	return s
}

// Add adds an element to the set. Has no effect if already present.
func (s StringSet) Add(v string) {
	s[v] = true
}

// AddAll adds every element of o to s.
func (s StringSet) AddAll(o StringSet) {
	for v := range o {
		s.Add(v)
	}
}

// Has returns whether v is in the set.
func (s StringSet) Has(v string) bool {
	return s[v]
}

// Remove removes v from the set, if present.
func (s StringSet) Remove(v string) {
	delete(s, v)
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Sorted returns the elements of the set in ascending order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// OrderedKeys returns the keys of m in ascending order. Used wherever a map
// must be iterated in a deterministic order, e.g. for stable table output.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stack is a minimal LIFO helper, in the style of dekarrin/tunaq's
// util.Stack.
type Stack[E any] struct {
	Of []E
}

// Push adds v to the top of the stack.
func (s *Stack[E]) Push(v E) {
	s.Of = append(s.Of, v)
}

// Pop removes and returns the top of the stack. Callers are expected to
// check Len()/Empty() first, as the parse driver does.
func (s *Stack[E]) Pop() E {
	n := len(s.Of)
	v := s.Of[n-1]
	s.Of = s.Of[:n-1]
	return v
}

// Peek returns the top of the stack without removing it.
func (s *Stack[E]) Peek() E {
	return s.Of[len(s.Of)-1]
}

// Len returns the number of elements currently on the stack.
func (s *Stack[E]) Len() int {
	return len(s.Of)
}

// Empty returns whether the stack has no elements.
func (s *Stack[E]) Empty() bool {
	return len(s.Of) == 0
}

// ArticleFor returns "a" or "an" as appropriate for the given word, for use
// in generated English messages such as parser error text.
func ArticleFor(word string) string {
	if word == "" {
		return ""
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	default:
		return "a"
	}
}

// MakeTextList joins items into a human-readable list, using "and" for the
// final separator, matching util.MakeTextList in dekarrin/tunaq.
func MakeTextList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		out := ""
		for i, it := range items {
			if i == len(items)-1 {
				out += "and " + it
			} else {
				out += it + ", "
			}
		}
		return out
	}
}
