package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringSet(t *testing.T) {
	assert := assert.New(t)

	s := NewStringSet([]string{"a", "b"})
	assert.True(s.Has("a"))
	assert.False(s.Has("c"))
	assert.Equal(2, s.Len())

	s.Add("c")
	assert.True(s.Has("c"))
	assert.Equal(3, s.Len())

	s.Remove("a")
	assert.False(s.Has("a"))
	assert.Equal(2, s.Len())

	assert.Equal([]string{"b", "c"}, s.Sorted())
}

func Test_StringSet_AddAll(t *testing.T) {
	assert := assert.New(t)

	a := NewStringSet([]string{"x"})
	b := NewStringSet([]string{"y", "z"})

	a.AddAll(b)

	assert.ElementsMatch([]string{"x", "y", "z"}, a.Sorted())
}

func Test_OrderedKeys(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"b": 2, "a": 1, "c": 3}

	assert.Equal([]string{"a", "b", "c"}, OrderedKeys(m))
}

func Test_Stack(t *testing.T) {
	assert := assert.New(t)

	s := Stack[int]{}
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(3, s.Len())
	assert.Equal(3, s.Peek())

	assert.Equal(3, s.Pop())
	assert.Equal(2, s.Pop())
	assert.Equal(1, s.Len())
	assert.False(s.Empty())

	s.Pop()
	assert.True(s.Empty())
}

func Test_ArticleFor(t *testing.T) {
	testCases := []struct {
		word     string
		expected string
	}{
		{"apple", "an"},
		{"banana", "a"},
		{"id", "an"},
		{"(", "a"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.expected, ArticleFor(tc.word))
		})
	}
}

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name     string
		items    []string
		expected string
	}{
		{"empty", nil, ""},
		{"one", []string{"a"}, "a"},
		{"two", []string{"a", "b"}, "a and b"},
		{"three", []string{"a", "b", "c"}, "a, b, and c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MakeTextList(tc.items))
		})
	}
}
