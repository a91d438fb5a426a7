package parse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Action_Equal(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     Action
		expected bool
	}{
		{
			name:     "same shift target",
			a:        Action{Kind: ActionShift, ShiftState: 3},
			b:        Action{Kind: ActionShift, ShiftState: 3},
			expected: true,
		},
		{
			name:     "different shift target",
			a:        Action{Kind: ActionShift, ShiftState: 3},
			b:        Action{Kind: ActionShift, ShiftState: 4},
			expected: false,
		},
		{
			name:     "different kind",
			a:        Action{Kind: ActionShift, ShiftState: 3},
			b:        Action{Kind: ActionReduce, ReduceProd: 3},
			expected: false,
		},
		{
			name:     "two accepts",
			a:        Action{Kind: ActionAccept},
			b:        Action{Kind: ActionAccept},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Equal(tc.b))
		})
	}
}

func Test_merge(t *testing.T) {
	assert := assert.New(t)

	shift3 := Action{Kind: ActionShift, ShiftState: 3}
	reduce1 := Action{Kind: ActionReduce, ReduceProd: 1}

	// first write into an empty cell
	result := merge(Action{}, shift3)
	assert.Equal(shift3, result)

	// same write twice does not conflict
	result = merge(result, shift3)
	assert.Equal(shift3, result)

	// disagreeing write produces a conflict
	result = merge(result, reduce1)
	assert.Equal(ActionConflict, result.Kind)
	assert.ElementsMatch([]Action{shift3, reduce1}, result.Alternatives)

	// a third disagreeing write appends rather than nesting
	shift5 := Action{Kind: ActionShift, ShiftState: 5}
	result = merge(result, shift5)
	assert.Equal(ActionConflict, result.Kind)
	assert.Len(result.Alternatives, 3)

	// re-merging an already-recorded alternative does not duplicate it
	result = merge(result, shift3)
	assert.Len(result.Alternatives, 3)
}

func Test_ActionTable_Get_missingCellIsActionNone(t *testing.T) {
	assert := assert.New(t)

	table := ActionTable{}
	act := table.Get(0, "a")

	assert.Equal(ActionNone, act.Kind)
}

func Test_GotoTable_Get(t *testing.T) {
	assert := assert.New(t)

	table := GotoTable{0: {"A": 5}}

	target, ok := table.Get(0, "A")
	assert.True(ok)
	assert.Equal(5, target)

	_, ok = table.Get(0, "B")
	assert.False(ok)

	_, ok = table.Get(1, "A")
	assert.False(ok)
}

func Test_Action_String(t *testing.T) {
	testCases := []struct {
		name     string
		a        Action
		expected string
	}{
		{"shift", Action{Kind: ActionShift, ShiftState: 2}, "shift 2"},
		{"reduce", Action{Kind: ActionReduce, ReduceProd: 4}, "reduce 4"},
		{"accept", Action{Kind: ActionAccept}, "accept"},
		{
			"conflict",
			Action{Kind: ActionConflict, Alternatives: []Action{
				{Kind: ActionShift, ShiftState: 2},
				{Kind: ActionReduce, ReduceProd: 4},
			}},
			"conflict(shift 2 / reduce 4)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.String())
		})
	}
}

func Test_Action_MarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		a        Action
		expected string
	}{
		{"shift", Action{Kind: ActionShift, ShiftState: 2}, `["shift",2]`},
		{"reduce", Action{Kind: ActionReduce, ReduceProd: 4}, `["reduce",4]`},
		{"accept", Action{Kind: ActionAccept}, `["accept",null]`},
		{
			"conflict",
			Action{Kind: ActionConflict, Alternatives: []Action{
				{Kind: ActionShift, ShiftState: 2},
				{Kind: ActionReduce, ReduceProd: 4},
			}},
			`["conflict",[["shift",2],["reduce",4]]]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := json.Marshal(tc.a)
			assert.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(out))
		})
	}
}
