package treeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten_TwoLevels(t *testing.T) {
	// [[[1,2],[3]],[[4]]] -> [1,2,3,4]
	args := []*Value{
		Array(
			Array(Int(1), Int(2)),
			Array(Int(3)),
		),
		Array(
			Array(Int(4)),
		),
	}

	got, err := Flatten(args)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3,4]", got.Compact())
}

func TestFlatten_PreservesOrderAcrossLevels(t *testing.T) {
	args := []*Value{
		Array(Array(Str("b"), Str("a"))),
		Array(Array(Str("d")), Array(Str("c"))),
	}

	got, err := Flatten(args)
	require.NoError(t, err)
	assert.Equal(t, `["b","a","d","c"]`, got.Compact())
}

func TestFlatten_NotRecursive(t *testing.T) {
	// Leaves that are themselves arrays stay arrays.
	args := []*Value{
		Array(Array(Array(Int(1), Int(2)))),
	}

	got, err := Flatten(args)
	require.NoError(t, err)
	assert.Equal(t, "[[1,2]]", got.Compact())
}

func TestFlatten_NoLeavesYieldsNull(t *testing.T) {
	got, err := Flatten(nil)
	require.NoError(t, err)
	assert.True(t, got.IsNull())

	got, err = Flatten([]*Value{Array(), Array(Array())})
	require.NoError(t, err)
	assert.True(t, got.IsNull())
}

func TestFlatten_RejectsNonArrays(t *testing.T) {
	tests := []struct {
		name string
		args []*Value
	}{
		{"scalar outer", []*Value{Int(1)}},
		{"object outer", []*Value{Object()}},
		{"null outer", []*Value{Null()}},
		{"scalar inner", []*Value{Array(Int(1))}},
		{"string inner", []*Value{Array(Array(Int(1))), Array(Str("x"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Flatten(tt.args)
			assert.ErrorIs(t, err, ErrInvalidValueType)
		})
	}
}
