package treeval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Kind
	}{
		{"null", `null`, KindNull},
		{"bool", `true`, KindBool},
		{"integral number", `42`, KindInt},
		{"negative integral", `-42`, KindInt},
		{"fractional number", `2.5`, KindDouble},
		{"huge number", `1e300`, KindDouble},
		{"string", `"hi"`, KindString},
		{"array", `[1,2]`, KindArray},
		{"object", `{"a":1}`, KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromJSON([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.Kind())
		})
	}
}

func TestFromJSON_Document(t *testing.T) {
	v, err := FromJSON([]byte(`{"b":2,"a":[1,2.5,"x",true,null]}`))
	require.NoError(t, err)

	// Members come out name-sorted, so re-encoding is deterministic.
	assert.Equal(t, `{"a":[1,2.5,"x",true,null],"b":2}`, v.Compact())

	arr, ok := v.Field("a")
	require.True(t, ok)
	assert.Equal(t, KindInt, arr.Index(0).Kind())
	assert.Equal(t, KindDouble, arr.Index(1).Kind())
	assert.Equal(t, KindString, arr.Index(2).Kind())
	assert.Equal(t, KindBool, arr.Index(3).Kind())
	assert.Equal(t, KindNull, arr.Index(4).Kind())
}

func TestFromJSON_ParseError(t *testing.T) {
	for _, input := range []string{``, `{`, `[1,`, `nope`} {
		_, err := FromJSON([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestFromJSON_HashEqualRegardlessOfTextOrder(t *testing.T) {
	v1, err := FromJSON([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	v2, err := FromJSON([]byte(`{"b":2,"a":1}`))
	require.NoError(t, err)

	h1, err := HashStable(v1)
	require.NoError(t, err)
	h2, err := HashStable(v2)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestCompact_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    *Value
		expected string
	}{
		{"null", Null(), "null"},
		{"nil value", nil, "null"},
		{"true", Bool(true), "true"},
		{"int", Int(-7), "-7"},
		{"uint max", Uint(18446744073709551615), "18446744073709551615"},
		{"double", Double(2.5), "2.5"},
		{"string escapes", Str("a\"b"), `"a\"b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Compact())
		})
	}
}

func TestCompact_PreservesMemberInsertionOrder(t *testing.T) {
	v := Object(
		Member{Name: "z", Value: Int(1)},
		Member{Name: "a", Value: Int(2)},
	)
	assert.Equal(t, `{"z":1,"a":2}`, v.Compact())
}

func TestToJSON_RoundTrip(t *testing.T) {
	original := Object(
		Member{Name: "name", Value: Str("ada")},
		Member{Name: "scores", Value: Array(Int(1), Double(2.5))},
		Member{Name: "ok", Value: Bool(true)},
		Member{Name: "none", Value: Null()},
	)

	parsed, err := FromJSON(ToJSON(original))
	require.NoError(t, err)

	h1, err := HashStable(original)
	require.NoError(t, err)
	h2, err := HashStable(parsed)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestMarshalJSON(t *testing.T) {
	v := Array(Int(1), Str("x"))
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[1,"x"]`, string(data))
}

func TestFromJSONValue_Unsupported(t *testing.T) {
	_, err := FromJSONValue(struct{}{})
	assert.Error(t, err)
}
