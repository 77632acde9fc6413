package jsonschema_test

import (
	"encoding/json"
	"testing"

	"github.com/akash-pandit/CACourses/pkg/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode parses JSON the same way corpus files are read, so inferred
// types match what the pipeline sees.
func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	err := json.Unmarshal([]byte(raw), &v)
	require.NoError(t, err)
	return v
}

func TestInferScalars(t *testing.T) {
	tests := []struct {
		msg  string
		raw  string
		kind jsonschema.Kind
	}{
		{"null", `null`, jsonschema.Null},
		{"bool", `true`, jsonschema.Bool},
		{"integral number", `42`, jsonschema.Int},
		{"negative integral", `-7`, jsonschema.Int},
		{"fractional number", `4.5`, jsonschema.Float},
		{"string", `"MATH 1A"`, jsonschema.String},
	}

	for _, v := range tests {
		res := jsonschema.Infer(decode(t, v.raw))
		assert.Equal(t, v.kind, res.Kind, v.msg)
	}
}

func TestInferList(t *testing.T) {
	t.Run("homogeneous elements", func(t *testing.T) {
		res := jsonschema.Infer(decode(t, `[1, 2, 3]`))
		require.Equal(t, jsonschema.List, res.Kind)
		assert.Equal(t, jsonschema.Int, res.Elem.Kind)
	})

	t.Run("mixed numbers widen to float", func(t *testing.T) {
		res := jsonschema.Infer(decode(t, `[1, 2.5]`))
		require.Equal(t, jsonschema.List, res.Kind)
		assert.Equal(t, jsonschema.Float, res.Elem.Kind)
	})

	t.Run("empty list has null element", func(t *testing.T) {
		res := jsonschema.Infer(decode(t, `[]`))
		require.Equal(t, jsonschema.List, res.Kind)
		assert.Equal(t, jsonschema.Null, res.Elem.Kind)
	})

	t.Run("irreconcilable elements degrade to string", func(t *testing.T) {
		res := jsonschema.Infer(decode(t, `[{"a": 1}, 2]`))
		require.Equal(t, jsonschema.List, res.Kind)
		assert.Equal(t, jsonschema.String, res.Elem.Kind)
	})
}

func TestInferStruct(t *testing.T) {
	res := jsonschema.Infer(decode(t, `{"b": 1, "a": "x", "c": null}`))
	require.Equal(t, jsonschema.Struct, res.Kind)

	// Fields come out sorted regardless of key order in the source.
	require.Len(t, res.Fields, 3)
	assert.Equal(t, "a", res.Fields[0].Name)
	assert.Equal(t, "b", res.Fields[1].Name)
	assert.Equal(t, "c", res.Fields[2].Name)

	a, ok := res.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, jsonschema.String, a.Kind)

	_, ok = res.Lookup("missing")
	assert.False(t, ok)
}

func TestInferKeyOrderIrrelevant(t *testing.T) {
	s1 := jsonschema.Infer(decode(t, `{"a": 1, "b": {"x": true, "y": 2}}`))
	s2 := jsonschema.Infer(decode(t, `{"b": {"y": 5, "x": false}, "a": 9}`))
	assert.True(t, s1.Equal(s2))
}

func TestTypeString(t *testing.T) {
	res := jsonschema.Infer(decode(t, `{"a": [1], "b": "x"}`))
	assert.Equal(t, "struct{a: list[int], b: string}", res.String())
}
