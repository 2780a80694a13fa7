package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDNFBooleanLiterals(t *testing.T) {
	resolver := NewPointerResolver(&Schema{})

	result, err := toDNF(boolSchema(true), resolver, map[string]*Schema{})
	require.NoError(t, err)
	assert.Equal(t, NormTrue(), result)

	result, err = toDNF(boolSchema(false), resolver, map[string]*Schema{})
	require.NoError(t, err)
	assert.Equal(t, NormFalse(), result)
}

func TestToDNFFlattensNestedAnyOf(t *testing.T) {
	s := mustParseSchema(t, `{"anyOf": [{"type": "string"}, {"anyOf": [{"type": "number"}, {"type": "boolean"}]}]}`)
	resolver := NewPointerResolver(s)

	result, err := toDNF(s, resolver, map[string]*Schema{})
	require.NoError(t, err)
	assert.Len(t, result.AnyOf, 3)
}

func TestToDNFAllOfMergesSiblingsIntoEachBranch(t *testing.T) {
	s := mustParseSchema(t, `{"allOf": [{"minimum": 5}, {"minimum": 10}]}`)
	resolver := NewPointerResolver(s)

	result, err := toDNF(s, resolver, map[string]*Schema{})
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 1)
	assert.Equal(t, "10", FormatRat(result.AnyOf[0].Minimum))
}

func TestToDNFAllOfDistributesOverSiblingAnyOf(t *testing.T) {
	s := mustParseSchema(t, `{"anyOf": [{"minLength": 1}, {"minLength": 2}], "allOf": [{"maxLength": 5}]}`)
	resolver := NewPointerResolver(s)

	result, err := toDNF(s, resolver, map[string]*Schema{})
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 2)
	for _, branch := range result.AnyOf {
		require.NotNil(t, branch.MaxLength)
		assert.Equal(t, float64(5), *branch.MaxLength)
	}
}

func TestToDNFOneOfExpandsOneBranchPerSibling(t *testing.T) {
	s := mustParseSchema(t, `{"oneOf": [{"type": "string"}, {"type": "number"}]}`)
	resolver := NewPointerResolver(s)

	result, err := toDNF(s, resolver, map[string]*Schema{})
	require.NoError(t, err)
	assert.Len(t, result.AnyOf, 2)
}

func TestToDNFTopLevelNotIsDropped(t *testing.T) {
	s := mustParseSchema(t, `{"type": "string", "not": {"const": "forbidden"}}`)
	resolver := NewPointerResolver(s)

	result, err := toDNF(s, resolver, map[string]*Schema{})
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 1)
	assert.Equal(t, SchemaType{"string"}, result.AnyOf[0].Type)
}

func TestInvertIsNoOp(t *testing.T) {
	s := &Schema{Type: SchemaType{"string"}}
	assert.Same(t, s, invert(s))
}
