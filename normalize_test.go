package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBooleanLiterals(t *testing.T) {
	result, err := Normalize(boolSchema(false))
	require.NoError(t, err)
	assert.Equal(t, SchemaType{}, result.Type)
	assert.Nil(t, result.AnyOf)

	result, err = Normalize(boolSchema(true))
	require.NoError(t, err)
	assert.Equal(t, &Schema{}, result)
}

func TestNormalizeNilFaults(t *testing.T) {
	_, err := Normalize(nil)
	require.Error(t, err)
	var fault *NormalizationFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, NotAnObject, fault.Kind)
}

func TestNormalizeFlatObjectProducesSingleAnyOfBranch(t *testing.T) {
	s := mustParseSchema(t, `{"type": "object", "properties": {"name": {"type": "string"}}}`)
	result, err := Normalize(s)
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 1)
	assert.Equal(t, SchemaType{"object"}, result.AnyOf[0].Type)
	assert.NotNil(t, result.Defs)
}

func TestNormalizeDistributesAllOfOverAnyOf(t *testing.T) {
	s := mustParseSchema(t, `{
		"anyOf": [{"minLength": 1}, {"minLength": 2}],
		"allOf": [{"maxLength": 10}]
	}`)
	result, err := Normalize(s)
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 2)
	for _, branch := range result.AnyOf {
		require.NotNil(t, branch.MaxLength)
		assert.Equal(t, float64(10), *branch.MaxLength)
	}
}

func TestNormalizeInlinesRef(t *testing.T) {
	s := mustParseSchema(t, `{
		"$defs": {"named": {"type": "string"}},
		"$ref": "#/$defs/named"
	}`)
	result, err := Normalize(s)
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 1)
	// A schema that inlined a $ref is registered under $defs and the
	// top-level branch points at that entry.
	inlined, err := NewPointerResolver(result).Resolve(result.AnyOf[0].Ref)
	require.NoError(t, err)
	require.Len(t, inlined.AnyOf, 1)
	assert.Equal(t, SchemaType{"string"}, inlined.AnyOf[0].Type)
}

func TestNormalizePreservesSchemaKeyword(t *testing.T) {
	s := mustParseSchema(t, `{"$schema": "https://json-schema.org/draft/2020-12/schema", "type": "string"}`)
	result, err := Normalize(s)
	require.NoError(t, err)
	assert.Equal(t, "https://json-schema.org/draft/2020-12/schema", result.Schema)
}

func TestNormalizeCyclicRefProducesDefsEntry(t *testing.T) {
	s := mustParseSchema(t, `{
		"$defs": {
			"node": {
				"type": "object",
				"properties": {
					"next": {"$ref": "#/$defs/node"}
				}
			}
		},
		"$ref": "#/$defs/node"
	}`)

	result, err := Normalize(s)
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 1)
	require.NotEmpty(t, result.Defs, "a self-referential schema must register a $defs entry to break the cycle")

	err = CheckNormalized(result)
	assert.NoError(t, err, "the cyclic-ref output must itself satisfy the normal-form grammar")
}

func TestNormalizeRecursesIntoPrefixItemsThreadingNewRefs(t *testing.T) {
	s := mustParseSchema(t, `{
		"$defs": {
			"node": {
				"type": "object",
				"properties": {
					"next": {"$ref": "#/$defs/node"}
				}
			}
		},
		"prefixItems": [{"$ref": "#/$defs/node"}]
	}`)

	result, err := Normalize(s)
	require.NoError(t, err)
	require.Len(t, result.AnyOf, 1)
	require.Len(t, result.AnyOf[0].PrefixItems, 1)
	assert.NoError(t, CheckNormalized(result))
}
