package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNormalizedAcceptsWellFormedSchema(t *testing.T) {
	s := &Schema{AnyOf: []*Schema{
		{Type: SchemaType{"string"}, MinLength: ptrFloat(1)},
		{Type: SchemaType{"number"}},
	}}
	assert.NoError(t, CheckNormalized(s))
}

func TestCheckNormalizedRejectsBooleanLiteral(t *testing.T) {
	err := CheckNormalized(boolSchema(true))
	require.Error(t, err)
	var fault *NormalizationFault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, MalformedNormalForm, fault.Kind)
}

func TestCheckNormalizedRejectsMissingAnyOf(t *testing.T) {
	err := CheckNormalized(&Schema{Type: SchemaType{"string"}})
	require.Error(t, err)
}

func TestCheckNormalizedRejectsCombinatorInBranch(t *testing.T) {
	s := &Schema{AnyOf: []*Schema{
		{AllOf: []*Schema{{Type: SchemaType{"string"}}}},
	}}
	err := CheckNormalized(s)
	require.Error(t, err)
}

func TestCheckNormalizedRejectsRefBranchWithSiblingKeywords(t *testing.T) {
	s := &Schema{
		Defs: map[string]*Schema{"x": {AnyOf: []*Schema{{Type: SchemaType{"string"}}}}},
		AnyOf: []*Schema{
			{Ref: "#/$defs/x", Type: SchemaType{"number"}},
		},
	}
	err := CheckNormalized(s)
	require.Error(t, err)
}

func TestCheckNormalizedRecursesIntoAdditionalPropertiesItemsAdditionalItems(t *testing.T) {
	// Each of these three nests a malformed (non-anyOf) sub-schema one level
	// down; catching it requires recursing into the branch's own keyword,
	// not the outer checked schema (see the inline comment in check.go).
	cases := []*Schema{
		{AnyOf: []*Schema{{AdditionalProperties: &Schema{AllOf: []*Schema{{}}}}}},
		{AnyOf: []*Schema{{Items: &Schema{AllOf: []*Schema{{}}}}}},
		{AnyOf: []*Schema{{AdditionalItems: &Schema{AllOf: []*Schema{{}}}}}},
	}
	for _, s := range cases {
		err := CheckNormalized(s)
		assert.Error(t, err)
	}
}

func TestCheckNormalizedRecursesIntoPropertiesAndPrefixItems(t *testing.T) {
	props := SchemaMap{"x": {AllOf: []*Schema{{}}}}
	s := &Schema{AnyOf: []*Schema{{Properties: &props}}}
	assert.Error(t, CheckNormalized(s))

	s2 := &Schema{AnyOf: []*Schema{{PrefixItems: []*Schema{{AllOf: []*Schema{{}}}}}}}
	assert.Error(t, CheckNormalized(s2))
}

func TestCheckNormalizedDedupsRepeatedRef(t *testing.T) {
	s := &Schema{
		Defs: map[string]*Schema{"x": {AnyOf: []*Schema{{Type: SchemaType{"string"}}}}},
		AnyOf: []*Schema{
			{Ref: "#/$defs/x"},
			{Ref: "#/$defs/x"},
		},
	}
	assert.NoError(t, CheckNormalized(s))
}
