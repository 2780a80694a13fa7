package jsonschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseSchema(t *testing.T, raw string) *Schema {
	t.Helper()
	var s Schema
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return &s
}

func TestFingerprintIsOrderIndependent(t *testing.T) {
	a := mustParseSchema(t, `{"type": "object", "properties": {"x": {"type": "string"}, "y": {"type": "number"}}}`)
	b := mustParseSchema(t, `{"properties": {"y": {"type": "number"}, "x": {"type": "string"}}, "type": "object"}`)

	fpA, err := fingerprint(a)
	require.NoError(t, err)
	fpB, err := fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB, "fingerprints built from differently-ordered equivalent schemas must match")
}

func TestFingerprintDistinguishesDifferentSchemas(t *testing.T) {
	a := mustParseSchema(t, `{"type": "string"}`)
	b := mustParseSchema(t, `{"type": "number"}`)

	fpA, err := fingerprint(a)
	require.NoError(t, err)
	fpB, err := fingerprint(b)
	require.NoError(t, err)

	assert.NotEqual(t, fpA, fpB)
}

func TestFingerprintIsHexSHA1(t *testing.T) {
	s := mustParseSchema(t, `{"type": "string"}`)
	fp, err := fingerprint(s)
	require.NoError(t, err)
	assert.Len(t, fp, 40)
}
