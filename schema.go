package jsonschema

import (
	"maps"

	"github.com/goccy/go-json"
)

// knownSchemaFields contains every keyword this normalizer recognizes.
// Anything else collected into Extra is copied verbatim when only one
// operand of a merge carries it, and faults as UnmergeableKeyword when
// both operands carry the same unrecognized key.
var knownSchemaFields = map[string]struct{}{
	"$schema": {},
	"$ref":    {},
	"$defs":   {},

	"allOf": {}, "anyOf": {}, "oneOf": {}, "not": {},
	"if": {}, "then": {}, "else": {},

	"type": {}, "const": {}, "enum": {}, "format": {}, "deprecated": {},

	"minimum": {}, "maximum": {}, "multipleOf": {},

	"minLength": {}, "maxLength": {}, "pattern": {},

	"items": {}, "prefixItems": {}, "minItems": {}, "additionalItems": {},

	"properties": {}, "additionalProperties": {}, "required": {}, "dependentRequired": {},
}

// Schema is a JSON Schema value: either the literal boolean true/false, or
// a keyword-bearing object. Keywords outside the recognized set are kept
// in Extra for verbatim passthrough or conflict detection during merging.
type Schema struct {
	// Boolean is non-nil only for the literal schemas `true`/`false`.
	Boolean *bool `json:"-"`

	Schema string             `json:"$schema,omitempty"`
	Ref    string             `json:"$ref,omitempty"`
	Defs   map[string]*Schema `json:"$defs,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
	If    *Schema   `json:"if,omitempty"`
	Then  *Schema   `json:"then,omitempty"`
	Else  *Schema   `json:"else,omitempty"`

	Type       SchemaType  `json:"type,omitempty"`
	Const      *ConstValue `json:"const,omitempty"`
	Enum       []any       `json:"enum,omitempty"`
	Format     *string     `json:"format,omitempty"`
	Deprecated *bool       `json:"deprecated,omitempty"`

	Minimum    *Rat `json:"minimum,omitempty"`
	Maximum    *Rat `json:"maximum,omitempty"`
	MultipleOf *Rat `json:"multipleOf,omitempty"`

	MinLength *float64 `json:"minLength,omitempty"`
	MaxLength *float64 `json:"maxLength,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`

	Items           *Schema   `json:"items,omitempty"`
	PrefixItems     []*Schema `json:"prefixItems,omitempty"`
	MinItems        *float64  `json:"minItems,omitempty"`
	AdditionalItems *Schema   `json:"additionalItems,omitempty"`

	Properties           *SchemaMap          `json:"properties,omitempty"`
	AdditionalProperties *Schema             `json:"additionalProperties,omitempty"`
	Required             []string            `json:"required,omitempty"`
	DependentRequired    map[string][]string `json:"dependentRequired,omitempty"`

	// Extra holds keywords this normalizer does not specifically recognize.
	Extra map[string]any `json:"-"`
}

// NormTrue is the single-branch DNF form that accepts everything.
func NormTrue() *Schema { return &Schema{AnyOf: []*Schema{{}}} }

// NormFalse is the single-branch DNF form that accepts nothing.
func NormFalse() *Schema {
	return &Schema{AnyOf: []*Schema{{Type: SchemaType{}}}}
}

// boolSchema canonicalizes a Go bool into its boolean Schema representation.
func boolSchema(b bool) *Schema {
	v := b
	return &Schema{Boolean: &v}
}

// isTrue/isFalse report whether s is the literal boolean schema.
func (s *Schema) isTrue() bool  { return s != nil && s.Boolean != nil && *s.Boolean }
func (s *Schema) isFalse() bool { return s != nil && s.Boolean != nil && !*s.Boolean }

// SchemaMap is a map of property name to Schema, used for `properties`.
type SchemaMap map[string]*Schema

// SchemaType holds one or more JSON Schema primitive type names.
type SchemaType []string

// MarshalJSON renders a singleton type as a bare string, matching the
// JSON Schema convention that `type` may be a string or an array.
func (st SchemaType) MarshalJSON() ([]byte, error) {
	if len(st) == 1 {
		return json.Marshal(st[0])
	}
	return json.Marshal([]string(st))
}

// UnmarshalJSON accepts either a single type string or an array of them.
func (st *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*st = SchemaType{single}
		return nil
	}
	var multi []string
	if err := json.Unmarshal(data, &multi); err != nil {
		return ErrInvalidSchemaType
	}
	*st = SchemaType(multi)
	return nil
}

// ConstValue distinguishes "const not present" from "const is JSON null".
type ConstValue struct {
	Value any
	IsSet bool
}

// UnmarshalJSON implements json.Unmarshaler for ConstValue.
func (cv *ConstValue) UnmarshalJSON(data []byte) error {
	cv.IsSet = true
	if string(data) == "null" {
		cv.Value = nil
		return nil
	}
	return json.Unmarshal(data, &cv.Value)
}

// MarshalJSON implements json.Marshaler for ConstValue.
func (cv ConstValue) MarshalJSON() ([]byte, error) {
	if cv.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(cv.Value)
}

// MarshalJSON implements json.Marshaler for Schema, handling the boolean
// form and folding Extra keywords back into the encoded object.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		return json.Marshal(*s.Boolean)
	}

	type alias Schema
	data, err := json.Marshal((*alias)(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return data, nil
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	maps.Copy(result, s.Extra)
	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler for Schema, handling the
// boolean form and collecting unrecognized keywords into Extra.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Boolean = &b
		return nil
	}

	type alias Schema
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range knownSchemaFields {
		delete(raw, key)
	}
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

// clone makes a shallow copy of s's keyword-map (sub-schemas remain shared;
// the normalizer never mutates a sub-schema after construction).
func (s *Schema) clone() *Schema {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
