package jsonschema

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// PointerResolver resolves `$ref` fragments against the root schema they
// were parsed from, using github.com/kaptinlin/jsonpointer (the same
// library kaptinlin/jsonschema uses for its own $ref resolution in ref.go)
// to split a fragment into its `~0`/`~1`-unescaped segments.
type PointerResolver struct {
	root *Schema
}

// NewPointerResolver builds a Resolver rooted at schema. schema should be
// the original, un-normalized document — including its $defs — since that
// is what a schema's own $ref values are written against.
func NewPointerResolver(schema *Schema) *PointerResolver {
	return &PointerResolver{root: schema}
}

// Resolve implements Resolver. ref is a fragment-style JSON pointer, e.g.
// "#/$defs/address" or "#/properties/name".
func (r *PointerResolver) Resolve(ref string) (*Schema, error) {
	fragment := strings.TrimPrefix(ref, "#")
	if fragment == "" {
		return r.root, nil
	}
	segments := jsonpointer.Parse(fragment)
	return resolveSegments(r.root, segments, ref)
}

// resolveSegments walks root one structural keyword at a time. Unlike the
// validator's findSchemaInSegment (which interprets the *current* segment
// through the *previous* one and so can never resolve a single-segment
// pointer to a terminal keyword like "#/items"), this consumes a variable
// number of segments per keyword explicitly, so every pointer shape
// resolves in one pass.
func resolveSegments(root *Schema, segments []string, originalRef string) (*Schema, error) {
	current := root
	i := 0
	for i < len(segments) {
		seg := segments[i]
		switch seg {
		case "properties":
			if i+1 >= len(segments) || current.Properties == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			sub, ok := (*current.Properties)[segments[i+1]]
			if !ok {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = sub, i+2

		case "prefixItems":
			if i+1 >= len(segments) {
				return nil, newUnresolvedRefFault(originalRef)
			}
			idx, err := strconv.Atoi(segments[i+1])
			if err != nil || idx < 0 || idx >= len(current.PrefixItems) {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.PrefixItems[idx], i+2

		case "$defs", "definitions":
			if i+1 >= len(segments) {
				return nil, newUnresolvedRefFault(originalRef)
			}
			sub, ok := current.Defs[segments[i+1]]
			if !ok {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = sub, i+2

		case "allOf":
			sub, err := indexInto(current.AllOf, segments, i, originalRef)
			if err != nil {
				return nil, err
			}
			current, i = sub, i+2

		case "anyOf":
			sub, err := indexInto(current.AnyOf, segments, i, originalRef)
			if err != nil {
				return nil, err
			}
			current, i = sub, i+2

		case "oneOf":
			sub, err := indexInto(current.OneOf, segments, i, originalRef)
			if err != nil {
				return nil, err
			}
			current, i = sub, i+2

		case "items":
			if current.Items == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.Items, i+1

		case "additionalItems":
			if current.AdditionalItems == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.AdditionalItems, i+1

		case "additionalProperties":
			if current.AdditionalProperties == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.AdditionalProperties, i+1

		case "not":
			if current.Not == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.Not, i+1

		case "if":
			if current.If == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.If, i+1

		case "then":
			if current.Then == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.Then, i+1

		case "else":
			if current.Else == nil {
				return nil, newUnresolvedRefFault(originalRef)
			}
			current, i = current.Else, i+1

		default:
			return nil, newUnresolvedRefFault(originalRef)
		}
	}
	return current, nil
}

func indexInto(list []*Schema, segments []string, i int, originalRef string) (*Schema, error) {
	if i+1 >= len(segments) {
		return nil, newUnresolvedRefFault(originalRef)
	}
	idx, err := strconv.Atoi(segments[i+1])
	if err != nil || idx < 0 || idx >= len(list) {
		return nil, newUnresolvedRefFault(originalRef)
	}
	return list[idx], nil
}
