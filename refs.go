package jsonschema

// Resolver resolves a `$ref` pointer against whatever root schema it was
// constructed from. The normalizer depends only on this interface, never
// on a concrete pointer implementation — PointerResolver (pointer.go) is
// the one shipped here.
type Resolver interface {
	Resolve(ref string) (*Schema, error)
}

// inlineRefs substitutes every `$ref` in schema with
// {allOf: [schema-without-$ref, resolved-target]}, recursing through
// anyOf/allOf/oneOf/not (the only positions the normalizer inlines through
// before DNF rewriting; properties/items and the other nested positions are
// inlined when normalizeInner recurses into them, while if/then/else are not
// traversed, so a $ref under them is not inlined). It reports whether any
// $ref was found, which the caller
// uses to decide whether the result needs registering under $defs for
// cycle-breaking.
//
// The literal boolean schemas report asymmetric containsRefs values (false
// for `false`, true for `true`) — this looks unintentional but matches the
// reference implementation exactly and is harmless: a literal true/false
// sub-schema triggers no further $ref lookups regardless.
func inlineRefs(schema *Schema, resolver Resolver) (*Schema, bool, error) {
	if schema.isFalse() {
		return NormFalse(), false, nil
	}
	if schema.isTrue() {
		return NormTrue(), true, nil
	}

	result := schema.clone()
	containsRefs := false

	if result.Ref != "" {
		side := result.clone()
		side.Ref = ""
		target, err := resolver.Resolve(result.Ref)
		if err != nil {
			return nil, false, err
		}
		result = &Schema{AllOf: []*Schema{side, target}}
		containsRefs = true
	}

	for _, list := range []*[]*Schema{&result.AnyOf, &result.AllOf, &result.OneOf} {
		if *list == nil {
			continue
		}
		newList := make([]*Schema, len(*list))
		for i, sub := range *list {
			inlined, subContainsRefs, err := inlineRefs(sub, resolver)
			if err != nil {
				return nil, false, err
			}
			newList[i] = inlined
			containsRefs = containsRefs || subContainsRefs
		}
		*list = newList
	}

	if result.Not != nil {
		inlined, subContainsRefs, err := inlineRefs(result.Not, resolver)
		if err != nil {
			return nil, false, err
		}
		result.Not = inlined
		containsRefs = containsRefs || subContainsRefs
	}

	return result, containsRefs, nil
}
