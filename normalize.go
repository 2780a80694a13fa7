package jsonschema

// normalizeInner is the recursive driver: inline refs, rewrite to DNF, then
// recurse into the keyword positions that can nest further sub-schemas
// (additionalProperties, items, additionalItems, properties, prefixItems).
// A schema is memoized by its pre-normalization fingerprint so a cyclic
// $ref normalizes to a single $defs entry instead of recursing forever.
func normalizeInner(schema *Schema, resolver Resolver, newRefs map[string]*Schema) (*Schema, error) {
	if schema.isFalse() {
		return NormFalse(), nil
	}
	if schema.isTrue() {
		return NormTrue(), nil
	}

	fp, err := fingerprint(schema)
	if err != nil {
		return nil, err
	}
	if _, seen := newRefs[fp]; seen {
		return &Schema{AnyOf: []*Schema{{Ref: "#/$defs/" + fp}}}, nil
	}

	inlined, containsRefs, err := inlineRefs(schema, resolver)
	if err != nil {
		return nil, err
	}

	result, err := toDNF(inlined, resolver, newRefs)
	if err != nil {
		return nil, err
	}

	if containsRefs {
		newRefs[fp] = result
	}

	for _, branch := range result.AnyOf {
		if branch.AdditionalProperties != nil {
			normalized, err := normalizeInner(branch.AdditionalProperties, resolver, newRefs)
			if err != nil {
				return nil, err
			}
			branch.AdditionalProperties = normalized
		}
		if branch.Items != nil {
			normalized, err := normalizeInner(branch.Items, resolver, newRefs)
			if err != nil {
				return nil, err
			}
			branch.Items = normalized
		}
		if branch.AdditionalItems != nil {
			normalized, err := normalizeInner(branch.AdditionalItems, resolver, newRefs)
			if err != nil {
				return nil, err
			}
			branch.AdditionalItems = normalized
		}
		if branch.Properties != nil {
			for name, sub := range *branch.Properties {
				normalized, err := normalizeInner(sub, resolver, newRefs)
				if err != nil {
					return nil, err
				}
				(*branch.Properties)[name] = normalized
			}
		}
		// Unlike the reference implementation (which drops the refs table on
		// this recursive call — see normlaize.py's _normalize — this threads
		// newRefs through, so a cycle reachable only via a prefixItems
		// position still breaks instead of recursing forever.
		for i, sub := range branch.PrefixItems {
			normalized, err := normalizeInner(sub, resolver, newRefs)
			if err != nil {
				return nil, err
			}
			branch.PrefixItems[i] = normalized
		}
	}

	if containsRefs {
		return &Schema{AnyOf: []*Schema{{Ref: "#/$defs/" + fp}}}, nil
	}
	return result, nil
}

// Normalize rewrites schema into disjunctive normal form, returning a
// schema of shape {anyOf: [...], $defs?: {...}, $schema?: ...}. The
// top-level boolean sentinels intentionally differ from NormFalse/NormTrue:
// Normalize(false) is {type: []} and Normalize(true) is {}, matching the
// original's normalize() function exactly (its first two branches, as
// opposed to the NORM_FALSE/NORM_TRUE constants used internally).
func Normalize(schema *Schema) (*Schema, error) {
	if schema == nil {
		return nil, newNotAnObjectFault()
	}
	if schema.isFalse() {
		return &Schema{Type: SchemaType{}}, nil
	}
	if schema.isTrue() {
		return &Schema{}, nil
	}

	resolver := NewPointerResolver(schema)

	newSchema := schema.clone()
	savedSchemaKeyword := newSchema.Schema
	newSchema.Schema = ""
	newSchema.Defs = nil

	newRefs := make(map[string]*Schema)
	normalized, err := normalizeInner(newSchema, resolver, newRefs)
	if err != nil {
		return nil, err
	}

	if savedSchemaKeyword != "" {
		normalized.Schema = savedSchemaKeyword
	}
	normalized.Defs = newRefs
	return normalized, nil
}
