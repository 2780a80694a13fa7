package jsonschema

// invert is a deliberate no-op stub. In the reference implementation it is
// never actually called — a comparison bug in the oneOf exclusion branch
// (comparing a schema value to an integer index) always evaluates false,
// so the "invert this sibling" branch is dead code there. This
// implementation fixes that comparison (see the oneOf loop in toDNF)
// while still leaving invert itself a stub, exactly as the design intends:
// the oneOf expansion is documented as an over-approximation (siblings are
// merged as-is, not truly negated), not an accident.
func invert(schema *Schema) *Schema {
	return schema
}

// toDNF rewrites schema into disjunctive normal form: a single anyOf of
// combinator-free branches. allOf/oneOf/if-then-else are eliminated by
// folding them into that disjunction via the merge algebra; $ref is
// assumed already inlined by the caller.
func toDNF(schema *Schema, resolver Resolver, newRefs map[string]*Schema) (*Schema, error) {
	if schema.isFalse() {
		return NormFalse(), nil
	}
	if schema.isTrue() {
		return NormTrue(), nil
	}

	schema = simplifyConditional(schema)

	anyOfs, err := dnfAnyOf(schema, resolver, newRefs)
	if err != nil {
		return nil, err
	}

	oneOfs, err := dnfOneOf(schema, resolver, newRefs)
	if err != nil {
		return nil, err
	}

	allOfResult, err := dnfAllOf(schema, resolver, newRefs)
	if err != nil {
		return nil, err
	}

	return Merge([]*Schema{{AnyOf: anyOfs}, {AnyOf: oneOfs}, allOfResult})
}

func dnfAnyOf(schema *Schema, resolver Resolver, newRefs map[string]*Schema) ([]*Schema, error) {
	if schema.AnyOf == nil {
		return []*Schema{{}}, nil
	}
	var anyOfs []*Schema
	for _, sub := range schema.AnyOf {
		normalized, err := toDNF(sub, resolver, newRefs)
		if err != nil {
			return nil, err
		}
		anyOfs = append(anyOfs, normalized.AnyOf...)
	}
	return anyOfs, nil
}

// dnfOneOf expands oneOf into an over-approximating disjunction: for each
// sibling, merge it with every other sibling left untouched (invert is a
// no-op, so this does not actually exclude the other branches — it is a
// structural approximation of mutual exclusion, not true XOR).
func dnfOneOf(schema *Schema, resolver Resolver, newRefs map[string]*Schema) ([]*Schema, error) {
	if schema.OneOf == nil {
		return []*Schema{{}}, nil
	}

	normalizedSubs := make([]*Schema, len(schema.OneOf))
	for i, sub := range schema.OneOf {
		normalized, err := toDNF(sub, resolver, newRefs)
		if err != nil {
			return nil, err
		}
		normalizedSubs[i] = normalized
	}

	var oneOfs []*Schema
	for idx := range normalizedSubs {
		operands := make([]*Schema, len(normalizedSubs))
		for j, sub := range normalizedSubs {
			if j == idx {
				operands[j] = invert(sub)
			} else {
				operands[j] = sub
			}
		}
		options, err := Merge(operands)
		if err != nil {
			return nil, err
		}
		oneOfs = append(oneOfs, options.AnyOf...)
	}
	return oneOfs, nil
}

func dnfAllOf(schema *Schema, resolver Resolver, newRefs map[string]*Schema) (*Schema, error) {
	sideSchema := schema.clone()
	sideSchema.AllOf = nil
	sideSchema.AnyOf = nil
	sideSchema.OneOf = nil
	sideSchema.Not = nil

	allOfs := []*Schema{{AnyOf: []*Schema{sideSchema}}}
	for _, sub := range schema.AllOf {
		normalized, err := toDNF(sub, resolver, newRefs)
		if err != nil {
			return nil, err
		}
		allOfs = append(allOfs, normalized)
	}
	return Merge(allOfs)
}
