package jsonschema

// MergeAll computes the exact conjunction of a list of already-DNF'd
// schemas by expanding the full Cartesian product of their anyOf branches:
// one output branch per combination of one input branch from each operand.
// This is precise but can grow the branch count multiplicatively.
func MergeAll(schemas []*Schema) (*Schema, error) {
	if len(schemas) == 0 {
		panic(ErrEmptySchemaList)
	}

	result := []*Schema{{}}
	for _, schema := range schemas {
		newResult := make([]*Schema, 0, len(result)*len(schema.AnyOf))
		for _, option := range schema.AnyOf {
			for _, acc := range result {
				merged, err := mergeSchemas(acc, option)
				if err != nil {
					return nil, err
				}
				newResult = append(newResult, merged)
			}
		}
		result = newResult
	}
	return &Schema{AnyOf: result}, nil
}

// Merge is the driver's default combinator: mergeSimple, a positional zip
// over each operand's anyOf branches (wrapping around the shorter lists)
// rather than the full cross product. It under-approximates MergeAll in
// general but stays linear in the branch count, which is what the
// normalizer needs for every allOf/oneOf/$ref merge it performs.
func Merge(schemas []*Schema) (*Schema, error) {
	return mergeSimple(schemas)
}

func mergeSimple(schemas []*Schema) (*Schema, error) {
	if len(schemas) == 0 {
		panic(ErrEmptySchemaList)
	}

	maxBranches := 0
	for _, s := range schemas {
		if len(s.AnyOf) > maxBranches {
			maxBranches = len(s.AnyOf)
		}
	}

	results := make([]*Schema, 0, maxBranches)
	for idx := 0; idx < maxBranches; idx++ {
		result := &Schema{}
		for _, schema := range schemas {
			branches := schema.AnyOf
			if len(branches) == 0 {
				continue
			}
			option := branches[idx%len(branches)]
			merged, err := mergeSchemas(result, option)
			if err != nil {
				return nil, err
			}
			result = merged
		}
		results = append(results, result)
	}
	return &Schema{AnyOf: results}, nil
}
