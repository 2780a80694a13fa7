package jsonschema

// mergeSchemas combines two flat (non-logical) schema operands into one,
// applying the per-keyword algebra below. Unlike kaptinlin/jsonschema's
// MergeSchemas (a union/superset design meant for combining allOf branches
// during validation), this produces an intersection: a value must satisfy
// both operands simultaneously. Both arguments are treated as read-only;
// the result is a fresh Schema.
func mergeSchemas(a, b *Schema) (*Schema, error) {
	if a == nil {
		a = &Schema{}
	}
	if b == nil {
		b = &Schema{}
	}

	result := &Schema{}

	// Complex mergers run first: they fold additionalProperties/items
	// into the per-property and per-position results before the simple
	// mergers look at what is left over.
	if a.Properties != nil || b.Properties != nil {
		result.Properties = mergeProperties(a.Properties, b.Properties, a.AdditionalProperties, b.AdditionalProperties)
	}
	if a.PrefixItems != nil || b.PrefixItems != nil {
		result.PrefixItems = mergePrefixItems(a.PrefixItems, b.PrefixItems, a.Items, b.Items)
	}

	if err := mergeSimpleKeywords(result, a, b); err != nil {
		return nil, err
	}

	additionalProperties, err := mergeUnmergeableSchemaField("additionalProperties", a.AdditionalProperties, b.AdditionalProperties)
	if err != nil {
		return nil, err
	}
	result.AdditionalProperties = additionalProperties

	additionalItems, err := mergeUnmergeableSchemaField("additionalItems", a.AdditionalItems, b.AdditionalItems)
	if err != nil {
		return nil, err
	}
	result.AdditionalItems = additionalItems

	extra, err := mergeExtra(a.Extra, b.Extra)
	if err != nil {
		return nil, err
	}
	result.Extra = extra

	return result, nil
}

// mergeSimpleKeywords applies the one-rule-per-keyword table: a keyword
// present on only one side is copied verbatim, present on both sides is
// combined via its merge rule.
func mergeSimpleKeywords(result, a, b *Schema) error {
	result.Type = mergeType(a.Type, b.Type)

	result.Required = mergeRequired(a.Required, b.Required)

	if rat, err := mergeRatField(a.MultipleOf, b.MultipleOf, lcmRat); err != nil {
		return err
	} else {
		result.MultipleOf = rat
	}
	if rat, err := mergeRatField(a.Minimum, b.Minimum, maxRat); err != nil {
		return err
	} else {
		result.Minimum = rat
	}
	if rat, err := mergeRatField(a.Maximum, b.Maximum, minRat); err != nil {
		return err
	} else {
		result.Maximum = rat
	}

	result.MinItems = mergeFloatField(a.MinItems, b.MinItems, maxFloat)
	result.MinLength = mergeFloatField(a.MinLength, b.MinLength, maxFloat)
	result.MaxLength = mergeFloatField(a.MaxLength, b.MaxLength, minFloat)

	result.Pattern = mergePattern(a.Pattern, b.Pattern)

	result.Items = mergeItemsField(a.Items, b.Items)

	result.Const = mergeConst(a.Const, b.Const)
	result.Enum = mergeEnum(a.Enum, b.Enum)
	result.Format = mergeFormat(a.Format, b.Format)
	result.DependentRequired = mergeDependentRequired(a.DependentRequired, b.DependentRequired)
	result.Deprecated = mergeDeprecated(a.Deprecated, b.Deprecated)

	return nil
}

// mergeType intersects two type lists. Either list being absent means "no
// type constraint on that side," so the other side's list wins outright.
func mergeType(a, b SchemaType) SchemaType {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	bSet := make(map[string]struct{}, len(b))
	for _, t := range b {
		bSet[t] = struct{}{}
	}
	result := make(SchemaType, 0, len(a))
	for _, t := range a {
		if _, ok := bSet[t]; ok {
			result = append(result, t)
		}
	}
	return result
}

// mergeRequired is the union of two property-name sets: a value satisfying
// both operands must carry every property either one demands.
func mergeRequired(a, b []string) []string {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	result := make([]string, 0, len(a)+len(b))
	for _, group := range [][]string{a, b} {
		for _, name := range group {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}
	return result
}

func maxRat(a, b *Rat) *Rat {
	if a.cmp(b) >= 0 {
		return a
	}
	return b
}

func minRat(a, b *Rat) *Rat {
	if a.cmp(b) <= 0 {
		return a
	}
	return b
}

func mergeRatField(a, b *Rat, combine func(a, b *Rat) *Rat) (*Rat, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	return combine(a, b), nil
}

func maxFloat(a, b float64) float64 {
	if a >= b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a <= b {
		return a
	}
	return b
}

func mergeFloatField(a, b *float64, combine func(a, b float64) float64) *float64 {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	v := combine(*a, *b)
	return &v
}

// mergePattern conjoins two regular expressions as "(a)&(b)", exactly as
// the original: this is not a valid regex on its own, it is a contract
// with whatever downstream consumer interprets a normalized pattern.
func mergePattern(a, b *string) *string {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	combined := "(" + *a + ")&(" + *b + ")"
	return &combined
}

// mergeItemsField wraps both operands' `items` in `allOf` so a later
// normalization pass can re-flatten them into DNF.
func mergeItemsField(a, b *Schema) *Schema {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Schema{AllOf: []*Schema{a, b}}
}

// mergeConst keeps the left operand, matching the original's placeholder
// `lambda a, b: a` rule (true const-conflict detection is left to a
// downstream evaluator, per spec.md §9).
func mergeConst(a, b *ConstValue) *ConstValue {
	if a == nil {
		return b
	}
	return a
}

// mergeEnum concatenates both operands' permitted-value lists; duplicates
// are tolerated, matching the original.
func mergeEnum(a, b []any) []any {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	result := make([]any, 0, len(a)+len(b))
	result = append(result, a...)
	result = append(result, b...)
	return result
}

// mergeFormat keeps the left operand, a placeholder rule matching the
// original.
func mergeFormat(a, b *string) *string {
	if a == nil {
		return b
	}
	return a
}

// mergeDependentRequired keeps the left operand, a placeholder rule
// matching the original.
func mergeDependentRequired(a, b map[string][]string) map[string][]string {
	if a == nil {
		return b
	}
	return a
}

// mergeDeprecated is a logical OR: a schema built from either deprecated
// operand is itself deprecated.
func mergeDeprecated(a, b *bool) *bool {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	v := *a || *b
	return &v
}

// mergeUnmergeableSchemaField implements the original's fallthrough rule
// for keywords with neither a simple nor a complex merger: present on one
// side only, it is copied verbatim; present on both, there is no rule to
// combine it and the merge faults.
func mergeUnmergeableSchemaField(keyword string, a, b *Schema) (*Schema, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	return nil, newUnmergeableKeywordFault(keyword)
}

// mergeExtra copies over any recognized-elsewhere-but-not-here keywords,
// faulting when both operands define the same one.
func mergeExtra(a, b map[string]any) (map[string]any, error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, nil
	}
	result := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		result[k] = v
	}
	for k, v := range b {
		if _, ok := result[k]; ok {
			return nil, newUnmergeableKeywordFault(k)
		}
		result[k] = v
	}
	return result, nil
}

// mergeProperties merges two `properties` maps together with each side's
// `additionalProperties` as fallback for names only the other side names.
//
//	Schema 1: a: 1a,    b: 1b,              ...: 1n
//	Schema 2:           b: 2b,    c: 2c,    ...: 2n
//	Result:   a: 1a+2n, b: 1b+2b, c: 2c+1n, ...: 1n+2n
func mergeProperties(propsA, propsB *SchemaMap, additionalA, additionalB *Schema) *SchemaMap {
	result := make(SchemaMap)
	var a, b SchemaMap
	if propsA != nil {
		a = *propsA
	}
	if propsB != nil {
		b = *propsB
	}

	for name, schema := range a {
		if other, ok := b[name]; ok {
			result[name] = &Schema{AllOf: []*Schema{schema, other}}
		} else if additionalB == nil {
			result[name] = schema
		} else {
			result[name] = &Schema{AllOf: []*Schema{schema, additionalB}}
		}
	}
	for name, schema := range b {
		if _, ok := a[name]; ok {
			continue
		}
		if additionalA == nil {
			result[name] = schema
		} else {
			result[name] = &Schema{AllOf: []*Schema{schema, additionalA}}
		}
	}
	return &result
}

// mergePrefixItems merges two `prefixItems` lists, padding the shorter one
// with its own `items` schema (defaulting to NormTrue) so every position
// is covered, then combining matching positions via allOf.
//
//	Schema 1: a,   a,   a,   b...
//	Schema 2: c,   c,   d...
//	Result:   a+c, a+c, a+d, b+d...
func mergePrefixItems(prefixA, prefixB []*Schema, itemsA, itemsB *Schema) []*Schema {
	if itemsA == nil {
		itemsA = NormTrue()
	}
	if itemsB == nil {
		itemsB = NormTrue()
	}

	a := append([]*Schema(nil), prefixA...)
	b := append([]*Schema(nil), prefixB...)

	for len(a) < len(b) {
		a = append(a, itemsA)
	}
	for len(b) < len(a) {
		b = append(b, itemsB)
	}

	result := make([]*Schema, len(a))
	for i := range a {
		result[i] = &Schema{AllOf: []*Schema{a[i], b[i]}}
	}
	return result
}
