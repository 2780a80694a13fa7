package jsonschema

// CheckNormalized verifies that schema conforms to the normal-form
// grammar: a top-level object whose only keys (besides $schema/$defs) is
// anyOf, whose branches carry no logical combinator keyword, and whose
// $ref branches carry nothing else. $ref targets are resolved against
// schema itself (so a normalized schema's own $defs can be checked) and
// each distinct ref is only walked once, breaking cycles.
func CheckNormalized(schema *Schema) error {
	resolver := NewPointerResolver(schema)
	checkedRefs := make(map[string]struct{})
	return checkNormalizedInner(schema, resolver, checkedRefs)
}

func checkNormalizedInner(schema *Schema, resolver Resolver, checkedRefs map[string]struct{}) error {
	if schema == nil || schema.Boolean != nil {
		return newMalformedNormalFormFault("must be an object, not a boolean literal")
	}
	if schema.AnyOf == nil {
		return newMalformedNormalFormFault("schema has no anyOf key")
	}
	if topLevelHasExtraKeys(schema) {
		return newMalformedNormalFormFault("schema has keys other than anyOf, $schema, $defs")
	}

	for _, branch := range schema.AnyOf {
		if err := checkBranch(branch); err != nil {
			return err
		}

		if branch.Ref != "" {
			if _, seen := checkedRefs[branch.Ref]; !seen {
				checkedRefs[branch.Ref] = struct{}{}
				target, err := resolver.Resolve(branch.Ref)
				if err != nil {
					return err
				}
				if err := checkNormalizedInner(target, resolver, checkedRefs); err != nil {
					return err
				}
			}
			continue
		}

		// The reference implementation checks these three keywords against
		// the outer schema object instead of the branch being iterated,
		// which (since the outer schema can only carry anyOf/$schema/$defs)
		// makes that check permanently dead code. Checking the branch here
		// is the fix: otherwise additionalProperties/items/additionalItems
		// subtrees are never verified at all, unlike properties/prefixItems
		// just below, which correctly reference the branch already.
		if branch.AdditionalProperties != nil {
			if err := checkNormalizedInner(branch.AdditionalProperties, resolver, checkedRefs); err != nil {
				return err
			}
		}
		if branch.Items != nil {
			if err := checkNormalizedInner(branch.Items, resolver, checkedRefs); err != nil {
				return err
			}
		}
		if branch.AdditionalItems != nil {
			if err := checkNormalizedInner(branch.AdditionalItems, resolver, checkedRefs); err != nil {
				return err
			}
		}

		if branch.Properties != nil {
			for _, sub := range *branch.Properties {
				if err := checkNormalizedInner(sub, resolver, checkedRefs); err != nil {
					return err
				}
			}
		}
		for _, sub := range branch.PrefixItems {
			if err := checkNormalizedInner(sub, resolver, checkedRefs); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkBranch rejects any logical combinator keyword inside an anyOf
// branch, and requires a $ref branch to carry nothing else.
func checkBranch(branch *Schema) error {
	if hasCombinators(branch) {
		return newMalformedNormalFormFault("logical combinator keyword not allowed in normalized sub-schema")
	}
	if branch.Ref != "" && sideKeywordsOtherThanRef(branch) {
		return newMalformedNormalFormFault("$ref branch has other keys beside $ref")
	}
	return nil
}

func hasCombinators(s *Schema) bool {
	return s.AnyOf != nil || s.AllOf != nil || s.OneOf != nil || s.Not != nil ||
		s.If != nil || s.Then != nil || s.Else != nil
}

func topLevelHasExtraKeys(s *Schema) bool {
	return s.Ref != "" || hasCombinators(s) || sideKeywordsOtherThanRef(s)
}

func sideKeywordsOtherThanRef(s *Schema) bool {
	return s.Type != nil || s.Const != nil || s.Enum != nil || s.Format != nil || s.Deprecated != nil ||
		s.Minimum != nil || s.Maximum != nil || s.MultipleOf != nil ||
		s.MinLength != nil || s.MaxLength != nil || s.Pattern != nil ||
		s.Items != nil || s.PrefixItems != nil || s.MinItems != nil || s.AdditionalItems != nil ||
		s.Properties != nil || s.AdditionalProperties != nil || s.Required != nil || s.DependentRequired != nil ||
		len(s.Extra) > 0
}
