package jsonschema

// simplifyConditional rewrites if/then/else into a disjunction, using the
// standard equivalence:
//
//	(not(IF) or THEN) and (IF or ELSE)
//	<==>
//	(IF and THEN) or (not(IF) and ELSE)
//
// A schema with none of if/then/else present is returned unchanged. A
// schema with then/else but no if collapses to NormTrue, discarding every
// other keyword it carried — this mirrors the reference behavior exactly
// rather than trying to recover the "obviously intended" else-only case.
func simplifyConditional(schema *Schema) *Schema {
	if schema.If == nil && schema.Then == nil && schema.Else == nil {
		return schema
	}

	sideSchema := schema.clone()
	sideSchema.If = nil
	sideSchema.Then = nil
	sideSchema.Else = nil

	ifSchema := schema.If
	thenSchema := schema.Then
	if thenSchema == nil {
		thenSchema = boolSchema(true)
	}
	elseSchema := schema.Else
	if elseSchema == nil {
		elseSchema = boolSchema(true)
	}

	var anyOf []*Schema
	if ifSchema != nil && elseSchema != nil {
		anyOf = append(anyOf, &Schema{AllOf: []*Schema{sideSchema, {Not: ifSchema}, elseSchema}})
	}
	if ifSchema != nil && thenSchema != nil {
		anyOf = append(anyOf, &Schema{AllOf: []*Schema{sideSchema, ifSchema, thenSchema}})
	}

	if len(anyOf) == 0 {
		return NormTrue()
	}
	return &Schema{AnyOf: anyOf}
}
