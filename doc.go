// Package jsonschema rewrites JSON Schema Draft 2020-12 documents into
// disjunctive normal form: disjunction hoisted to the top level, allOf,
// oneOf, not, and if/then/else eliminated from interior positions, and
// $ref inlined except where it must be kept as a cycle-breaking $defs
// entry. It is a term-rewriting engine, not a validator — no instance data
// is ever checked against a schema here.
package jsonschema
