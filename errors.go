package jsonschema

import (
	"errors"
	"fmt"
)

// Schema parsing and conversion errors.
var (
	// ErrInvalidSchemaType is returned when `type` is neither a string nor
	// an array of strings.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrUnsupportedTypeForRat is returned when a numeric keyword's JSON
	// value cannot be interpreted as a number or numeric string.
	ErrUnsupportedTypeForRat = errors.New("unsupported type for rat")

	// ErrFailedToConvertToRat is returned when a numeric string cannot be
	// parsed into an exact rational.
	ErrFailedToConvertToRat = errors.New("failed to convert to rat")

	// ErrNotAnObjectOrBoolean is returned when the top-level input to
	// Normalize is neither a boolean literal nor a keyword-map.
	ErrNotAnObjectOrBoolean = errors.New("schema must be a boolean or an object")
)

// Reference resolution errors.
var (
	// ErrUnresolvedRef is returned when a `$ref` does not resolve against
	// the root schema.
	ErrUnresolvedRef = errors.New("unresolved reference")

	// ErrInvalidPointer names a `$ref` value that is not a well-formed
	// fragment JSON pointer. PointerResolver does not return it: such a
	// `$ref` faults with ErrUnresolvedRef.
	ErrInvalidPointer = errors.New("invalid json pointer")
)

// Merge algebra errors.
var (
	// ErrUnmergeableKeyword is returned when two schemas both specify a
	// keyword with no registered combiner.
	ErrUnmergeableKeyword = errors.New("unmergeable keyword")

	// ErrEmptySchemaList is the panic value of Merge/MergeAll when called
	// with no operands; this is a caller bug, not a malformed user schema.
	ErrEmptySchemaList = errors.New("merge requires at least one schema")
)

// Well-formedness checker errors.
var (
	// ErrMalformedNormalForm is returned by CheckNormalized when a schema
	// does not conform to the normal-form grammar.
	ErrMalformedNormalForm = errors.New("malformed normal form")
)

// FaultKind discriminates the category of a NormalizationFault.
type FaultKind int

const (
	NotAnObject FaultKind = iota
	UnresolvedRef
	UnmergeableKeyword
	MalformedNormalForm
)

func (k FaultKind) String() string {
	switch k {
	case NotAnObject:
		return "NotAnObject"
	case UnresolvedRef:
		return "UnresolvedRef"
	case UnmergeableKeyword:
		return "UnmergeableKeyword"
	case MalformedNormalForm:
		return "MalformedNormalForm"
	default:
		return "Unknown"
	}
}

// NormalizationFault is the single structured error the normalizer raises,
// in the spirit of the validator's EvaluationError{Keyword, Code, Message}:
// one struct, discriminated by Kind, carrying whatever context that Kind
// needs.
type NormalizationFault struct {
	Kind    FaultKind
	Keyword string // set for UnmergeableKeyword
	Ref     string // set for UnresolvedRef
	Reason  string // set for MalformedNormalForm
	Err     error  // wrapped sentinel, for errors.Is
}

func (f *NormalizationFault) Error() string {
	switch f.Kind {
	case UnmergeableKeyword:
		return fmt.Sprintf("normalization fault: no combiner for keyword %q present on both operands", f.Keyword)
	case UnresolvedRef:
		return fmt.Sprintf("normalization fault: unresolved reference %q", f.Ref)
	case MalformedNormalForm:
		return fmt.Sprintf("normalization fault: malformed normal form: %s", f.Reason)
	default:
		return "normalization fault: schema must be a boolean or an object"
	}
}

func (f *NormalizationFault) Unwrap() error { return f.Err }

func newUnmergeableKeywordFault(keyword string) *NormalizationFault {
	return &NormalizationFault{Kind: UnmergeableKeyword, Keyword: keyword, Err: ErrUnmergeableKeyword}
}

func newUnresolvedRefFault(ref string) *NormalizationFault {
	return &NormalizationFault{Kind: UnresolvedRef, Ref: ref, Err: ErrUnresolvedRef}
}

func newMalformedNormalFormFault(reason string) *NormalizationFault {
	return &NormalizationFault{Kind: MalformedNormalForm, Reason: reason, Err: ErrMalformedNormalForm}
}

func newNotAnObjectFault() *NormalizationFault {
	return &NormalizationFault{Kind: NotAnObject, Err: ErrNotAnObjectOrBoolean}
}
