package schema

import "github.com/JangRuBin2/rulang/pkg/value"

// Type defines the contract for field validation: does v carry the
// Kind this declared field type expects.
type Type interface {
	// Name returns the declared type name, exactly as it appears in a
	// `validate` field (e.g. "string", "number").
	Name() string
	// Matches reports whether v's tag satisfies this type.
	Matches(v value.Value) bool
}

type stringType struct{}

func (stringType) Name() string               { return "string" }
func (stringType) Matches(v value.Value) bool { return v.Kind == value.String }

type numberType struct{}

func (numberType) Name() string               { return "number" }
func (numberType) Matches(v value.Value) bool { return v.Kind == value.Number }

type booleanType struct{}

func (booleanType) Name() string               { return "boolean" }
func (booleanType) Matches(v value.Value) bool { return v.Kind == value.Boolean }

type arrayType struct{}

func (arrayType) Name() string               { return "array" }
func (arrayType) Matches(v value.Value) bool { return v.Kind == value.Array }

type objectType struct{}

func (objectType) Name() string               { return "object" }
func (objectType) Matches(v value.Value) bool { return v.Kind == value.ObjectKind }

// String creates a string field type.
func String() Type { return stringType{} }

// Number creates a number field type.
func Number() Type { return numberType{} }

// Boolean creates a boolean field type.
func Boolean() Type { return booleanType{} }

// Array creates an array field type.
func Array() Type { return arrayType{} }

// Object creates an object field type. Per-key checks for its nested
// fields are driven by Field.Nested, not by this Type itself.
func Object() Type { return objectType{} }

// Lookup resolves one of the five declared TYPENAME lexemes to its
// Type, as parsed by pkg/parser's `validate` field grammar.
func Lookup(typeName string) (Type, bool) {
	switch typeName {
	case "string":
		return String(), true
	case "number":
		return Number(), true
	case "boolean":
		return Boolean(), true
	case "array":
		return Array(), true
	case "object":
		return Object(), true
	default:
		return nil, false
	}
}
