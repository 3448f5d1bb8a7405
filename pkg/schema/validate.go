package schema

import (
	"github.com/JangRuBin2/rulang/pkg/domain"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// Field is one declared entry of a `validate` schema: a name, its
// required Type, whether it may be absent or Null, and (for Type ==
// Object()) the nested fields checked against its own object value.
type Field struct {
	Name     string
	Type     Type
	Optional bool
	Nested   []Field
}

// ValidateObject checks obj against fields, fail-fast: the first
// violation aborts with a domain.ValidationError carrying the dotted
// path from the validation root, matching spec.md's single-record
// (not aggregate) ValidationError shape.
func ValidateObject(fields []Field, obj *value.Object, pathPrefix string) error {
	for _, field := range fields {
		path := field.Name
		if pathPrefix != "" {
			path = pathPrefix + "." + field.Name
		}

		v, present := obj.Get(field.Name)
		if !present || v.Kind == value.Null {
			if field.Optional {
				continue
			}
			return &domain.ValidationError{Path: path, Expected: field.Type.Name()}
		}

		if !field.Type.Matches(v) {
			return &domain.ValidationError{Path: path, Expected: field.Type.Name(), Actual: v.Kind.String()}
		}

		if field.Type.Name() == "object" && len(field.Nested) > 0 {
			if err := ValidateObject(field.Nested, v.Obj(), path); err != nil {
				return err
			}
		}
	}
	return nil
}
