// Package schema backs the `validate` statement's per-field type
// checks. It keeps the teacher's Type interface and factory-function
// shape (schema.String(), schema.Number(), ...) but retargets it from
// `any` to Rulang's value.Value, since every field here is checked
// against an already-evaluated runtime value rather than a raw decoded
// one.
//
// Basic usage:
//
//	fields := []schema.Field{
//	    {Name: "name", Type: schema.String()},
//	    {Name: "age", Type: schema.Number(), Optional: true},
//	}
//	err := schema.ValidateObject(fields, obj, "")
//
// Validation is fail-fast: the first field to fail aborts with a
// single domain.ValidationError, rather than an aggregate, matching
// spec's singular {path, expected, actual} error shape.
package schema
