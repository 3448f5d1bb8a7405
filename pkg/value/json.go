package value

import (
	"fmt"

	"github.com/JangRuBin2/rulang/pkg/domain"
)

// ToAny converts v into a plain Go value encoding/json can marshal.
// Function, Native, StateType, and StateInstance have no wire form and
// are rejected with a TypeError, matching how the evaluator itself
// rejects operations undefined for those tags.
func ToAny(v Value) (any, error) {
	switch v.Kind {
	case Null:
		return nil, nil
	case Number:
		return v.num, nil
	case String:
		return v.str, nil
	case Boolean:
		return v.bool, nil
	case Array:
		out := make([]any, len(v.arr))
		for i, elem := range v.arr {
			enc, err := ToAny(elem)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	case ObjectKind:
		out := make(map[string]any, v.obj.Len())
		for _, k := range v.obj.Keys() {
			elem, _ := v.obj.Get(k)
			enc, err := ToAny(elem)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	default:
		return nil, &domain.TypeError{Msg: fmt.Sprintf("cannot encode a %s value", v.Kind)}
	}
}

// FromAny is ToAny's inverse over the shapes encoding/json produces
// when unmarshaling into `any` (nil, float64, string, bool, []any,
// map[string]any).
func FromAny(payload any) (Value, error) {
	switch p := payload.(type) {
	case nil:
		return NewNull(), nil
	case float64:
		return NewNumber(p), nil
	case int:
		return NewNumber(float64(p)), nil
	case string:
		return NewString(p), nil
	case bool:
		return NewBoolean(p), nil
	case []any:
		elems := make([]Value, len(p))
		for i, raw := range p {
			v, err := FromAny(raw)
			if err != nil {
				return NewNull(), err
			}
			elems[i] = v
		}
		return NewArray(elems), nil
	case map[string]any:
		obj := NewObject()
		for k, raw := range p {
			v, err := FromAny(raw)
			if err != nil {
				return NewNull(), err
			}
			obj.Set(k, v)
		}
		return NewObjectValue(obj), nil
	default:
		return NewNull(), &domain.TypeError{Msg: fmt.Sprintf("cannot decode a value of type %T", payload)}
	}
}
