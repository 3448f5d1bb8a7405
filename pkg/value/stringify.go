package value

import (
	"strconv"
	"strings"
)

// Stringify renders v the way `print`, string-concatenating `+`, and
// the REPL all do. It never fails: every Kind has a defined form.
func Stringify(v Value) string {
	switch v.Kind {
	case Null:
		return "null"
	case Number:
		return stringifyNumber(v.num)
	case Boolean:
		if v.bool {
			return "true"
		}
		return "false"
	case String:
		return v.str
	case Array:
		parts := make([]string, len(v.arr))
		for i, elem := range v.arr {
			parts[i] = Stringify(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ObjectKind:
		if v.obj == nil {
			return "{}"
		}
		parts := make([]string, 0, v.obj.Len())
		for _, k := range v.obj.Keys() {
			val, _ := v.obj.Get(k)
			parts = append(parts, k+": "+Stringify(val))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case Function:
		return "<function>"
	case Native:
		return "<native function>"
	case StateTypeKind:
		name := ""
		if v.stateType != nil && v.stateType.Compiled != nil {
			name = v.stateType.Compiled.Name
		}
		return "<state-type " + name + ">"
	case StateInstanceKind:
		name, current := "", ""
		if v.instance != nil && v.instance.Type != nil {
			name = v.instance.Type.Name
			current = v.instance.Type.NameOf(v.instance.Current)
		}
		return "<" + name + ": " + current + ">"
	default:
		return ""
	}
}

// stringifyNumber renders a float the way spec.md requires: plain
// decimal, no trailing ".0" for integer values, locale-independent.
func stringifyNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
