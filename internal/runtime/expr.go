package runtime

import (
	"math"

	"github.com/JangRuBin2/rulang/pkg/ast"
	"github.com/JangRuBin2/rulang/pkg/domain"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// evalExpr evaluates expr in scope, returning its value alongside any
// control Signal raised while computing it (a `next()` call nested
// arbitrarily deep still bubbles up through every caller unchanged).
func (e *Evaluator) evalExpr(expr ast.Expr, scope *value.Scope) (value.Value, value.Signal, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return value.NewNumber(n.Value), value.NoSignal, nil
	case *ast.StringLiteral:
		return value.NewString(n.Value), value.NoSignal, nil
	case *ast.BoolLiteral:
		return value.NewBoolean(n.Value), value.NoSignal, nil
	case *ast.NullLiteral:
		return value.NewNull(), value.NoSignal, nil
	case *ast.Identifier:
		v, ok := scope.Get(n.Name)
		if !ok {
			return value.NewNull(), value.NoSignal, &domain.NameError{Name: n.Name}
		}
		return v, value.NoSignal, nil
	case *ast.Binary:
		return e.evalBinary(n, scope)
	case *ast.Unary:
		return e.evalUnary(n, scope)
	case *ast.Call:
		return e.evalCall(n, scope)
	case *ast.Member:
		return e.evalMember(n, scope)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, scope)
	case *ast.ObjectLiteral:
		return e.evalObjectLiteral(n, scope)
	case *ast.FunctionLiteral:
		return value.NewFunction(&value.FunctionValue{Params: n.Params, Body: n.Body, Scope: scope}), value.NoSignal, nil
	default:
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "unknown expression type"}
	}
}

func (e *Evaluator) evalBinary(b *ast.Binary, scope *value.Scope) (value.Value, value.Signal, error) {
	switch b.Op {
	case "=":
		return e.evalAssignment(b, scope)
	case "and", "or":
		return e.evalLogical(b, scope)
	}

	left, sig, err := e.evalExpr(b.Left, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}
	right, sig, err := e.evalExpr(b.Right, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}

	switch b.Op {
	case "+":
		if left.Kind == value.String || right.Kind == value.String {
			return value.NewString(value.Stringify(left) + value.Stringify(right)), value.NoSignal, nil
		}
		if left.Kind != value.Number || right.Kind != value.Number {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "+ requires two numbers or a string operand"}
		}
		return value.NewNumber(left.Num() + right.Num()), value.NoSignal, nil

	case "-", "*", "/", "%":
		if left.Kind != value.Number || right.Kind != value.Number {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: b.Op + " requires both operands to be numbers"}
		}
		switch b.Op {
		case "-":
			return value.NewNumber(left.Num() - right.Num()), value.NoSignal, nil
		case "*":
			return value.NewNumber(left.Num() * right.Num()), value.NoSignal, nil
		case "/":
			return value.NewNumber(left.Num() / right.Num()), value.NoSignal, nil
		default: // "%"
			return value.NewNumber(math.Mod(left.Num(), right.Num())), value.NoSignal, nil
		}

	case "<", ">", "<=", ">=":
		if left.Kind != value.Number || right.Kind != value.Number {
			return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: b.Op + " requires both operands to be numbers"}
		}
		switch b.Op {
		case "<":
			return value.NewBoolean(left.Num() < right.Num()), value.NoSignal, nil
		case ">":
			return value.NewBoolean(left.Num() > right.Num()), value.NoSignal, nil
		case "<=":
			return value.NewBoolean(left.Num() <= right.Num()), value.NoSignal, nil
		default: // ">="
			return value.NewBoolean(left.Num() >= right.Num()), value.NoSignal, nil
		}

	case "==":
		return value.NewBoolean(left.Equal(right)), value.NoSignal, nil
	case "!=":
		return value.NewBoolean(!left.Equal(right)), value.NoSignal, nil
	default:
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "unknown binary operator " + b.Op}
	}
}

// evalAssignment trusts the parser's invariant that an assignment's
// left side is always an Identifier (it rejects anything else with a
// ParseError before the evaluator ever sees it).
func (e *Evaluator) evalAssignment(b *ast.Binary, scope *value.Scope) (value.Value, value.Signal, error) {
	ident := b.Left.(*ast.Identifier)
	v, sig, err := e.evalExpr(b.Right, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}
	if !scope.Assign(ident.Name, v) {
		return value.NewNull(), value.NoSignal, &domain.NameError{Name: ident.Name}
	}
	return v, value.NoSignal, nil
}

func (e *Evaluator) evalLogical(b *ast.Binary, scope *value.Scope) (value.Value, value.Signal, error) {
	left, sig, err := e.evalExpr(b.Left, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}
	if b.Op == "or" && left.Truthy() {
		return value.NewBoolean(true), value.NoSignal, nil
	}
	if b.Op == "and" && !left.Truthy() {
		return value.NewBoolean(false), value.NoSignal, nil
	}
	right, sig, err := e.evalExpr(b.Right, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}
	return value.NewBoolean(right.Truthy()), value.NoSignal, nil
}

func (e *Evaluator) evalUnary(u *ast.Unary, scope *value.Scope) (value.Value, value.Signal, error) {
	v, sig, err := e.evalExpr(u.Right, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}
	if u.Op != "-" {
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "unknown unary operator " + u.Op}
	}
	if v.Kind != value.Number {
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "unary - requires a number"}
	}
	return value.NewNumber(-v.Num()), value.NoSignal, nil
}

func (e *Evaluator) evalCall(c *ast.Call, scope *value.Scope) (value.Value, value.Signal, error) {
	callee, sig, err := e.evalExpr(c.Callee, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}

	args := make([]value.Value, 0, len(c.Args))
	for _, a := range c.Args {
		v, sig, err := e.evalExpr(a, scope)
		if err != nil || sig.Kind != value.SignalNone {
			return value.NewNull(), sig, err
		}
		args = append(args, v)
	}

	switch callee.Kind {
	case value.Function:
		return e.callFunction(callee.Fn(), args)
	case value.Native:
		return callee.NativeFn()(args)
	default:
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "not callable"}
	}
}

// callFunction binds params positionally (missing args default to
// Null, extras are ignored) and consumes a Return signal from the
// body; any Next signal raised inside propagates to the caller
// unchanged, since only the host's middleware driver may consume it.
func (e *Evaluator) callFunction(fn *value.FunctionValue, args []value.Value) (value.Value, value.Signal, error) {
	child := value.NewScope(fn.Scope)
	for i, p := range fn.Params {
		if i < len(args) {
			child.Define(p, args[i])
		} else {
			child.Define(p, value.NewNull())
		}
	}

	_, sig, err := e.execBlockBody(fn.Body.Body, child)
	if err != nil {
		return value.NewNull(), value.NoSignal, err
	}
	switch sig.Kind {
	case value.SignalReturn:
		return sig.Value, value.NoSignal, nil
	case value.SignalNext:
		return value.NewNull(), sig, nil
	default:
		return value.NewNull(), value.NoSignal, nil
	}
}

func (e *Evaluator) evalMember(m *ast.Member, scope *value.Scope) (value.Value, value.Signal, error) {
	obj, sig, err := e.evalExpr(m.Object, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return value.NewNull(), sig, err
	}

	switch obj.Kind {
	case value.StateTypeKind:
		return e.evalStateTypeMember(obj.StateType(), m.Property)
	case value.StateInstanceKind:
		return e.evalStateInstanceMember(obj.StateInstance(), m.Property)
	case value.Array:
		if m.Property == "length" {
			return value.NewNumber(float64(len(obj.Arr()))), value.NoSignal, nil
		}
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "unknown array member " + m.Property}
	case value.ObjectKind:
		v, present := obj.Obj().Get(m.Property)
		if !present {
			return value.NewNull(), value.NoSignal, nil
		}
		return v, value.NoSignal, nil
	default:
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "cannot access ." + m.Property + " on a " + obj.Kind.String()}
	}
}

func (e *Evaluator) evalArrayLiteral(a *ast.ArrayLiteral, scope *value.Scope) (value.Value, value.Signal, error) {
	elems := make([]value.Value, 0, len(a.Elements))
	for _, el := range a.Elements {
		v, sig, err := e.evalExpr(el, scope)
		if err != nil || sig.Kind != value.SignalNone {
			return value.NewNull(), sig, err
		}
		elems = append(elems, v)
	}
	return value.NewArray(elems), value.NoSignal, nil
}

func (e *Evaluator) evalObjectLiteral(o *ast.ObjectLiteral, scope *value.Scope) (value.Value, value.Signal, error) {
	obj := value.NewObject()
	for _, entry := range o.Entries {
		v, sig, err := e.evalExpr(entry.Value, scope)
		if err != nil || sig.Kind != value.SignalNone {
			return value.NewNull(), sig, err
		}
		obj.Set(entry.Key, v)
	}
	return value.NewObjectValue(obj), value.NoSignal, nil
}
