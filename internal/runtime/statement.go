package runtime

import (
	"github.com/JangRuBin2/rulang/pkg/ast"
	"github.com/JangRuBin2/rulang/pkg/domain"
	"github.com/JangRuBin2/rulang/pkg/observability"
	"github.com/JangRuBin2/rulang/pkg/schema"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// execStatement evaluates one statement in scope, returning any
// control signal (Return, or a propagated Next) it produced.
func (e *Evaluator) execStatement(stmt ast.Stmt, scope *value.Scope) (value.Signal, error) {
	switch s := stmt.(type) {
	case *ast.State, *ast.Transition:
		return value.NoSignal, nil

	case *ast.Let:
		v, sig, err := e.evalExpr(s.Value, scope)
		if err != nil || sig.Kind != value.SignalNone {
			return sig, err
		}
		scope.Define(s.Name, v)
		return value.NoSignal, nil

	case *ast.Fn:
		fn := value.NewFunction(&value.FunctionValue{Params: s.Params, Body: s.Body, Scope: scope})
		scope.Define(s.Name, fn)
		return value.NoSignal, nil

	case *ast.ExpressionStmt:
		_, sig, err := e.evalExpr(s.Expr, scope)
		return sig, err

	case *ast.Print:
		v, sig, err := e.evalExpr(s.Arg, scope)
		if err != nil || sig.Kind != value.SignalNone {
			return sig, err
		}
		e.print(value.Stringify(v))
		return value.NoSignal, nil

	case *ast.If:
		return e.execIf(s, scope)

	case *ast.Return:
		if s.Arg == nil {
			return value.ReturnSignal(value.NewNull()), nil
		}
		v, sig, err := e.evalExpr(s.Arg, scope)
		if err != nil || sig.Kind != value.SignalNone {
			return sig, err
		}
		return value.ReturnSignal(v), nil

	case *ast.Block:
		_, sig, err := e.execBlockBody(s.Body, value.NewScope(scope))
		return sig, err

	case *ast.Endpoint:
		if e.registry == nil {
			return value.NoSignal, &domain.TypeError{Msg: "program declares an endpoint but no registry is configured"}
		}
		if err := e.registry.OnEndpoint(s.Method, s.Path, s.Middlewares, s.Body); err != nil {
			return value.NoSignal, err
		}
		e.hooks.EmitRegistration(observability.RegistrationEvent{Kind: "endpoint", Name: s.Method + " " + s.Path})
		return value.NoSignal, nil

	case *ast.Middleware:
		if e.registry == nil {
			return value.NoSignal, &domain.TypeError{Msg: "program declares middleware but no registry is configured"}
		}
		if err := e.registry.OnMiddleware(s.Name, s.Body); err != nil {
			return value.NoSignal, err
		}
		e.hooks.EmitRegistration(observability.RegistrationEvent{Kind: "middleware", Name: s.Name})
		return value.NoSignal, nil

	case *ast.Use:
		if e.registry == nil {
			return value.NoSignal, &domain.TypeError{Msg: "program declares a use directive but no registry is configured"}
		}
		if err := e.registry.OnUse(s.Middlewares); err != nil {
			return value.NoSignal, err
		}
		e.hooks.EmitRegistration(observability.RegistrationEvent{Kind: "use", Name: joinNames(s.Middlewares)})
		return value.NoSignal, nil

	case *ast.Server:
		port, sig, err := e.evalExpr(s.Port, scope)
		if err != nil || sig.Kind != value.SignalNone {
			return sig, err
		}
		if port.Kind != value.Number {
			return value.NoSignal, &domain.TypeError{Msg: "server port must be a number"}
		}
		if e.registry == nil {
			return value.NoSignal, &domain.TypeError{Msg: "program declares a server but no registry is configured"}
		}
		if err := e.registry.OnServer(port.Num()); err != nil {
			return value.NoSignal, err
		}
		e.hooks.EmitRegistration(observability.RegistrationEvent{Kind: "server", Name: value.Stringify(port)})
		return value.NoSignal, nil

	case *ast.Validate:
		return e.execValidate(s, scope)

	default:
		return value.NoSignal, &domain.TypeError{Msg: "unknown statement type"}
	}
}

// execIf implements the `else if` scoping carve-out: a nested If is
// executed directly in the current scope (not a fresh child one),
// while a plain `else { ... }` block opens its own child scope.
func (e *Evaluator) execIf(s *ast.If, scope *value.Scope) (value.Signal, error) {
	cond, sig, err := e.evalExpr(s.Cond, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return sig, err
	}

	if cond.Truthy() {
		_, sig, err := e.execBlockBody(s.Then.Body, value.NewScope(scope))
		return sig, err
	}

	switch elseNode := s.Else.(type) {
	case nil:
		return value.NoSignal, nil
	case *ast.If:
		return e.execIf(elseNode, scope)
	case *ast.Block:
		_, sig, err := e.execBlockBody(elseNode.Body, value.NewScope(scope))
		return sig, err
	default:
		return value.NoSignal, nil
	}
}

func (e *Evaluator) execValidate(s *ast.Validate, scope *value.Scope) (value.Signal, error) {
	target, sig, err := e.evalExpr(s.Target, scope)
	if err != nil || sig.Kind != value.SignalNone {
		return sig, err
	}
	if target.Kind != value.ObjectKind {
		return value.NoSignal, &domain.ValidationError{Path: "", Expected: "object", Actual: target.Kind.String()}
	}

	fields, err := toSchemaFields(s.Fields)
	if err != nil {
		return value.NoSignal, err
	}
	if err := schema.ValidateObject(fields, target.Obj(), ""); err != nil {
		return value.NoSignal, err
	}
	return value.NoSignal, nil
}

// toSchemaFields converts the parser's ast.ValidationField tree into
// schema.Field, resolving each declared TYPENAME lexeme to its Type.
func toSchemaFields(fields []ast.ValidationField) ([]schema.Field, error) {
	out := make([]schema.Field, 0, len(fields))
	for _, f := range fields {
		t, ok := schema.Lookup(f.Type)
		if !ok {
			return nil, &domain.TypeError{Msg: "unknown validation type " + f.Type}
		}
		sf := schema.Field{Name: f.Name, Type: t, Optional: f.Optional}
		if len(f.Nested) > 0 {
			nested, err := toSchemaFields(f.Nested)
			if err != nil {
				return nil, err
			}
			sf.Nested = nested
		}
		out = append(out, sf)
	}
	return out, nil
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
