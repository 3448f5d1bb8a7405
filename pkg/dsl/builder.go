package dsl

import "github.com/JangRuBin2/rulang/pkg/ast"

// Builder assembles an ast.Program from Go calls instead of parsed
// source text, for embedding state machines from Go code and for
// building test fixtures without string literals.
type Builder struct {
	prog        *ast.Program
	transitions map[string]*ast.Transition
}

// NewProgram starts an empty program.
func NewProgram() *Builder {
	return &Builder{prog: &ast.Program{}, transitions: make(map[string]*ast.Transition)}
}

// State declares a state machine; states[0] is initial.
func (b *Builder) State(name string, states ...string) *Builder {
	b.prog.Body = append(b.prog.Body, &ast.State{Name: name, States: states})
	return b
}

// Transition adds one `from -> to when event` rule to machine,
// declaring the machine's Transition statement the first time it's
// used.
func (b *Builder) Transition(machine, from, to, event string) *Builder {
	t, ok := b.transitions[machine]
	if !ok {
		t = &ast.Transition{StateName: machine}
		b.transitions[machine] = t
		b.prog.Body = append(b.prog.Body, t)
	}
	t.Rules = append(t.Rules, ast.TransitionRule{From: from, To: to, Event: event})
	return b
}

// Let binds value to name at the top level.
func (b *Builder) Let(name string, value ast.Expr) *Builder {
	b.prog.Body = append(b.prog.Body, &ast.Let{Name: name, Value: value})
	return b
}

// Stmt appends an arbitrary statement at the top level, for call
// expressions or control flow the other Builder methods don't name
// directly (built with the helpers in node.go).
func (b *Builder) Stmt(s ast.Stmt) *Builder {
	b.prog.Body = append(b.prog.Body, s)
	return b
}

// Fn declares a named function.
func (b *Builder) Fn(name string, params []string, body *ast.Block) *Builder {
	b.prog.Body = append(b.prog.Body, &ast.Fn{Name: name, Params: params, Body: body})
	return b
}

// Middleware declares a reusable block invoked before endpoint bodies.
func (b *Builder) Middleware(name string, body *ast.Block) *Builder {
	b.prog.Body = append(b.prog.Body, &ast.Middleware{Name: name, Body: body})
	return b
}

// Use registers global middleware, applied in order before every
// endpoint's own middlewares.
func (b *Builder) Use(names ...string) *Builder {
	b.prog.Body = append(b.prog.Body, &ast.Use{Middlewares: names})
	return b
}

// Endpoint declares an HTTP handler.
func (b *Builder) Endpoint(method, path string, middlewares []string, body *ast.Block) *Builder {
	b.prog.Body = append(b.prog.Body, &ast.Endpoint{
		Method: method, Path: path, Middlewares: middlewares, Body: body,
	})
	return b
}

// Server declares the listen port.
func (b *Builder) Server(port ast.Expr) *Builder {
	b.prog.Body = append(b.prog.Body, &ast.Server{Port: port})
	return b
}

// Build returns the assembled program.
func (b *Builder) Build() *ast.Program {
	return b.prog
}
