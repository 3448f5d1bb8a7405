// Package runtime implements the tree-walking evaluator that drives a
// parsed, compiled Rulang program: statement and expression
// evaluation, the state-machine value protocol, and the host hook
// calls that forward endpoint/middleware/use/server declarations.
package runtime

import (
	"log/slog"

	"github.com/JangRuBin2/rulang/internal/compiler"
	"github.com/JangRuBin2/rulang/pkg/ast"
	"github.com/JangRuBin2/rulang/pkg/observability"
	"github.com/JangRuBin2/rulang/pkg/ports"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// PrintSink receives the stringified argument of every `print`
// statement. The core never writes directly to any stream.
type PrintSink func(string)

// Evaluator walks a Program's AST against a Scope, following the
// teacher's Engine shape: constructed via functional options, holding
// only what it needs to run, with no hidden global state.
type Evaluator struct {
	logger   *slog.Logger
	print    PrintSink
	hooks    observability.LifecycleHooks
	registry ports.Registry
}

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithLogger sets a structured logger used for Debug/Warn-level
// tracing around dispatch; the evaluator never logs at Error itself,
// since runtime errors are returned to the caller, not swallowed.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = logger }
}

// WithPrintSink routes `print` statement output; defaults to a no-op
// sink if never set.
func WithPrintSink(sink PrintSink) Option {
	return func(e *Evaluator) { e.print = sink }
}

// WithLifecycleHooks registers observability hooks for transitions and
// endpoint/middleware/use/server registration.
func WithLifecycleHooks(hooks observability.LifecycleHooks) Option {
	return func(e *Evaluator) { e.hooks = hooks }
}

// WithRegistry sets the host hook collecting endpoint/middleware/use/
// server declarations. Required for any program that declares one;
// Run returns a TypeError if a program uses these statements with no
// registry configured.
func WithRegistry(registry ports.Registry) Option {
	return func(e *Evaluator) { e.registry = registry }
}

// NewEvaluator constructs an Evaluator from functional options.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: slog.Default(),
		print:  func(string) {},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run pre-registers every compiled state type into root as a
// StateType value, then executes the program's top-level statements in
// order. types is the output of compiler.Compile for the same program.
func (e *Evaluator) Run(prog *ast.Program, types map[string]*compiler.StateType, root *value.Scope) error {
	for name, st := range types {
		root.Define(name, value.NewStateType(&value.StateTypeValue{Compiled: st}))
	}

	for _, stmt := range prog.Body {
		sig, err := e.execStatement(stmt, root)
		if err != nil {
			return err
		}
		if sig.Kind != value.SignalNone {
			e.logger.Warn("control signal escaped top-level program execution", "kind", sig.Kind.String())
		}
	}
	return nil
}

// RunBlock executes block's statements in a child scope of scope. It
// is the primitive host adapters call to run a handler or middleware
// body against request-specific bindings (req, res, next, db).
func (e *Evaluator) RunBlock(block *ast.Block, scope *value.Scope) (value.Value, value.Signal, error) {
	child := value.NewScope(scope)
	return e.execBlockBody(block.Body, child)
}

func (e *Evaluator) execBlockBody(body []ast.Stmt, scope *value.Scope) (value.Value, value.Signal, error) {
	for _, stmt := range body {
		sig, err := e.execStatement(stmt, scope)
		if err != nil {
			return value.NewNull(), value.NoSignal, err
		}
		if sig.Kind != value.SignalNone {
			return sig.Value, sig, nil
		}
	}
	return value.NewNull(), value.NoSignal, nil
}
