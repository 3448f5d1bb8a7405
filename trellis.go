package rulang

import (
	"github.com/JangRuBin2/rulang/internal/compiler"
	"github.com/JangRuBin2/rulang/internal/runtime"
	"github.com/JangRuBin2/rulang/pkg/ast"
	"github.com/JangRuBin2/rulang/pkg/parser"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// Evaluator and Option are re-exported so embedders never need to
// import internal/runtime directly.
type Evaluator = runtime.Evaluator
type Option = runtime.Option

var (
	WithLogger         = runtime.WithLogger
	WithPrintSink      = runtime.WithPrintSink
	WithLifecycleHooks = runtime.WithLifecycleHooks
	WithRegistry       = runtime.WithRegistry
)

// New constructs an Evaluator from functional options.
func New(opts ...Option) *Evaluator {
	return runtime.NewEvaluator(opts...)
}

// Program is a parsed and compiled Rulang source file: its AST plus
// the state types compiler.Compile derived from it.
type Program struct {
	AST   *ast.Program
	Types map[string]*compiler.StateType
}

// Compile parses src and compiles its state machine declarations in
// one step. The returned Program is ready to pass to Run.
func Compile(src string) (*Program, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	types, err := compiler.Compile(prog)
	if err != nil {
		return nil, err
	}
	return &Program{AST: prog, Types: types}, nil
}

// Run defines p's state types into root and executes its top-level
// statements against eval.
func Run(eval *Evaluator, p *Program, root *value.Scope) error {
	return eval.Run(p.AST, p.Types, root)
}
