package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/internal/compiler"
	"github.com/JangRuBin2/rulang/internal/runtime"
	"github.com/JangRuBin2/rulang/pkg/ast"
	"github.com/JangRuBin2/rulang/pkg/value"
)

func TestBuilderProgramCompilesAndRuns(t *testing.T) {
	prog := NewProgram().
		State("Order", "CREATED", "PAID").
		Transition("Order", "CREATED", "PAID", "pay").
		Let("o", Call(Member(Ident("Order"), "new"))).
		Stmt(ExprStmt(Call(Member(Ident("o"), "apply"), Str("pay")))).
		Build()

	types, err := compiler.Compile(prog)
	require.NoError(t, err)
	require.Contains(t, types, "Order")

	var printed []string
	eval := runtime.NewEvaluator(runtime.WithPrintSink(func(s string) { printed = append(printed, s) }))
	root := value.NewScope(nil)
	require.NoError(t, eval.Run(prog, types, root))

	o, ok := root.Get("o")
	require.True(t, ok)
	require.Equal(t, value.StateInstanceKind, o.Kind)
	assert.Equal(t, "PAID", o.StateInstance().Type.NameOf(o.StateInstance().Current))
}

func TestBuilderAccumulatesMultipleTransitionRules(t *testing.T) {
	prog := NewProgram().
		State("Door", "OPEN", "CLOSED", "LOCKED").
		Transition("Door", "OPEN", "CLOSED", "close").
		Transition("Door", "CLOSED", "LOCKED", "lock").
		Transition("Door", "LOCKED", "CLOSED", "unlock").
		Build()

	types, err := compiler.Compile(prog)
	require.NoError(t, err)

	door := types["Door"]
	to, ok := door.Apply(door.Initial, "close")
	require.True(t, ok)
	assert.Equal(t, "CLOSED", door.NameOf(to))
}

func TestBuilderEndpointAndMiddlewareWiring(t *testing.T) {
	prog := NewProgram().
		Middleware("auth", Block(
			ExprStmt(Call(Ident("next"))),
		)).
		Use("auth").
		Endpoint("GET", "/h", nil, Block(
			ExprStmt(Call(Member(Ident("res"), "json"), Obj(Entry("ok", Bool(true))))),
		)).
		Server(Num(3000)).
		Build()

	assert.Len(t, prog.Body, 4)
}

func TestExprHelpersBuildExpectedLiterals(t *testing.T) {
	arr, ok := Arr(Num(1), Str("a"), Bool(true), Null()).(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 4)

	obj, ok := Obj(Entry("k", Str("v"))).(*ast.ObjectLiteral)
	require.True(t, ok)
	assert.Equal(t, "k", obj.Entries[0].Key)
}
