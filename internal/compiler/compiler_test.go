package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/internal/compiler"
	"github.com/JangRuBin2/rulang/pkg/parser"
)

func TestCompile_StateIndexingAndInitial(t *testing.T) {
	prog, err := parser.Parse(`state Order { CREATED PAID SHIPPED }`)
	require.NoError(t, err)

	types, err := compiler.Compile(prog)
	require.NoError(t, err)

	order, ok := types["Order"]
	require.True(t, ok)
	require.Equal(t, []string{"CREATED", "PAID", "SHIPPED"}, order.States)
	require.Equal(t, 0, order.Initial)

	idx, ok := order.IndexOf("PAID")
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestCompile_TransitionLookup(t *testing.T) {
	src := `
state Order { CREATED PAID SHIPPED }
transition Order {
  CREATED -> PAID when pay
  PAID -> SHIPPED when ship
}`
	prog, err := parser.Parse(src)
	require.NoError(t, err)

	types, err := compiler.Compile(prog)
	require.NoError(t, err)

	order := types["Order"]
	created, _ := order.IndexOf("CREATED")
	paid, _ := order.IndexOf("PAID")

	to, ok := order.Apply(created, "pay")
	require.True(t, ok)
	require.Equal(t, paid, to)

	_, ok = order.Apply(paid, "pay")
	require.False(t, ok)
}

func TestCompile_UnknownMachineIsCompileError(t *testing.T) {
	prog, err := parser.Parse(`transition Ghost { A -> B when go }`)
	require.NoError(t, err)

	_, err = compiler.Compile(prog)
	require.Error(t, err)
	var compileErr *compiler.CompileError
	require.ErrorAs(t, err, &compileErr)
}

func TestCompile_UnknownStateNameIsCompileError(t *testing.T) {
	src := `
state Order { CREATED PAID }
transition Order { CREATED -> SHIPPED when ship }`
	prog, err := parser.Parse(src)
	require.NoError(t, err)

	_, err = compiler.Compile(prog)
	require.Error(t, err)
	var compileErr *compiler.CompileError
	require.ErrorAs(t, err, &compileErr)
}

func TestCompile_DuplicateRuleLastWriterWins(t *testing.T) {
	src := `
state Light { RED GREEN }
transition Light {
  RED -> GREEN when go
  RED -> RED when go
}`
	prog, err := parser.Parse(src)
	require.NoError(t, err)

	types, err := compiler.Compile(prog)
	require.NoError(t, err)

	light := types["Light"]
	red, _ := light.IndexOf("RED")
	to, ok := light.Apply(red, "go")
	require.True(t, ok)
	require.Equal(t, red, to, "later rule overwrites earlier one on the same (from, event)")
}
