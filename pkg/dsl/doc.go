/*
Package dsl provides a fluent Go builder for constructing rulang
ast.Program values without parsing source text.

It is useful for embedding rulang state machines directly in Go code
and for building test fixtures without string-literal source.

Example usage:

	prog := dsl.NewProgram().
		State("Order", "CREATED", "PAID").
		Transition("Order", "CREATED", "PAID", "pay").
		Let("o", dsl.Call(dsl.Member(dsl.Ident("Order"), "new"))).
		Endpoint("POST", "/pay", nil, dsl.Block(
			dsl.ExprStmt(dsl.Call(dsl.Member(dsl.Ident("o"), "apply"), dsl.Str("pay"))),
			dsl.ExprStmt(dsl.Call(dsl.Member(dsl.Ident("res"), "json"), dsl.Obj(
				dsl.Entry("ok", dsl.Bool(true)),
			))),
		)).
		Build()

	types, err := compiler.Compile(prog)
*/
package dsl
