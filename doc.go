/*
Package rulang is the embedding facade over the language's parser,
compiler, and evaluator: everything a Go program needs to load and run
Rulang source without reaching into internal/ itself.

# Usage

	prog, err := rulang.Compile(src)
	if err != nil {
		log.Fatal(err)
	}

	reg := registry.NewRegistry()
	eval := rulang.New(
		rulang.WithPrintSink(func(s string) { fmt.Println(s) }),
		rulang.WithRegistry(reg),
	)

	root := value.NewScope(nil)
	if err := rulang.Run(eval, prog, root); err != nil {
		log.Fatal(err)
	}

Compile parses a program and compiles its state machines in one step; Run pre-registers
its state types into the given scope and executes its top-level
statements. Programs that declare endpoints, middleware, or a server
port need a ports.Registry supplied via WithRegistry — pkg/adapters/http
turns the collected declarations into a running server.
*/
package rulang
