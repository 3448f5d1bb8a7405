/*
Package runner implements an interactive read-eval-print loop over a
parsed and compiled program.

It is the bridge between internal/runtime's Evaluator and a terminal.
Each line the user types is parsed and run as a program fragment against
a scope shared for the whole session, so top-level `let`/`fn`/`state`/
`transition` declarations accumulate the way a script's statements do.
SignalManager gives the loop the same Ctrl+C/SIGTERM handling a long-running
server would want, and SanitizeInput guards against oversized or malformed
input before it ever reaches the parser.

# Usage

	r := runner.NewRunner(eval, root, runner.WithOutput(os.Stdout))
	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
