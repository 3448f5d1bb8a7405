package cli

import (
	"context"
	"os"

	"github.com/JangRuBin2/rulang"
	"github.com/JangRuBin2/rulang/pkg/runner"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// ReplOptions configures `rulang repl`.
type ReplOptions struct {
	LogLevel string
}

// ExecuteRepl starts an interactive read-eval-print loop against a
// fresh Evaluator and root scope.
func ExecuteRepl(opts ReplOptions) error {
	logger := createLogger(opts.LogLevel)

	eval := rulang.New(
		rulang.WithLogger(logger),
		rulang.WithPrintSink(func(s string) { os.Stdout.WriteString(s + "\n") }),
	)
	root := value.NewScope(nil)

	r := runner.NewRunner(eval, root, runner.WithLogger(logger))
	return r.Run(context.Background())
}
