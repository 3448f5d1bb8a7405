package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/JangRuBin2/rulang/internal/compiler"
	"github.com/JangRuBin2/rulang/internal/runtime"
	"github.com/JangRuBin2/rulang/pkg/ast"
	"github.com/JangRuBin2/rulang/pkg/parser"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// Runner drives an interactive read-eval-print loop: each line is
// parsed and run against a scope shared for the whole session, so
// declarations from earlier lines stay visible to later ones.
type Runner struct {
	eval   *runtime.Evaluator
	root   *value.Scope
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger

	session *Session
	decls   []ast.Stmt // state/transition declarations from earlier lines
}

// Option configures a Runner at construction time.
type Option func(*Runner)

// WithInput sets the source read for each line. Defaults to os.Stdin.
func WithInput(r io.Reader) Option { return func(rn *Runner) { rn.in = bufio.NewReader(r) } }

// WithOutput sets where prompts and results are written. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option { return func(rn *Runner) { rn.out = w } }

// WithLogger sets the logger used for internal diagnostics.
func WithLogger(logger *slog.Logger) Option { return func(rn *Runner) { rn.logger = logger } }

// NewRunner builds a Runner evaluating lines against eval/root. eval
// should have been constructed with a PrintSink that writes to the
// same writer the Runner uses, so `print` output and REPL diagnostics
// interleave in the order the user typed them.
func NewRunner(eval *runtime.Evaluator, root *value.Scope, opts ...Option) *Runner {
	r := &Runner{
		eval:    eval,
		root:    root,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		session: NewSession(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads and evaluates lines until EOF, ":quit"/":exit", or ctx is
// cancelled (Ctrl+C/SIGTERM, via SignalManager).
func (r *Runner) Run(ctx context.Context) error {
	signals := NewSignalManager()
	defer signals.Stop()

	fmt.Fprintf(r.out, "rulang repl (session %s) - :quit to exit, :state NAME, :history NAME\n", r.session.ID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-signals.Context().Done():
			return nil
		default:
		}

		fmt.Fprint(r.out, "> ")
		line, readErr := r.in.ReadString('\n')
		if readErr != nil && line == "" {
			if readErr == io.EOF {
				return nil
			}
			return fmt.Errorf("read input: %w", readErr)
		}

		line, err := SanitizeInput(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			continue
		}
		if line == "" {
			if readErr == io.EOF {
				return nil
			}
			continue
		}

		if strings.HasPrefix(line, ":") {
			if r.dispatchCommand(line) {
				return nil
			}
			continue
		}

		if err := r.evalLine(line); err != nil {
			r.logger.Debug("repl eval failed", "session_id", r.session.ID, "error", err)
			fmt.Fprintf(r.out, "error: %v\n", err)
		}

		if readErr == io.EOF {
			return nil
		}
	}
}

// evalLine parses and runs one line as a program fragment against the
// session's shared root scope. The line's state and transition
// declarations are compiled together with those of earlier lines, so a
// transition may name a machine declared on a previous line; Run then
// defines only the machines this line declares or extends, and earlier
// lines' lets, fns, and state-machine instances stay live.
func (r *Runner) evalLine(line string) error {
	prog, err := parser.Parse(line)
	if err != nil {
		return err
	}
	all := &ast.Program{Body: append(append([]ast.Stmt(nil), r.decls...), prog.Body...)}
	types, err := compiler.Compile(all)
	if err != nil {
		return err
	}
	declared := make(map[string]*compiler.StateType)
	for _, stmt := range prog.Body {
		switch s := stmt.(type) {
		case *ast.State:
			r.decls, declared[s.Name] = append(r.decls, s), types[s.Name]
		case *ast.Transition:
			r.decls, declared[s.StateName] = append(r.decls, s), types[s.StateName]
		}
	}
	return r.eval.Run(prog, declared, r.root)
}

// dispatchCommand handles a leading-":" REPL command, returning true
// when the loop should terminate.
func (r *Runner) dispatchCommand(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":exit":
		return true
	case ":state":
		r.printMachineField(fields, "state")
	case ":history":
		r.printMachineField(fields, "history")
	default:
		fmt.Fprintf(r.out, "unknown command %q\n", fields[0])
	}
	return false
}

// printMachineField implements the ":state NAME" and ":history NAME"
// introspection commands by reading a StateInstance directly out of
// the root scope; it is pure REPL convenience, not a language feature.
func (r *Runner) printMachineField(fields []string, property string) {
	if len(fields) < 2 {
		fmt.Fprintf(r.out, "usage: %s NAME\n", fields[0])
		return
	}
	v, ok := r.root.Get(fields[1])
	if !ok || v.Kind != value.StateInstanceKind {
		fmt.Fprintf(r.out, "%q is not a state-machine instance\n", fields[1])
		return
	}
	inst := v.StateInstance()
	switch property {
	case "state":
		fmt.Fprintln(r.out, inst.Type.NameOf(inst.Current))
	case "history":
		names := make([]string, len(inst.History))
		for i, idx := range inst.History {
			names[i] = inst.Type.NameOf(idx)
		}
		fmt.Fprintln(r.out, "["+strings.Join(names, ", ")+"]")
	}
}
