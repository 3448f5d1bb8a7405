package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/internal/runtime"
	"github.com/JangRuBin2/rulang/pkg/value"
)

func newTestRunner(t *testing.T, input string) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	eval := runtime.NewEvaluator(runtime.WithPrintSink(func(s string) {
		out.WriteString(s)
		out.WriteString("\n")
	}))
	root := value.NewScope(nil)
	r := NewRunner(eval, root, WithInput(strings.NewReader(input)), WithOutput(&out))
	return r, &out
}

func TestRunnerEvaluatesDeclarationsAcrossLines(t *testing.T) {
	r, out := newTestRunner(t, "let x = 1\nprint(x + 1)\n:quit\n")

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2")
}

func TestRunnerStateAndHistoryCommands(t *testing.T) {
	input := strings.Join([]string{
		`state Order { CREATED PAID }`,
		`transition Order { CREATED -> PAID when pay }`,
		`let o = Order.new()`,
		`o.apply("pay")`,
		`:state o`,
		`:history o`,
		`:quit`,
		"",
	}, "\n")
	r, out := newTestRunner(t, input)

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "PAID")
	assert.Contains(t, out.String(), "[CREATED, PAID]")
}

func TestRunnerStateCommandRejectsNonMachine(t *testing.T) {
	r, out := newTestRunner(t, "let x = 1\n:state x\n:quit\n")

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "not a state-machine instance")
}

func TestRunnerReportsParseErrorsWithoutStopping(t *testing.T) {
	r, out := newTestRunner(t, "let\nprint(1)\n:quit\n")

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error:")
	assert.Contains(t, out.String(), "1")
}

func TestRunnerStopsOnEOFWithoutQuitCommand(t *testing.T) {
	r, out := newTestRunner(t, "let x = 5\n")

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "error:")
}

func TestRunnerUnknownCommand(t *testing.T) {
	r, out := newTestRunner(t, ":bogus\n:quit\n")

	err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), `unknown command ":bogus"`)
}
