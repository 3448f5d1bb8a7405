package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JangRuBin2/rulang/internal/compiler"
	"github.com/JangRuBin2/rulang/pkg/parser"
)

func compileSrc(t *testing.T, src string) map[string]*compiler.StateType {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	types, err := compiler.Compile(prog)
	require.NoError(t, err)
	return types
}

func TestValidateReportsNoIssuesForFullyReachableMachine(t *testing.T) {
	types := compileSrc(t, `
state Order { CREATED PAID SHIPPED }
transition Order {
  CREATED -> PAID when pay
  PAID -> SHIPPED when ship
}
`)

	reports := Validate(types)
	assert.Empty(t, reports)
}

func TestValidateFlagsUnreachableState(t *testing.T) {
	types := compileSrc(t, `
state Order { CREATED PAID SHIPPED ORPHAN }
transition Order {
  CREATED -> PAID when pay
  PAID -> SHIPPED when ship
}
`)

	reports := Validate(types)
	require.Len(t, reports, 1)
	assert.Equal(t, "Order", reports[0].Machine)
	assert.Equal(t, []string{"ORPHAN"}, reports[0].Unreachable)
}

func TestValidateHandlesMultipleMachinesIndependently(t *testing.T) {
	types := compileSrc(t, `
state Order { CREATED PAID }
transition Order { CREATED -> PAID when pay }
state Ticket { OPEN CLOSED LOST }
transition Ticket { OPEN -> CLOSED when close }
`)

	reports := Validate(types)
	require.Len(t, reports, 1)
	assert.Equal(t, "Ticket", reports[0].Machine)
	assert.Equal(t, []string{"LOST"}, reports[0].Unreachable)
}

func TestValidateWithNoTransitionsFlagsAllButInitial(t *testing.T) {
	types := compileSrc(t, `state Solo { A B C }`)

	reports := Validate(types)
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"B", "C"}, reports[0].Unreachable)
}
