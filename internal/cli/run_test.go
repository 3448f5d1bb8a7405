package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteRunsProgramWithNoServerToCompletion(t *testing.T) {
	path := writeSource(t, `
let x = 1 + 2
print(x)
`)
	err := Execute(RunOptions{File: path})
	assert.NoError(t, err)
}

func TestExecuteReportsCompileErrors(t *testing.T) {
	path := writeSource(t, `let x = `)
	err := Execute(RunOptions{File: path})
	require.Error(t, err)
}

func TestResolvePortPrecedence(t *testing.T) {
	assert.Equal(t, 9000, resolvePort(9000, 8000, 7000))
	assert.Equal(t, 8000, resolvePort(0, 8000, 7000))
	assert.Equal(t, 7000, resolvePort(0, 0, 7000))
	assert.Equal(t, 8080, resolvePort(0, 0, 0))
}
