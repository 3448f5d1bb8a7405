package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "program.rul")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestExecuteVetPassesOnFullyReachableMachine(t *testing.T) {
	path := writeSource(t, `
state Order { CREATED PAID }
transition Order { CREATED -> PAID when pay }
`)
	err := ExecuteVet(VetOptions{File: path})
	assert.NoError(t, err)
}

func TestExecuteVetFailsOnUnreachableState(t *testing.T) {
	path := writeSource(t, `state Order { CREATED PAID ORPHAN }`)
	err := ExecuteVet(VetOptions{File: path})
	require.Error(t, err)
}

func TestExecuteVetReportsFileErrors(t *testing.T) {
	err := ExecuteVet(VetOptions{File: filepath.Join(t.TempDir(), "missing.rul")})
	require.Error(t, err)
}
