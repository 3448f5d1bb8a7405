package cli

import (
	"fmt"
	"os"

	"github.com/JangRuBin2/rulang"
	"github.com/JangRuBin2/rulang/internal/validator"
)

// VetOptions configures `rulang vet`.
type VetOptions struct {
	File string
}

// ExecuteVet compiles a source file and reports every state machine
// with unreachable states. Returns an error if any are found, so the
// command exits non-zero in CI.
func ExecuteVet(opts VetOptions) error {
	src, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.File, err)
	}

	prog, err := rulang.Compile(string(src))
	if err != nil {
		return fmt.Errorf("compile %s: %w", opts.File, err)
	}

	reports := validator.Validate(prog.Types)
	if len(reports) == 0 {
		fmt.Println("ok: every state is reachable")
		return nil
	}

	for _, r := range reports {
		fmt.Println(r.String())
	}
	return fmt.Errorf("%d machine(s) with unreachable states", len(reports))
}
