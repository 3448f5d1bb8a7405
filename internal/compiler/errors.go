package compiler

import "fmt"

// CompileError reports a transition rule naming an unknown state
// machine or an unknown from/to state.
type CompileError struct {
	Line int
	Msg  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error at line %d: %s", e.Line, e.Msg)
}
