// Package compiler turns a parsed ast.Program's state-machine
// declarations into dense transition tables, in two passes over the
// program body. Everything else in the program is left untouched for
// the evaluator to walk directly.
package compiler

import "github.com/JangRuBin2/rulang/pkg/ast"

// StateType is the compiled form of a `state`/`transition` pair: dense
// integer indices for state names, and a transition table keyed by
// those indices rather than by name. Named StateType (not CompiledState)
// to avoid colliding with the runtime value tag of the same concept.
type StateType struct {
	Name    string
	States  []string       // index -> name, in declaration order
	index   map[string]int // name -> index
	Initial int

	// Transitions[from][event] = to.
	Transitions map[int]map[string]int
}

// IndexOf returns the dense index for a state name, and whether it
// was declared.
func (s *StateType) IndexOf(name string) (int, bool) {
	idx, ok := s.index[name]
	return idx, ok
}

// NameOf returns the state name for a dense index.
func (s *StateType) NameOf(idx int) string {
	return s.States[idx]
}

// Apply looks up the declared transition for (fromIdx, event) and
// reports whether one exists.
func (s *StateType) Apply(fromIdx int, event string) (int, bool) {
	byEvent, ok := s.Transitions[fromIdx]
	if !ok {
		return 0, false
	}
	to, ok := byEvent[event]
	return to, ok
}

// Compile runs the two-pass compilation described by the state
// machine contract: first every `state` declaration is indexed, then
// every `transition` declaration resolves its rules against the
// already-indexed states.
func Compile(prog *ast.Program) (map[string]*StateType, error) {
	types := make(map[string]*StateType)

	for _, stmt := range prog.Body {
		decl, ok := stmt.(*ast.State)
		if !ok {
			continue
		}
		st := &StateType{
			Name:        decl.Name,
			States:      append([]string(nil), decl.States...),
			index:       make(map[string]int, len(decl.States)),
			Initial:     0,
			Transitions: make(map[int]map[string]int),
		}
		for i, name := range decl.States {
			st.index[name] = i
		}
		types[decl.Name] = st
	}

	for _, stmt := range prog.Body {
		trans, ok := stmt.(*ast.Transition)
		if !ok {
			continue
		}
		st, ok := types[trans.StateName]
		if !ok {
			return nil, &CompileError{
				Line: trans.Token.Line,
				Msg:  "unknown state machine " + trans.StateName,
			}
		}
		for _, rule := range trans.Rules {
			fromIdx, ok := st.index[rule.From]
			if !ok {
				return nil, &CompileError{
					Line: trans.Token.Line,
					Msg:  "unknown state " + rule.From + " in transition " + trans.StateName,
				}
			}
			toIdx, ok := st.index[rule.To]
			if !ok {
				return nil, &CompileError{
					Line: trans.Token.Line,
					Msg:  "unknown state " + rule.To + " in transition " + trans.StateName,
				}
			}
			if st.Transitions[fromIdx] == nil {
				st.Transitions[fromIdx] = make(map[string]int)
			}
			// Later rules on the same (from, event) silently win; see
			// the design note on duplicate transition rules.
			st.Transitions[fromIdx][rule.Event] = toIdx
		}
	}

	return types, nil
}
