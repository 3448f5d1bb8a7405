// Package validator implements rulang vet's static reachability check
// over compiled state machines.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JangRuBin2/rulang/internal/compiler"
)

// Report holds one state machine's unreachable states, in declaration
// order.
type Report struct {
	Machine     string
	Unreachable []string
}

// String renders a Report the way `rulang vet` prints it.
func (r Report) String() string {
	return fmt.Sprintf("%s: unreachable states: %s", r.Machine, strings.Join(r.Unreachable, ", "))
}

// Validate BFS-walks each machine's transition table from its initial
// state and reports every state with no path from it. Such a state
// still compiles and runs without error — it's a modeling bug, not a
// language error, which is why this is a lint rather than something
// internal/compiler itself rejects.
func Validate(types map[string]*compiler.StateType) []Report {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	var reports []Report
	for _, name := range names {
		st := types[name]
		reachable := reachableFrom(st)

		var unreachable []string
		for idx, stateName := range st.States {
			if !reachable[idx] {
				unreachable = append(unreachable, stateName)
			}
		}
		if len(unreachable) > 0 {
			reports = append(reports, Report{Machine: name, Unreachable: unreachable})
		}
	}
	return reports
}

func reachableFrom(st *compiler.StateType) map[int]bool {
	visited := map[int]bool{st.Initial: true}
	queue := []int{st.Initial}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, to := range st.Transitions[current] {
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
	}
	return visited
}
