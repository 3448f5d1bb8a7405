package runtime

import (
	"fmt"

	"github.com/JangRuBin2/rulang/pkg/domain"
	"github.com/JangRuBin2/rulang/pkg/observability"
	"github.com/JangRuBin2/rulang/pkg/value"
)

// evalStateTypeMember implements the StateType value protocol: only
// `.new` is defined, a Native that mints a fresh StateInstance parked
// at the machine's initial state.
func (e *Evaluator) evalStateTypeMember(st *value.StateTypeValue, property string) (value.Value, value.Signal, error) {
	if property != "new" {
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "unknown state-type member " + property}
	}
	compiled := st.Compiled
	ctor := func(args []value.Value) (value.Value, value.Signal, error) {
		return value.NewStateInstance(&value.StateInstanceValue{
			Type:    compiled,
			Current: compiled.Initial,
			History: []int{compiled.Initial},
		}), value.NoSignal, nil
	}
	return value.NewNative(ctor), value.NoSignal, nil
}

// evalStateInstanceMember implements the StateInstance value protocol:
// .state, .history, .apply, .rollback. apply and rollback mutate inst
// in place, so every binding to the same instance observes the same
// history.
func (e *Evaluator) evalStateInstanceMember(inst *value.StateInstanceValue, property string) (value.Value, value.Signal, error) {
	switch property {
	case "state":
		return value.NewString(inst.Type.NameOf(inst.Current)), value.NoSignal, nil

	case "history":
		names := make([]value.Value, len(inst.History))
		for i, idx := range inst.History {
			names[i] = value.NewString(inst.Type.NameOf(idx))
		}
		return value.NewArray(names), value.NoSignal, nil

	case "apply":
		apply := func(args []value.Value) (value.Value, value.Signal, error) {
			if len(args) == 0 || args[0].Kind != value.String {
				return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "apply expects a single string event name"}
			}
			event := args[0].Str()
			from := inst.Current
			to, ok := inst.Type.Apply(from, event)
			if !ok {
				return value.NewNull(), value.NoSignal, &domain.TransitionError{
					Msg: fmt.Sprintf("Cannot apply %s in state %s", event, inst.Type.NameOf(from)),
				}
			}
			inst.Current = to
			inst.History = append(inst.History, to)
			e.hooks.Emit(observability.TransitionEvent{
				Machine: inst.Type.Name,
				From:    inst.Type.NameOf(from),
				To:      inst.Type.NameOf(to),
				Event:   event,
			})
			return value.NewNull(), value.NoSignal, nil
		}
		return value.NewNative(apply), value.NoSignal, nil

	case "rollback":
		rollback := func(args []value.Value) (value.Value, value.Signal, error) {
			if len(inst.History) <= 1 {
				return value.NewNull(), value.NoSignal, &domain.TransitionError{Msg: "no previous state"}
			}
			from := inst.Current
			inst.History = inst.History[:len(inst.History)-1]
			inst.Current = inst.History[len(inst.History)-1]
			e.hooks.Emit(observability.TransitionEvent{
				Machine: inst.Type.Name,
				From:    inst.Type.NameOf(from),
				To:      inst.Type.NameOf(inst.Current),
			})
			return value.NewString(inst.Type.NameOf(inst.Current)), value.NoSignal, nil
		}
		return value.NewNative(rollback), value.NoSignal, nil

	default:
		return value.NewNull(), value.NoSignal, &domain.TypeError{Msg: "unknown state-instance member " + property}
	}
}
