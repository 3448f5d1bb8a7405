package observability

// TransitionEvent records one successful StateInstance.apply or
// rollback, for structured auditing of state-machine activity.
type TransitionEvent struct {
	Machine string
	From    string
	To      string
	Event   string // the applied event name; empty for a rollback
}

// RegistrationEvent records one endpoint/middleware/use/server
// declaration as the evaluator walks a program's top-level statements.
type RegistrationEvent struct {
	Kind string // "endpoint" | "middleware" | "use" | "server"
	Name string // method+path for endpoints, the bare name otherwise
}

// LifecycleHooks lets a host observe the evaluator's activity without
// participating in its control flow. Either field may be nil.
type LifecycleHooks struct {
	OnTransition func(TransitionEvent)
	OnRegister   func(RegistrationEvent)
}

func (h LifecycleHooks) transition(ev TransitionEvent) {
	if h.OnTransition != nil {
		h.OnTransition(ev)
	}
}

func (h LifecycleHooks) register(ev RegistrationEvent) {
	if h.OnRegister != nil {
		h.OnRegister(ev)
	}
}

// Emit is the single entry point runtime.Evaluator calls on transition
// events, kept as a method so call sites don't need to nil-check.
func (h LifecycleHooks) Emit(ev TransitionEvent) { h.transition(ev) }

// EmitRegistration is the single entry point for registration events.
func (h LifecycleHooks) EmitRegistration(ev RegistrationEvent) { h.register(ev) }
