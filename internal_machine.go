package automat

// StepFunc computes one action from an input and the machine's state. The
// function itself holds no state; all evolution happens through the state
// pointer.
type StepFunc[I, S, A any] func(input I, state *S) A

// InternalMachine realizes an automaton as a state value plus a stateless
// step function. The function is reused on every call, so the machine has no
// poisoned state.
type InternalMachine[I, S, A any] struct {
	step  StepFunc[I, S, A]
	state S
}

var _ FiniteAutomaton[int, int] = (*InternalMachine[int, int, int])(nil)

// NewInternalMachine returns a machine that starts at the initial state and
// applies step to it on every transition.
func NewInternalMachine[I, S, A any](step StepFunc[I, S, A], initial S) *InternalMachine[I, S, A] {
	if step == nil {
		panic("automat: nil step function")
	}
	return &InternalMachine[I, S, A]{step: step, state: initial}
}

func (m *InternalMachine[I, S, A]) Transition(input I) A {
	return m.step(input, &m.state)
}

// Clone copies the machine. The step function is shared, the state is copied
// as a value; S must not reach shared mutable data for the copies to evolve
// independently.
func (m *InternalMachine[I, S, A]) Clone() (Automaton[I, A], error) {
	cp := *m
	return &cp, nil
}
