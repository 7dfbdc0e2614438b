package automat

// DualStep is a self-replacing step that additionally mutates a separately
// owned state value. It is the most general step shape: the function can
// both replace itself and update shared state. The replacement must not be
// nil.
type DualStep[I, S, A any] func(input I, state *S) (A, DualStep[I, S, A])

// DualMachine combines a DualStep with its state. Like RefMachine, the step
// is taken out for the duration of its call and the machine is poisoned if
// the call panics.
type DualMachine[I, S, A any] struct {
	step  DualStep[I, S, A]
	state S
}

var _ FiniteAutomaton[int, int] = (*DualMachine[int, int, int])(nil)

// NewDualMachine returns a machine with the given step and initial state.
func NewDualMachine[I, S, A any](step DualStep[I, S, A], initial S) *DualMachine[I, S, A] {
	if step == nil {
		panic("automat: nil step function")
	}
	return &DualMachine[I, S, A]{step: step, state: initial}
}

func (m *DualMachine[I, S, A]) Transition(input I) A {
	step := m.step
	if step == nil {
		panic("automat: state machine was poisoned")
	}
	m.step = nil
	action, next := step(input, &m.state)
	if next == nil {
		panic("automat: step returned nil replacement")
	}
	m.step = next
	return action
}

// Clone copies the machine: the current step value is shared, the state is
// copied as a value. The same value-semantics caveats as InternalMachine and
// RefMachine apply.
func (m *DualMachine[I, S, A]) Clone() (Automaton[I, A], error) {
	if m.step == nil {
		panic("automat: state machine was poisoned")
	}
	cp := *m
	return &cp, nil
}
