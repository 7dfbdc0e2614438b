package automat

// RefStep is a self-replacing step: it consumes one input and returns the
// action together with the step to use on the next call. The function value
// is the entire machine state. The replacement must not be nil.
type RefStep[I, A any] func(input I) (A, RefStep[I, A])

// RefMachine drives a RefStep. The current step is taken out of the machine
// for the duration of its call; if the call panics, the machine stays empty
// ("poisoned") and every later Transition fails fast instead of silently
// rebuilding state.
type RefMachine[I, A any] struct {
	step RefStep[I, A]
}

var _ FiniteAutomaton[int, int] = (*RefMachine[int, int])(nil)

// NewRefMachine returns a machine whose state is the step function itself.
func NewRefMachine[I, A any](step RefStep[I, A]) *RefMachine[I, A] {
	if step == nil {
		panic("automat: nil step function")
	}
	return &RefMachine[I, A]{step: step}
}

func (m *RefMachine[I, A]) Transition(input I) A {
	step := m.step
	if step == nil {
		panic("automat: state machine was poisoned")
	}
	m.step = nil
	action, next := step(input)
	if next == nil {
		panic("automat: step returned nil replacement")
	}
	m.step = next
	return action
}

// Clone copies the machine. The current step value is shared; it must not
// capture shared mutable data for the copies to evolve independently.
func (m *RefMachine[I, A]) Clone() (Automaton[I, A], error) {
	if m.step == nil {
		panic("automat: state machine was poisoned")
	}
	cp := *m
	return &cp, nil
}
