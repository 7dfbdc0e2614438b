package automat

import "fmt"

// Lazy defers building its machine until the first input arrives, so the
// input can parametrize construction. The constructing input is also fed
// through the freshly built machine in the same call, exactly once; from
// then on the machine is retained and Lazy behaves like it.
type Lazy[I, A any] struct {
	ctor    func(I) Automaton[I, A]
	machine Automaton[I, A]
}

var _ FiniteAutomaton[int, int] = (*Lazy[int, int])(nil)

// NewLazy returns a pending machine built by ctor on the first transition.
func NewLazy[I, A any](ctor func(I) Automaton[I, A]) *Lazy[I, A] {
	if ctor == nil {
		panic("automat: nil constructor")
	}
	return &Lazy[I, A]{ctor: ctor}
}

func (l *Lazy[I, A]) Transition(input I) A {
	if l.machine == nil {
		machine := l.ctor(input)
		if machine == nil {
			panic("automat: constructor returned nil machine")
		}
		l.machine = machine
	}
	return l.machine.Transition(input)
}

// Clone copies the pending constructor or clones the built machine,
// whichever stage Lazy is in. A pending constructor is shared and must not
// capture shared mutable data.
func (l *Lazy[I, A]) Clone() (Automaton[I, A], error) {
	if l.machine == nil {
		return NewLazy(l.ctor), nil
	}
	machine, err := cloneChild(l.machine)
	if err != nil {
		return nil, fmt.Errorf("clone lazy machine: %w", err)
	}
	return &Lazy[I, A]{ctor: l.ctor, machine: machine}, nil
}
