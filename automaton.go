package automat

import "errors"

// ErrNotFiniteState is returned by Clone when a machine, or any machine a
// composite owns, does not support duplication.
var ErrNotFiniteState = errors.New("automaton is not finite-state")

// Automaton is a step-driven state machine: one call to Transition consumes
// one input and produces one action. Side effects are confined to the
// automaton's own state; the host calls Transition once per tick.
type Automaton[I, A any] interface {
	Transition(input I) A
}

// FiniteAutomaton is implemented by automata whose state is of fixed size
// and duplicable as a value. Clone returns an independent copy: both
// machines evolve identically until their input sequences diverge. The
// capability carries no behavior beyond duplication. Composites support it
// only if every machine (and constructor) they own does, and report
// ErrNotFiniteState otherwise.
type FiniteAutomaton[I, A any] interface {
	Automaton[I, A]
	Clone() (Automaton[I, A], error)
}

// Pair carries the two actions produced by Tee and Parallel composites.
type Pair[F, S any] struct {
	First  F
	Second S
}

// Func lifts a pure function into a stateless automaton.
//
// Example:
//
//	double := automat.Func(func(x int) int { return x * 2 })
//	double.Transition(21) // 42
type Func[I, A any] func(I) A

func (f Func[I, A]) Transition(input I) A { return f(input) }

// Clone returns the function itself; a stateless machine is trivially
// duplicable.
func (f Func[I, A]) Clone() (Automaton[I, A], error) { return f, nil }

var _ FiniteAutomaton[int, int] = (Func[int, int])(nil)

// cloneChild duplicates a composite's child, reporting ErrNotFiniteState for
// children without the capability.
func cloneChild[I, A any](m Automaton[I, A]) (Automaton[I, A], error) {
	fa, ok := m.(FiniteAutomaton[I, A])
	if !ok {
		return nil, ErrNotFiniteState
	}
	return fa.Clone()
}
