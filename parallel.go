package automat

import "fmt"

// Parallel broadcasts the same input to two machines each transition and
// pairs their actions. Stepping the composite N times yields exactly what
// stepping both machines independently with the same inputs would.
type Parallel[I, A, B any] struct {
	first  Automaton[I, A]
	second Automaton[I, B]
}

var _ FiniteAutomaton[int, Pair[int, int]] = (*Parallel[int, int, int])(nil)

// NewParallel composes two machines side by side over a shared input.
func NewParallel[I, A, B any](first Automaton[I, A], second Automaton[I, B]) *Parallel[I, A, B] {
	if first == nil || second == nil {
		panic("automat: nil child machine")
	}
	return &Parallel[I, A, B]{first: first, second: second}
}

func (p *Parallel[I, A, B]) Transition(input I) Pair[A, B] {
	return Pair[A, B]{First: p.first.Transition(input), Second: p.second.Transition(input)}
}

func (p *Parallel[I, A, B]) Clone() (Automaton[I, Pair[A, B]], error) {
	first, err := cloneChild(p.first)
	if err != nil {
		return nil, fmt.Errorf("clone parallel first: %w", err)
	}
	second, err := cloneChild(p.second)
	if err != nil {
		return nil, fmt.Errorf("clone parallel second: %w", err)
	}
	return NewParallel(first, second), nil
}
