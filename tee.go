package automat

import "fmt"

// Tee is a series composition whose intermediate value is itself part of the
// output: the action is the pair (before's action, after's action).
type Tee[I, J, A any] struct {
	before Automaton[I, J]
	after  Automaton[J, A]
}

var _ FiniteAutomaton[int, Pair[int, int]] = (*Tee[int, int, int])(nil)

// NewTee composes before and after like NewSeries but keeps the intermediate
// value observable.
func NewTee[I, J, A any](before Automaton[I, J], after Automaton[J, A]) *Tee[I, J, A] {
	if before == nil || after == nil {
		panic("automat: nil child machine")
	}
	return &Tee[I, J, A]{before: before, after: after}
}

func (t *Tee[I, J, A]) Transition(input I) Pair[J, A] {
	mid := t.before.Transition(input)
	return Pair[J, A]{First: mid, Second: t.after.Transition(mid)}
}

func (t *Tee[I, J, A]) Clone() (Automaton[I, Pair[J, A]], error) {
	before, err := cloneChild(t.before)
	if err != nil {
		return nil, fmt.Errorf("clone tee before: %w", err)
	}
	after, err := cloneChild(t.after)
	if err != nil {
		return nil, fmt.Errorf("clone tee after: %w", err)
	}
	return NewTee(before, after), nil
}
