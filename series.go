package automat

import "fmt"

// Series feeds the action of one machine into another: each transition runs
// before, then after on before's action, and surfaces after's action.
type Series[I, J, A any] struct {
	before Automaton[I, J]
	after  Automaton[J, A]
}

var _ FiniteAutomaton[int, int] = (*Series[int, int, int])(nil)

// NewSeries composes before and after sequentially. Stepping the composite
// is equivalent to stepping both machines by hand and piping the
// intermediate value.
func NewSeries[I, J, A any](before Automaton[I, J], after Automaton[J, A]) *Series[I, J, A] {
	if before == nil || after == nil {
		panic("automat: nil child machine")
	}
	return &Series[I, J, A]{before: before, after: after}
}

func (s *Series[I, J, A]) Transition(input I) A {
	return s.after.Transition(s.before.Transition(input))
}

func (s *Series[I, J, A]) Clone() (Automaton[I, A], error) {
	before, err := cloneChild(s.before)
	if err != nil {
		return nil, fmt.Errorf("clone series before: %w", err)
	}
	after, err := cloneChild(s.after)
	if err != nil {
		return nil, fmt.Errorf("clone series after: %w", err)
	}
	return NewSeries(before, after), nil
}
