package automat

import "fmt"

// InputMapped adapts a machine to a new input type through a pure function.
type InputMapped[I2, I, A any] struct {
	inner Automaton[I, A]
	f     func(I2) I
}

var _ FiniteAutomaton[string, int] = (*InputMapped[string, int, int])(nil)

// MapInput returns an automaton that feeds f(input) to m.
//
// Example:
//
//	steps := automat.MapInput(counter, func(cmd string) bool {
//		return cmd == "advance"
//	})
func MapInput[I2, I, A any](m Automaton[I, A], f func(I2) I) *InputMapped[I2, I, A] {
	if m == nil {
		panic("automat: nil child machine")
	}
	if f == nil {
		panic("automat: nil mapping function")
	}
	return &InputMapped[I2, I, A]{inner: m, f: f}
}

func (w *InputMapped[I2, I, A]) Transition(input I2) A {
	return w.inner.Transition(w.f(input))
}

func (w *InputMapped[I2, I, A]) Clone() (Automaton[I2, A], error) {
	inner, err := cloneChild(w.inner)
	if err != nil {
		return nil, fmt.Errorf("clone mapped machine: %w", err)
	}
	return MapInput(inner, w.f), nil
}

// OutputMapped adapts a machine's action type through a pure function.
type OutputMapped[I, A, A2 any] struct {
	inner Automaton[I, A]
	f     func(A) A2
}

var _ FiniteAutomaton[int, string] = (*OutputMapped[int, int, string])(nil)

// MapOutput returns an automaton whose action is f applied to m's action.
func MapOutput[I, A, A2 any](m Automaton[I, A], f func(A) A2) *OutputMapped[I, A, A2] {
	if m == nil {
		panic("automat: nil child machine")
	}
	if f == nil {
		panic("automat: nil mapping function")
	}
	return &OutputMapped[I, A, A2]{inner: m, f: f}
}

func (w *OutputMapped[I, A, A2]) Transition(input I) A2 {
	return w.f(w.inner.Transition(input))
}

func (w *OutputMapped[I, A, A2]) Clone() (Automaton[I, A2], error) {
	inner, err := cloneChild(w.inner)
	if err != nil {
		return nil, fmt.Errorf("clone mapped machine: %w", err)
	}
	return MapOutput(inner, w.f), nil
}
