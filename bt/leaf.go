package bt

import "github.com/birdayz/automat"

// Lift turns an automaton whose action is a Statepoint into a node. A
// nonterminal action becomes a nonterminal result carrying the wrapper as
// its own continuation; a terminal action ends the node and drops the
// machine.
func Lift[I, N, T any](m automat.Automaton[I, Statepoint[N, T]]) Node[I, N, T] {
	if m == nil {
		panic("bt: nil machine")
	}
	return &machineNode[I, N, T]{machine: m}
}

type machineNode[I, N, T any] struct {
	machine automat.Automaton[I, Statepoint[N, T]]
}

var _ Node[int, int, int] = (*machineNode[int, int, int])(nil)

func (n *machineNode[I, N, T]) Step(input I) Result[I, N, T] {
	if n.machine == nil {
		panic("bt: node stepped after terminal result")
	}
	point := n.machine.Transition(input)
	if t, ok := point.Term(); ok {
		n.machine = nil
		return Done[I, N](t)
	}
	value, _ := point.Nonterm()
	return Continue[I, N, T](value, n)
}

// Wait steps a plain function until it reports a terminal point.
func Wait[I, N, T any](f func(I) Statepoint[N, T]) Node[I, N, T] {
	if f == nil {
		panic("bt: nil step function")
	}
	return Lift[I, N, T](automat.Func[I, Statepoint[N, T]](f))
}

// Eval runs f once: the first step is terminal with f's value.
func Eval[I, T any](f func(I) T) Node[I, struct{}, T] {
	if f == nil {
		panic("bt: nil step function")
	}
	return Wait(func(input I) Statepoint[struct{}, T] {
		return Terminal[struct{}](f(input))
	})
}

// Forever steps f on every input and never terminates.
func Forever[I, N any](f func(I) N) Node[I, N, struct{}] {
	if f == nil {
		panic("bt: nil step function")
	}
	return Endless[I, N](automat.Func[I, N](f))
}

// Endless presents any automaton as a node that never terminates, tagging
// every action nonterminal.
func Endless[I, N any](m automat.Automaton[I, N]) Node[I, N, struct{}] {
	if m == nil {
		panic("bt: nil machine")
	}
	return Lift[I, N, struct{}](automat.MapOutput(m, func(action N) Statepoint[N, struct{}] {
		return Nonterminal[struct{}](action)
	}))
}
