package bt

import "github.com/birdayz/automat"

// Runner presents a node as an ordinary automaton. Each transition steps
// the live node; a nonterminal result keeps the continuation and surfaces
// the value as a nonterminal statepoint, a terminal result surfaces the
// value as a terminal statepoint and immediately builds a fresh node for the
// next call. Termination is observable exactly once per run while the
// machine restarts transparently.
//
// The live node is taken out for the duration of its step. If the step
// panics, the runner is poisoned and every later Transition fails fast.
type Runner[I, N, T any] struct {
	build func() Node[I, N, T]
	node  Node[I, N, T]
}

var _ automat.Automaton[int, Statepoint[int, int]] = (*Runner[int, int, int])(nil)

// NewRunner builds the first node instance and returns the runner driving
// it.
func NewRunner[I, N, T any](build func() Node[I, N, T]) *Runner[I, N, T] {
	if build == nil {
		panic("bt: nil node factory")
	}
	r := &Runner[I, N, T]{build: build}
	r.node = r.rebuild()
	return r
}

func (r *Runner[I, N, T]) Transition(input I) Statepoint[N, T] {
	node := r.node
	if node == nil {
		panic("bt: node runner was poisoned")
	}
	r.node = nil
	res := node.Step(input)
	if value, next, ok := res.Nonterminal(); ok {
		r.node = next
		return Nonterminal[T, N](value)
	}
	value, _ := res.Terminal()
	r.node = r.rebuild()
	return Terminal[N, T](value)
}

func (r *Runner[I, N, T]) rebuild() Node[I, N, T] {
	node := r.build()
	if node == nil {
		panic("bt: node factory returned nil node")
	}
	return node
}
