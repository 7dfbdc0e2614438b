package bt

import "errors"

// Node is a step-driven decision process with an end state. Step consumes
// the live node: the nonterminal case of the result carries the continuation
// to use for the next call, the terminal case ends the node's lifecycle.
// There is no transition back from terminal; see the package documentation.
type Node[I, N, T any] interface {
	Step(input I) Result[I, N, T]
}

// Result is the outcome of stepping a node once: a nonterminal value plus
// the node's continuation, or a terminal value with no continuation.
type Result[I, N, T any] struct {
	nonterm N
	next    Node[I, N, T]
	term    T
	isTerm  bool
}

// Continue reports a nonterminal value and hands back the node to step next.
func Continue[I, N, T any](value N, next Node[I, N, T]) Result[I, N, T] {
	if next == nil {
		panic("bt: nil continuation")
	}
	return Result[I, N, T]{nonterm: value, next: next}
}

// Done reports a terminal value, ending the node's lifecycle. The leading
// type arguments are given explicitly:
//
//	return bt.Done[int, string](t) // Result[int, string, T]
func Done[I, N, T any](value T) Result[I, N, T] {
	return Result[I, N, T]{term: value, isTerm: true}
}

// IsTerminal reports whether the node ended.
func (r Result[I, N, T]) IsTerminal() bool {
	return r.isTerm
}

// Nonterminal returns the in-progress value and the continuation, if any.
func (r Result[I, N, T]) Nonterminal() (N, Node[I, N, T], bool) {
	if r.isTerm {
		var zero N
		return zero, nil, false
	}
	return r.nonterm, r.next, true
}

// Terminal returns the final value, if any.
func (r Result[I, N, T]) Terminal() (T, bool) {
	if !r.isTerm {
		var zero T
		return zero, false
	}
	return r.term, true
}

// Statepoint projects the result to a plain statepoint, dropping the
// continuation.
func (r Result[I, N, T]) Statepoint() Statepoint[N, T] {
	if r.isTerm {
		return Terminal[N](r.term)
	}
	return Nonterminal[T](r.nonterm)
}

var (
	ErrNilFactory = errors.New("nil node factory")
	ErrNilDecider = errors.New("nil decider")
	ErrNilChild   = errors.New("factory returned nil node")
	ErrNoChildren = errors.New("parallel node needs at least one child")
)
