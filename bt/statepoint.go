package bt

// Statepoint is a two-case union distinguishing an in-progress value from a
// final one. It is the action type of automata that model a process with an
// end state, and the per-child result shape inspected by parallel deciders.
//
// The zero value is a nonterminal point carrying N's zero value.
type Statepoint[N, T any] struct {
	nonterm N
	term    T
	isTerm  bool
}

// Nonterminal returns an in-progress point. The terminal type cannot be
// inferred from the argument and is given explicitly:
//
//	point := bt.Nonterminal[string](42) // Statepoint[int, string]
func Nonterminal[T, N any](value N) Statepoint[N, T] {
	return Statepoint[N, T]{nonterm: value}
}

// Terminal returns a final point. The nonterminal type cannot be inferred
// from the argument and is given explicitly:
//
//	point := bt.Terminal[int]("done") // Statepoint[int, string]
func Terminal[N, T any](value T) Statepoint[N, T] {
	return Statepoint[N, T]{term: value, isTerm: true}
}

// IsTerminal reports whether the point is final.
func (s Statepoint[N, T]) IsTerminal() bool {
	return s.isTerm
}

// Nonterm returns the in-progress value, if any.
func (s Statepoint[N, T]) Nonterm() (N, bool) {
	if s.isTerm {
		var zero N
		return zero, false
	}
	return s.nonterm, true
}

// Term returns the final value, if any.
func (s Statepoint[N, T]) Term() (T, bool) {
	if !s.isTerm {
		var zero T
		return zero, false
	}
	return s.term, true
}
