package bt

// Sequence is a serial decider running variants 0 through count-1 in order:
// every time a child finishes, the next variant starts, and the last child's
// terminal value exits the whole node. Nonterminal children keep running.
func Sequence[I, N, T any](count int) SerialDecider[I, int, N, T, T] {
	return SerialDeciderFuncs[I, int, N, T, T]{
		Terminal: func(_ I, disc int, value T) SerialDecision[int, T] {
			if disc+1 >= count {
				return Exit[int](value)
			}
			return Transition[int, T](disc + 1)
		},
	}
}

// Selection is a Selector's exit value: the discriminant and terminal value
// of the first accepted child, or Ok false after every variant was tried.
type Selection[T any] struct {
	Discriminant int
	Value        T
	Ok           bool
}

// Selector is a serial decider trying variants 0 through count-1 in order
// until one finishes with an accepted terminal value. A nil accept treats
// every terminal value as accepted.
func Selector[I, N, T any](count int, accept func(T) bool) SerialDecider[I, int, N, T, Selection[T]] {
	return SerialDeciderFuncs[I, int, N, T, Selection[T]]{
		Terminal: func(_ I, disc int, value T) SerialDecision[int, Selection[T]] {
			if accept == nil || accept(value) {
				return Exit[int](Selection[T]{Discriminant: disc, Value: value, Ok: true})
			}
			if disc+1 >= count {
				return Exit[int](Selection[T]{})
			}
			return Transition[int, Selection[T]](disc + 1)
		},
	}
}

// RaceWinner is a Race's exit value: the slot index and terminal value of
// the first child to finish.
type RaceWinner[T any] struct {
	Index int
	Value T
}

// Race is a parallel decider that exits on the first terminal child,
// reporting its slot and value. The lowest slot wins ties; no child is ever
// reset.
func Race[I, N, T any]() ParallelDecider[I, N, T, RaceWinner[T]] {
	return ParallelDeciderFunc[I, N, T, RaceWinner[T]](func(_ I, points []Statepoint[N, T]) ParallelDecision[N, RaceWinner[T]] {
		for i, point := range points {
			if value, ok := point.Term(); ok {
				return ExitAll[N](RaceWinner[T]{Index: i, Value: value})
			}
		}
		return Stay[N, RaceWinner[T]](nil)
	})
}

// WhenAll is a parallel decider for children whose nonterminal value is
// itself a statepoint: Nonterminal[R] while the child is still working,
// Terminal[P] once it idles in a trap state. The node stays until every
// child is trapped or outright terminal on the same step, then exits with
// the per-slot trap and terminal values. Children that go outright terminal
// early are rebuilt by the parallel node and run again.
func WhenAll[I, R, P, T any]() ParallelDecider[I, Statepoint[R, P], T, []Statepoint[P, T]] {
	return ParallelDeciderFunc[I, Statepoint[R, P], T, []Statepoint[P, T]](func(_ I, points []Statepoint[Statepoint[R, P], T]) ParallelDecision[Statepoint[R, P], []Statepoint[P, T]] {
		out := make([]Statepoint[P, T], len(points))
		for i, point := range points {
			if value, ok := point.Term(); ok {
				out[i] = Terminal[P](value)
				continue
			}
			inner, _ := point.Nonterm()
			trapped, ok := inner.Term()
			if !ok {
				return Stay[Statepoint[R, P], []Statepoint[P, T]](nil)
			}
			out[i] = Nonterminal[T](trapped)
		}
		return ExitAll[Statepoint[R, P]](out)
	})
}
