package bt

import "fmt"

// ParallelDecision is a parallel decider's answer for one step: keep going,
// optionally resetting some children, or exit the whole parallel node.
type ParallelDecision[N, X any] struct {
	exit  bool
	value X
	reset func(index int, nonterm N) bool
}

// Stay keeps the parallel node running. Children that went terminal this
// step are always rebuilt from their slot factory; a nonterminal child is
// additionally rebuilt when the reset predicate returns true for its index
// and value. A nil predicate resets nothing.
func Stay[N, X any](reset func(index int, nonterm N) bool) ParallelDecision[N, X] {
	return ParallelDecision[N, X]{reset: reset}
}

// ExitAll terminates the whole parallel node with the given value, dropping
// all children. The nonterminal type is given explicitly:
//
//	return bt.ExitAll[int](value)
func ExitAll[N, X any](value X) ParallelDecision[N, X] {
	return ParallelDecision[N, X]{exit: true, value: value}
}

// ParallelDecider inspects the statepoints of all children for one step, in
// slot order, and chooses whether the parallel node stays or exits.
type ParallelDecider[I, N, T, X any] interface {
	Decide(input I, points []Statepoint[N, T]) ParallelDecision[N, X]
}

// ParallelDeciderFunc adapts a plain function to a ParallelDecider.
type ParallelDeciderFunc[I, N, T, X any] func(input I, points []Statepoint[N, T]) ParallelDecision[N, X]

var _ ParallelDecider[int, int, int, int] = (ParallelDeciderFunc[int, int, int, int])(nil)

func (f ParallelDeciderFunc[I, N, T, X]) Decide(input I, points []Statepoint[N, T]) ParallelDecision[N, X] {
	return f(input, points)
}

// ParallelNode steps a fixed collection of children with the same input
// every tick, in slot order, and feeds the collected statepoints to its
// decider. The slot count never changes for the node's lifetime; individual
// slots are refilled from the build function when their child terminates or
// is reset.
type ParallelNode[I, N, T, X any] struct {
	children []Node[I, N, T]
	build    func(index int) Node[I, N, T]
	decider  ParallelDecider[I, N, T, X]
}

var _ Node[int, []Statepoint[int, int], int] = (*ParallelNode[int, int, int, int])(nil)

// NewParallelNode builds count children with the build function, one per
// slot, and returns the parallel node running them.
func NewParallelNode[I, N, T, X any](build func(index int) Node[I, N, T], count int, decider ParallelDecider[I, N, T, X]) (*ParallelNode[I, N, T, X], error) {
	if build == nil {
		return nil, ErrNilFactory
	}
	if decider == nil {
		return nil, ErrNilDecider
	}
	if count <= 0 {
		return nil, ErrNoChildren
	}
	children := make([]Node[I, N, T], count)
	for i := range children {
		child := build(i)
		if child == nil {
			return nil, fmt.Errorf("%w: slot %d", ErrNilChild, i)
		}
		children[i] = child
	}
	return &ParallelNode[I, N, T, X]{
		children: children,
		build:    build,
		decider:  decider,
	}, nil
}

func MustParallelNode[I, N, T, X any](build func(index int) Node[I, N, T], count int, decider ParallelDecider[I, N, T, X]) *ParallelNode[I, N, T, X] {
	node, err := NewParallelNode(build, count, decider)
	if err != nil {
		panic(err)
	}
	return node
}

// Size reports the fixed slot count.
func (p *ParallelNode[I, N, T, X]) Size() int {
	return len(p.children)
}

func (p *ParallelNode[I, N, T, X]) Step(input I) Result[I, []Statepoint[N, T], X] {
	if p.children == nil {
		panic("bt: node stepped after terminal result")
	}
	points := make([]Statepoint[N, T], len(p.children))
	for i := range p.children {
		res := p.children[i].Step(input)
		if value, next, ok := res.Nonterminal(); ok {
			points[i] = Nonterminal[T, N](value)
			p.children[i] = next
			continue
		}
		value, _ := res.Terminal()
		points[i] = Terminal[N, T](value)
		p.children[i] = nil
	}

	d := p.decider.Decide(input, points)
	if d.exit {
		p.children = nil
		return Done[I, []Statepoint[N, T]](d.value)
	}
	for i := range p.children {
		if p.children[i] == nil {
			p.children[i] = p.rebuild(i)
			continue
		}
		if d.reset == nil {
			continue
		}
		if value, ok := points[i].Nonterm(); ok && d.reset(i, value) {
			p.children[i] = p.rebuild(i)
		}
	}
	return Continue[I, []Statepoint[N, T], X](points, p)
}

func (p *ParallelNode[I, N, T, X]) rebuild(index int) Node[I, N, T] {
	child := p.build(index)
	if child == nil {
		panic(fmt.Sprintf("bt: slot factory returned nil node for slot %d", index))
	}
	return child
}
