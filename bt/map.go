package bt

// MapInput wraps a node with a pure function that turns the wrapper's input
// into the child's input.
func MapInput[I2, I, N, T any](child Node[I, N, T], f func(I2) I) Node[I2, N, T] {
	if child == nil {
		panic("bt: nil child node")
	}
	if f == nil {
		panic("bt: nil mapping function")
	}
	return &inputMappedNode[I2, I, N, T]{child: child, f: f}
}

type inputMappedNode[I2, I, N, T any] struct {
	child Node[I, N, T]
	f     func(I2) I
}

func (m *inputMappedNode[I2, I, N, T]) Step(input I2) Result[I2, N, T] {
	if m.child == nil {
		panic("bt: node stepped after terminal result")
	}
	res := m.child.Step(m.f(input))
	if value, next, ok := res.Nonterminal(); ok {
		m.child = next
		return Continue[I2, N, T](value, m)
	}
	value, _ := res.Terminal()
	m.child = nil
	return Done[I2, N](value)
}

// MapNonterminal wraps a node with a pure function over its nonterminal
// values, so heterogeneous leaves can share a composition's value shape.
func MapNonterminal[I, N, N2, T any](child Node[I, N, T], f func(N) N2) Node[I, N2, T] {
	if child == nil {
		panic("bt: nil child node")
	}
	if f == nil {
		panic("bt: nil mapping function")
	}
	return &nontermMappedNode[I, N, N2, T]{child: child, f: f}
}

type nontermMappedNode[I, N, N2, T any] struct {
	child Node[I, N, T]
	f     func(N) N2
}

func (m *nontermMappedNode[I, N, N2, T]) Step(input I) Result[I, N2, T] {
	if m.child == nil {
		panic("bt: node stepped after terminal result")
	}
	res := m.child.Step(input)
	if value, next, ok := res.Nonterminal(); ok {
		m.child = next
		return Continue[I, N2, T](m.f(value), m)
	}
	value, _ := res.Terminal()
	m.child = nil
	return Done[I, N2](value)
}

// MapTerminal wraps a node with a pure function over its terminal value.
func MapTerminal[I, N, T, T2 any](child Node[I, N, T], f func(T) T2) Node[I, N, T2] {
	if child == nil {
		panic("bt: nil child node")
	}
	if f == nil {
		panic("bt: nil mapping function")
	}
	return &termMappedNode[I, N, T, T2]{child: child, f: f}
}

type termMappedNode[I, N, T, T2 any] struct {
	child Node[I, N, T]
	f     func(T) T2
}

func (m *termMappedNode[I, N, T, T2]) Step(input I) Result[I, N, T2] {
	if m.child == nil {
		panic("bt: node stepped after terminal result")
	}
	res := m.child.Step(input)
	if value, next, ok := res.Nonterminal(); ok {
		m.child = next
		return Continue[I, N, T2](value, m)
	}
	value, _ := res.Terminal()
	m.child = nil
	return Done[I, N](m.f(value))
}
