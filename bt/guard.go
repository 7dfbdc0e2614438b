package bt

// GuardExit is a guarded node's terminal value: either the child's own
// terminal value, or the nonterminal value the guard rejected.
type GuardExit[N, T any] struct {
	value    T
	rejected N
	failed   bool
}

// Passed returns the child's terminal value if the run ended without the
// guard tripping.
func (g GuardExit[N, T]) Passed() (T, bool) {
	if g.failed {
		var zero T
		return zero, false
	}
	return g.value, true
}

// Rejected returns the nonterminal value the guard tripped on, if any.
func (g GuardExit[N, T]) Rejected() (N, bool) {
	if !g.failed {
		var zero N
		return zero, false
	}
	return g.rejected, true
}

// Guard checks every nonterminal value of child against test. While the
// test passes, values flow through unchanged; the first rejected value ends
// the node with a failed exit, dropping the child mid-run. The child's own
// terminal value passes through as a successful exit.
func Guard[I, N, T any](child Node[I, N, T], test func(input I, value N) bool) Node[I, N, GuardExit[N, T]] {
	if child == nil {
		panic("bt: nil child node")
	}
	if test == nil {
		panic("bt: nil guard test")
	}
	return &guardNode[I, N, T]{child: child, test: test}
}

type guardNode[I, N, T any] struct {
	child Node[I, N, T]
	test  func(I, N) bool
}

var _ Node[int, int, GuardExit[int, int]] = (*guardNode[int, int, int])(nil)

func (g *guardNode[I, N, T]) Step(input I) Result[I, N, GuardExit[N, T]] {
	if g.child == nil {
		panic("bt: node stepped after terminal result")
	}
	res := g.child.Step(input)
	if value, next, ok := res.Nonterminal(); ok {
		if !g.test(input, value) {
			g.child = nil
			return Done[I, N](GuardExit[N, T]{rejected: value, failed: true})
		}
		g.child = next
		return Continue[I, N, GuardExit[N, T]](value, g)
	}
	value, _ := res.Terminal()
	g.child = nil
	return Done[I, N](GuardExit[N, T]{value: value})
}
