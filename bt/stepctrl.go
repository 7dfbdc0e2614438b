package bt

type stepOp int8

const (
	opPlay stepOp = iota
	opPause
	opReset
	opResetPlay
)

// StepCommand drives a step-controlled node: feed an input through, hold the
// child untouched for a tick, or rebuild it from its factory.
type StepCommand[I any] struct {
	op    stepOp
	input I
}

// Play steps the child with the given input.
func Play[I any](input I) StepCommand[I] {
	return StepCommand[I]{op: opPlay, input: input}
}

// Pause leaves the child untouched for this tick.
func Pause[I any]() StepCommand[I] {
	return StepCommand[I]{op: opPause}
}

// Reset discards the child and rebuilds it from the factory without
// stepping it.
func Reset[I any]() StepCommand[I] {
	return StepCommand[I]{op: opReset}
}

// ResetPlay rebuilds the child from the factory and immediately steps the
// fresh instance with the given input.
func ResetPlay[I any](input I) StepCommand[I] {
	return StepCommand[I]{op: opResetPlay, input: input}
}

// StepEvent is a step-controlled node's nonterminal value: the child's
// nonterminal value if it was stepped, or a marker that the tick was spent
// paused or resetting.
type StepEvent[N any] struct {
	value   N
	stepped bool
}

// Stepped returns the child's nonterminal value if the child ran this tick.
func (e StepEvent[N]) Stepped() (N, bool) {
	if !e.stepped {
		var zero N
		return zero, false
	}
	return e.value, true
}

// Paused reports whether the child was left untouched this tick.
func (e StepEvent[N]) Paused() bool {
	return !e.stepped
}

// StepControlled wraps nodes built by the factory with play/pause/reset
// control. Terminal results of the child end the controlled node as usual;
// pausing and resetting never terminate it.
func StepControlled[I, N, T any](build func() Node[I, N, T]) Node[StepCommand[I], StepEvent[N], T] {
	if build == nil {
		panic("bt: nil node factory")
	}
	node := &stepNode[I, N, T]{build: build}
	node.child = node.rebuild()
	return node
}

type stepNode[I, N, T any] struct {
	build func() Node[I, N, T]
	child Node[I, N, T]
}

var _ Node[StepCommand[int], StepEvent[int], int] = (*stepNode[int, int, int])(nil)

func (s *stepNode[I, N, T]) Step(cmd StepCommand[I]) Result[StepCommand[I], StepEvent[N], T] {
	if s.child == nil {
		panic("bt: node stepped after terminal result")
	}
	switch cmd.op {
	case opPause:
		return Continue[StepCommand[I], StepEvent[N], T](StepEvent[N]{}, s)
	case opReset:
		s.child = s.rebuild()
		return Continue[StepCommand[I], StepEvent[N], T](StepEvent[N]{}, s)
	case opResetPlay:
		s.child = s.rebuild()
	}

	res := s.child.Step(cmd.input)
	if value, next, ok := res.Nonterminal(); ok {
		s.child = next
		return Continue[StepCommand[I], StepEvent[N], T](StepEvent[N]{value: value, stepped: true}, s)
	}
	value, _ := res.Terminal()
	s.child = nil
	return Done[StepCommand[I], StepEvent[N]](value)
}

func (s *stepNode[I, N, T]) rebuild() Node[I, N, T] {
	node := s.build()
	if node == nil {
		panic("bt: node factory returned nil node")
	}
	return node
}
