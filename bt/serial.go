package bt

import "fmt"

// SerialDecision is a serial decider's answer for one step: keep the live
// variant, switch to another variant, or exit the whole serial node.
type SerialDecision[D, X any] struct {
	kind decisionKind
	next D
	exit X
}

type decisionKind int8

const (
	decideStep decisionKind = iota
	decideTransition
	decideExit
)

// Step keeps the live variant and its continuation.
func Step[D, X any]() SerialDecision[D, X] {
	return SerialDecision[D, X]{kind: decideStep}
}

// Transition discards the live variant and builds a fresh instance of the
// variant tagged next.
func Transition[D, X any](next D) SerialDecision[D, X] {
	return SerialDecision[D, X]{kind: decideTransition, next: next}
}

// Exit terminates the whole serial node with the given value. The
// discriminant type is given explicitly:
//
//	return bt.Exit[int](value)
func Exit[D, X any](value X) SerialDecision[D, X] {
	return SerialDecision[D, X]{kind: decideExit, exit: value}
}

// SerialDecider chooses how a serial node proceeds after stepping its live
// variant. OnTerminal must not answer Step: a terminal child has no
// continuation to keep, so the node panics on that answer.
type SerialDecider[I, D, N, T, X any] interface {
	OnNonterminal(input I, disc D, value N) SerialDecision[D, X]
	OnTerminal(input I, disc D, value T) SerialDecision[D, X]
}

// SerialDeciderFuncs adapts plain functions to a SerialDecider. A nil
// Nonterminal hook defaults to Step, which keeps the live variant running;
// the Terminal hook has no sensible default and panics when left nil.
type SerialDeciderFuncs[I, D, N, T, X any] struct {
	Nonterminal func(input I, disc D, value N) SerialDecision[D, X]
	Terminal    func(input I, disc D, value T) SerialDecision[D, X]
}

var _ SerialDecider[int, int, int, int, int] = SerialDeciderFuncs[int, int, int, int, int]{}

func (f SerialDeciderFuncs[I, D, N, T, X]) OnNonterminal(input I, disc D, value N) SerialDecision[D, X] {
	if f.Nonterminal == nil {
		return Step[D, X]()
	}
	return f.Nonterminal(input, disc, value)
}

func (f SerialDeciderFuncs[I, D, N, T, X]) OnTerminal(input I, disc D, value T) SerialDecision[D, X] {
	if f.Terminal == nil {
		panic("bt: serial decider has no terminal hook")
	}
	return f.Terminal(input, disc, value)
}

// SerialEvent is a serial node's nonterminal value: the discriminant that
// was live during the step and the child's own result, tagged so callers can
// tell a child that kept running from one that just finished.
type SerialEvent[D, N, T any] struct {
	Discriminant D
	Child        Statepoint[N, T]
}

// SerialNode owns exactly one live instance of an enumerable family of child
// node kinds, each kind built by the factory from its discriminant. Every
// step the live child runs first, then the decider chooses whether to keep
// it, switch variants, or exit.
type SerialNode[I, D, N, T, X any] struct {
	factory func(D) Node[I, N, T]
	decider SerialDecider[I, D, N, T, X]
	current Node[I, N, T]
	disc    D
}

var _ Node[int, SerialEvent[int, int, int], int] = (*SerialNode[int, int, int, int, int])(nil)

// NewSerialNode builds the initial variant from the factory and returns the
// serial node running it.
func NewSerialNode[I, D, N, T, X any](factory func(D) Node[I, N, T], initial D, decider SerialDecider[I, D, N, T, X]) (*SerialNode[I, D, N, T, X], error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if decider == nil {
		return nil, ErrNilDecider
	}
	child := factory(initial)
	if child == nil {
		return nil, fmt.Errorf("%w: variant %v", ErrNilChild, initial)
	}
	return &SerialNode[I, D, N, T, X]{
		factory: factory,
		decider: decider,
		current: child,
		disc:    initial,
	}, nil
}

func MustSerialNode[I, D, N, T, X any](factory func(D) Node[I, N, T], initial D, decider SerialDecider[I, D, N, T, X]) *SerialNode[I, D, N, T, X] {
	node, err := NewSerialNode(factory, initial, decider)
	if err != nil {
		panic(err)
	}
	return node
}

// Discriminant reports which variant is live.
func (s *SerialNode[I, D, N, T, X]) Discriminant() D {
	return s.disc
}

func (s *SerialNode[I, D, N, T, X]) Step(input I) Result[I, SerialEvent[D, N, T], X] {
	if s.current == nil {
		panic("bt: node stepped after terminal result")
	}
	disc := s.disc
	res := s.current.Step(input)

	if value, next, ok := res.Nonterminal(); ok {
		switch d := s.decider.OnNonterminal(input, disc, value); d.kind {
		case decideStep:
			s.current = next
		case decideTransition:
			s.switchTo(d.next)
		case decideExit:
			s.current = nil
			return Done[I, SerialEvent[D, N, T]](d.exit)
		}
		event := SerialEvent[D, N, T]{Discriminant: disc, Child: Nonterminal[T, N](value)}
		return Continue[I, SerialEvent[D, N, T], X](event, s)
	}

	value, _ := res.Terminal()
	switch d := s.decider.OnTerminal(input, disc, value); d.kind {
	case decideStep:
		panic("bt: serial decider answered Step for a terminal child")
	case decideTransition:
		s.switchTo(d.next)
	case decideExit:
		s.current = nil
		return Done[I, SerialEvent[D, N, T]](d.exit)
	}
	event := SerialEvent[D, N, T]{Discriminant: disc, Child: Terminal[N, T](value)}
	return Continue[I, SerialEvent[D, N, T], X](event, s)
}

func (s *SerialNode[I, D, N, T, X]) switchTo(next D) {
	child := s.factory(next)
	if child == nil {
		panic(fmt.Sprintf("bt: variant factory returned nil node for %v", next))
	}
	s.current = child
	s.disc = next
}
