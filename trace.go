package automat

import "github.com/go-logr/logr"

// TraceMachine logs every transition of the machine it wraps, with a
// monotonically increasing tick number. Per-tick detail goes to verbosity
// level 1 so production loggers can drop it.
type TraceMachine[I, A any] struct {
	inner Automaton[I, A]
	log   logr.Logger
	tick  uint64
}

var _ FiniteAutomaton[int, int] = (*TraceMachine[int, int])(nil)

// Traced wraps m so its inputs and actions are visible on log under the
// given machine name.
func Traced[I, A any](log logr.Logger, name string, m Automaton[I, A]) *TraceMachine[I, A] {
	if m == nil {
		panic("automat: nil child machine")
	}
	return &TraceMachine[I, A]{inner: m, log: log.WithName(name)}
}

func (t *TraceMachine[I, A]) Transition(input I) A {
	t.tick++
	action := t.inner.Transition(input)
	t.log.V(1).Info("transition", "tick", t.tick, "input", input, "action", action)
	return action
}

// Clone clones the wrapped machine and keeps tracing it with the same logger
// and tick count.
func (t *TraceMachine[I, A]) Clone() (Automaton[I, A], error) {
	inner, err := cloneChild(t.inner)
	if err != nil {
		return nil, err
	}
	return &TraceMachine[I, A]{inner: inner, log: t.log, tick: t.tick}, nil
}
