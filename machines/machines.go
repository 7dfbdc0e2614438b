// Package machines provides small reusable leaf machines: counters, latches,
// delay lines and filters meant to be wired into larger compositions. All of
// them are finite-state, so composites built from them stay duplicable.
package machines

import (
	"github.com/birdayz/automat"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Number is any built-in integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Counter counts the ticks on which its input is true and reports the
// running count.
func Counter[T constraints.Integer]() *automat.InternalMachine[bool, T, T] {
	return automat.NewInternalMachine(func(input bool, state *T) T {
		if input {
			*state++
		}
		return *state
	}, 0)
}

// Accumulator keeps a running sum of its inputs.
func Accumulator[T Number]() *automat.InternalMachine[T, T, T] {
	return automat.NewInternalMachine(func(input T, state *T) T {
		*state += input
		return *state
	}, 0)
}

// LatchInput sets or clears a Latch. Reset dominates when both are given.
type LatchInput struct {
	Set   bool
	Reset bool
}

// Latch holds a boolean that Set raises and Reset clears.
func Latch() *automat.InternalMachine[LatchInput, bool, bool] {
	return automat.NewInternalMachine(func(input LatchInput, state *bool) bool {
		switch {
		case input.Reset:
			*state = false
		case input.Set:
			*state = true
		}
		return *state
	}, false)
}

// Cooldown fires on a true input when at least period ticks have passed
// since the last fire. It starts ready.
func Cooldown[T constraints.Integer](period T) *automat.InternalMachine[bool, T, bool] {
	if period <= 0 {
		panic("machines: cooldown period must be positive")
	}
	return automat.NewInternalMachine(func(trigger bool, state *T) bool {
		if *state < period {
			*state++
		}
		if trigger && *state >= period {
			*state = 0
			return true
		}
		return false
	}, period)
}

// DelayLine emits the input it received length ticks ago.
type DelayLine[T any] struct {
	buf []T
	idx int
}

var _ automat.FiniteAutomaton[int, int] = (*DelayLine[int])(nil)

// Delay returns a machine delaying its inputs by length ticks, emitting
// initial until the first inputs come through.
func Delay[T any](length int, initial T) *DelayLine[T] {
	if length <= 0 {
		panic("machines: delay length must be positive")
	}
	buf := make([]T, length)
	for i := range buf {
		buf[i] = initial
	}
	return &DelayLine[T]{buf: buf}
}

func (d *DelayLine[T]) Transition(input T) T {
	out := d.buf[d.idx]
	d.buf[d.idx] = input
	d.idx = (d.idx + 1) % len(d.buf)
	return out
}

// Clone copies the buffered inputs so both lines evolve independently.
func (d *DelayLine[T]) Clone() (automat.Automaton[T, T], error) {
	return &DelayLine[T]{buf: slices.Clone(d.buf), idx: d.idx}, nil
}

type smootherState[T constraints.Float] struct {
	value  T
	primed bool
}

// Smoother exponentially smooths its inputs, weighting each new sample with
// alpha. The first input primes the average.
func Smoother[T constraints.Float](alpha T) automat.FiniteAutomaton[T, T] {
	if alpha <= 0 || alpha > 1 {
		panic("machines: smoothing factor out of (0, 1]")
	}
	return automat.NewInternalMachine(func(input T, state *smootherState[T]) T {
		if !state.primed {
			state.primed = true
			state.value = input
		} else {
			state.value = alpha*input + (1-alpha)*state.value
		}
		return state.value
	}, smootherState[T]{})
}

// Edge reports signal transitions between consecutive ticks.
type Edge struct {
	Rising  bool
	Falling bool
}

// EdgeDetector reports rising and falling edges of a boolean signal. The
// signal counts as false before the first input.
func EdgeDetector() *automat.InternalMachine[bool, bool, Edge] {
	return automat.NewInternalMachine(func(input bool, state *bool) Edge {
		edge := Edge{Rising: input && !*state, Falling: !input && *state}
		*state = input
		return edge
	}, false)
}
