// Package automat is a composition algebra for step-driven state machines.
//
// # Overview
//
// An automaton is anything with a Transition(input) action method: a host
// loop calls it once per tick with one input and receives one action. The
// package provides three base machine kinds and structural combinators to
// build larger machines out of smaller ones:
//
//   - InternalMachine: a state value plus a stateless step function
//   - RefMachine: a self-replacing step function; the function is the state
//   - DualMachine: a self-replacing step function plus separate state, the
//     most general kind
//   - NewSeries / NewTee / NewParallel: sequential and fan-out composition
//   - NewLazy: defer construction until the first input arrives
//   - MapInput / MapOutput / Func: pure-function adapters
//   - NewPushdown: a stack of machines with push/stay/pop control
//
// # Basic Usage
//
//	counter := automat.NewInternalMachine(func(tick bool, n *int) int {
//		if tick {
//			*n++
//		}
//		return *n
//	}, 0)
//
//	doubled := automat.MapOutput(counter, func(n int) int { return n * 2 })
//	doubled.Transition(true) // 2
//	doubled.Transition(true) // 4
//
// # Duplication
//
// Machines whose state is a fixed-size value implement FiniteAutomaton and
// can be cloned to branch two independent runs from the same point.
// Composites clone by cloning their children and report ErrNotFiniteState
// when a child lacks the capability.
//
// # Failure
//
// A step function that panics leaves the surrounding machine poisoned where
// the machine had to take its state out for the call (RefMachine,
// DualMachine, Pushdown): later transitions panic immediately instead of
// running on inconsistent state. There is no retry anywhere; one call is one
// deterministic step.
//
// # Thread Safety
//
// IMPORTANT: machines are NOT safe for concurrent use. Exactly one caller
// may drive a composed machine; composites own their children exclusively.
package automat
