// Package bt provides behavior tree nodes on top of the automat machine
// algebra.
//
// # Overview
//
// A Node is a step-driven decision process with an end state. Each Step call
// consumes the live node and reports either a nonterminal value together with
// the node's continuation, or a terminal value with no continuation:
//
//   - **Leaves**: Lift turns any automaton whose action is a Statepoint into
//     a node; Wait, Eval, Forever and Endless build leaves from plain
//     functions and machines.
//   - **Serial branches**: SerialNode owns one variant of an enumerable child
//     family at a time and switches variants under a SerialDecider.
//   - **Parallel branches**: ParallelNode steps a fixed collection of
//     children with the same input each tick and continues or exits under a
//     ParallelDecider.
//   - **Wrappers**: Guard, StepControlled, MapInput, MapNonterminal and
//     MapTerminal adapt a node's inputs, values and exit behavior.
//   - **Runner**: presents a node as an ordinary automaton that restarts
//     itself whenever the node terminates.
//
// # Lifecycle
//
// A node is live until its Step returns a terminal result. The nonterminal
// case hands back the continuation to use for the next call; built-in nodes
// return their own updated value, so the usual pattern is
//
//	res := node.Step(input)
//	if value, next, ok := res.Nonterminal(); ok {
//		node = next
//		// consume value
//	}
//
// IMPORTANT: a node that has returned a terminal result is consumed. There
// is no transition back to live; discard the value and build a fresh node
// (or let Runner do it). Built-in nodes fail fast when stepped after a
// terminal result instead of returning stale state.
//
// # Deciders
//
// Branch nodes delegate continue/switch/exit choices to decider values.
// Sequence, Selector, WhenAll and Race cover the common policies; custom
// policies implement SerialDecider or ParallelDecider, usually through the
// SerialDeciderFuncs and ParallelDeciderFunc adapters.
//
// All construction errors use sentinel errors (ErrNilFactory, ErrNilDecider,
// ErrNilChild, ErrNoChildren) and can be tested with errors.Is.
package bt
