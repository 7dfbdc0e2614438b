package main

import (
	"fmt"

	"github.com/birdayz/automat"
	"github.com/birdayz/automat/bt"
)

// Tick that interrupts whatever the guard is doing. Every other tick is an
// uneventful unit of time.
const inputNoise = "noise"

// NewPatrolMachine returns the guard's pushdown automaton. The bottom walks
// the waypoints in a loop; a noise pushes an investigation frame, and a noise
// heard mid-investigation stacks a deeper one.
func NewPatrolMachine(waypoints, lookTicks int) *automat.Pushdown[string, string] {
	return automat.NewPushdown(newRounds(waypoints, lookTicks))
}

func newRounds(waypoints, lookTicks int) automat.Bottom[string, string] {
	pos := 0
	return automat.Func[string, automat.BottomAction[string, string]](func(input string) automat.BottomAction[string, string] {
		if input == inputNoise {
			return automat.BottomPush(
				fmt.Sprintf("noise at waypoint %d, moving in", pos),
				newInvestigation(1, lookTicks),
			)
		}
		pos = (pos + 1) % waypoints
		return automat.BottomStay[string](fmt.Sprintf("patrolling waypoint %d", pos))
	})
}

func newInvestigation(depth, lookTicks int) automat.Frame[string, string] {
	remaining := lookTicks
	return automat.Func[string, automat.FrameAction[string, string]](func(input string) automat.FrameAction[string, string] {
		if input == inputNoise {
			return automat.PushFrame(
				fmt.Sprintf("another noise at depth %d, going deeper", depth),
				newInvestigation(depth+1, lookTicks),
			)
		}
		remaining--
		if remaining <= 0 {
			return automat.Pop[string](fmt.Sprintf("depth %d all clear, backing out", depth))
		}
		return automat.Stay[string](fmt.Sprintf("sweeping at depth %d, %d to go", depth, remaining))
	})
}

// NewAlertness returns a node runner counting noises across the whole run.
// The node finishes with an alarm once threshold noises were heard; the
// runner then rearms it with a fresh count.
func NewAlertness(threshold int) *bt.Runner[string, int, string] {
	return bt.NewRunner(func() bt.Node[string, int, string] {
		heard := 0
		return bt.Wait(func(input string) bt.Statepoint[int, string] {
			if input == inputNoise {
				heard++
			}
			if heard >= threshold {
				return bt.Terminal[int](fmt.Sprintf("alarm raised after %d noises", heard))
			}
			return bt.Nonterminal[string](heard)
		})
	})
}
