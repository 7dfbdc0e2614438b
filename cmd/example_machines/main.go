package main

import (
	"fmt"

	"github.com/birdayz/automat"
	"github.com/birdayz/automat/bt"
	"github.com/birdayz/automat/machines"
)

func main() {

	// Total and smoothed view of the same readings.
	gauges := automat.NewParallel[float64, float64, float64](
		machines.Accumulator[float64](),
		machines.Smoother(0.5),
	)

	for _, reading := range []float64{10, 14, 6} {
		pair := gauges.Transition(reading)
		fmt.Printf("total=%.1f smoothed=%.1f\n", pair.First, pair.Second)
	}

	// A node that finishes every third tick, restarted by its runner.
	metronome := bt.NewRunner(func() bt.Node[struct{}, int, string] {
		return bt.Lift[struct{}, int, string](NewBeatMachine(3))
	})

	for i := 0; i < 9; i++ {
		fmt.Println(DescribeBeat(metronome.Transition(struct{}{})))
	}
}

var NewBeatMachine = func(period int) *automat.InternalMachine[struct{}, int, bt.Statepoint[int, string]] {
	return automat.NewInternalMachine(func(_ struct{}, state *int) bt.Statepoint[int, string] {
		*state++
		if *state >= period {
			return bt.Terminal[int]("beat")
		}
		return bt.Nonterminal[string](*state)
	}, 0)
}

var DescribeBeat = func(point bt.Statepoint[int, string]) string {
	if beat, ok := point.Term(); ok {
		return beat
	}
	rest, _ := point.Nonterm()
	return fmt.Sprintf("rest %d", rest)
}
