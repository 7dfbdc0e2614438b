package bt_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/birdayz/automat/bt"
)

func TestSerialNode(t *testing.T) {
	t.Run("runs variants in sequence and exits with the last terminal", func(t *testing.T) {
		factory := func(d int) bt.Node[struct{}, int, string] {
			return countdown(d+1, variantLabels[d])
		}
		node := bt.MustSerialNode[struct{}, int, int, string, string](factory, 0, bt.Sequence[struct{}, int, string](3))

		// Variant 0 terminates immediately, 1 after two steps, 2 after three.
		events, exit := drainSerial(t, node, []struct{}{{}, {}, {}, {}, {}, {}})

		assert.Equal(t, 6, len(events))
		assert.Equal(t, 0, events[0].Discriminant)
		assert.True(t, events[0].Child.IsTerminal())
		assert.Equal(t, 1, events[1].Discriminant)
		assert.False(t, events[1].Child.IsTerminal())
		assert.Equal(t, 1, events[2].Discriminant)
		assert.True(t, events[2].Child.IsTerminal())
		assert.Equal(t, 2, events[3].Discriminant)
		assert.Equal(t, 2, events[4].Discriminant)
		assert.True(t, events[5].IsExit)
		assert.Equal(t, "third", exit)
	})

	t.Run("reported discriminant always matches the stepped variant", func(t *testing.T) {
		// Every variant's nonterminal and terminal values carry the
		// discriminant it was built from.
		factory := func(d int) bt.Node[struct{}, int, int] {
			remaining := d + 2
			return bt.Wait(func(struct{}) bt.Statepoint[int, int] {
				remaining--
				if remaining <= 0 {
					return bt.Terminal[int](d)
				}
				return bt.Nonterminal[int](d)
			})
		}
		node := bt.MustSerialNode[struct{}, int, int, int, int](factory, 0, bt.Sequence[struct{}, int, int](4))

		var current bt.Node[struct{}, bt.SerialEvent[int, int, int], int] = node
		for i := 0; i < 14; i++ {
			res := current.Step(struct{}{})
			if res.IsTerminal() {
				value, _ := res.Terminal()
				assert.Equal(t, 3, value)
				return
			}
			event, next, _ := res.Nonterminal()
			if reported, ok := event.Child.Nonterm(); ok {
				assert.Equal(t, event.Discriminant, reported)
			} else {
				reported, _ := event.Child.Term()
				assert.Equal(t, event.Discriminant, reported)
			}
			current = next
		}
		t.Fatal("serial node never exited")
	})

	t.Run("transition discards the running child's continuation", func(t *testing.T) {
		var built int
		factory := func(d int) bt.Node[struct{}, int, string] {
			built++
			return countdown(100, "never")
		}
		// Switch away from variant 0 on its first nonterminal report.
		decider := bt.SerialDeciderFuncs[struct{}, int, int, string, string]{
			Nonterminal: func(_ struct{}, d int, _ int) bt.SerialDecision[int, string] {
				if d == 0 {
					return bt.Transition[int, string](1)
				}
				return bt.Step[int, string]()
			},
			Terminal: func(_ struct{}, _ int, value string) bt.SerialDecision[int, string] {
				return bt.Exit[int](value)
			},
		}
		node := bt.MustSerialNode[struct{}, int, int, string, string](factory, 0, decider)
		assert.Equal(t, 1, built)

		event, _, ok := node.Step(struct{}{}).Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, 0, event.Discriminant)
		assert.Equal(t, 2, built)
		assert.Equal(t, 1, node.Discriminant())
	})

	t.Run("decider answering step for a terminal child panics", func(t *testing.T) {
		factory := func(int) bt.Node[struct{}, int, string] {
			return countdown(1, "done")
		}
		decider := bt.SerialDeciderFuncs[struct{}, int, int, string, string]{
			Terminal: func(struct{}, int, string) bt.SerialDecision[int, string] {
				return bt.Step[int, string]()
			},
		}
		node := bt.MustSerialNode[struct{}, int, int, string, string](factory, 0, decider)

		assert.Equal(t, "bt: serial decider answered Step for a terminal child", recovered(func() {
			node.Step(struct{}{})
		}))
	})

	t.Run("stepping after exit fails fast", func(t *testing.T) {
		factory := func(int) bt.Node[struct{}, int, string] {
			return countdown(1, "done")
		}
		node := bt.MustSerialNode[struct{}, int, int, string, string](factory, 0, bt.Sequence[struct{}, int, string](1))
		res := node.Step(struct{}{})
		assert.True(t, res.IsTerminal())

		assert.Equal(t, "bt: node stepped after terminal result", recovered(func() {
			node.Step(struct{}{})
		}))
	})

	t.Run("construction validates its arguments", func(t *testing.T) {
		factory := func(int) bt.Node[struct{}, int, string] {
			return countdown(1, "done")
		}
		nilFactory := func(int) bt.Node[struct{}, int, string] { return nil }
		seq := bt.Sequence[struct{}, int, string](1)

		_, err := bt.NewSerialNode[struct{}, int, int, string, string](nil, 0, seq)
		assert.True(t, errors.Is(err, bt.ErrNilFactory))

		_, err = bt.NewSerialNode[struct{}, int, int, string, string](factory, 0, nil)
		assert.True(t, errors.Is(err, bt.ErrNilDecider))

		_, err = bt.NewSerialNode[struct{}, int, int, string, string](nilFactory, 0, seq)
		assert.True(t, errors.Is(err, bt.ErrNilChild))
	})
}

var variantLabels = []string{"first", "second", "third"}

// serialTrace is one observed serial step, flattened for assertions.
type serialTrace struct {
	Discriminant int
	Child        bt.Statepoint[int, string]
	IsExit       bool
}

// drainSerial steps node through the inputs, recording every event, and
// returns the exit value if the node terminated on the way.
func drainSerial(t *testing.T, node bt.Node[struct{}, bt.SerialEvent[int, int, string], string], inputs []struct{}) ([]serialTrace, string) {
	t.Helper()
	var events []serialTrace
	for _, input := range inputs {
		res := node.Step(input)
		if res.IsTerminal() {
			value, _ := res.Terminal()
			events = append(events, serialTrace{IsExit: true})
			return events, value
		}
		event, next, _ := res.Nonterminal()
		events = append(events, serialTrace{Discriminant: event.Discriminant, Child: event.Child})
		node = next
	}
	return events, ""
}
