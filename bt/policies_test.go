package bt_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/birdayz/automat/bt"
)

func TestSelector(t *testing.T) {
	t.Run("exits with the first accepted terminal", func(t *testing.T) {
		outcomes := []int{5, 20, 50}
		factory := func(d int) bt.Node[struct{}, struct{}, int] {
			return bt.Eval(func(struct{}) int { return outcomes[d] })
		}
		accept := func(value int) bool { return value > 10 }
		node := bt.MustSerialNode[struct{}, int, struct{}, int, bt.Selection[int]](factory, 0, bt.Selector[struct{}, struct{}, int](3, accept))

		// Variant 0 is rejected, variant 1 accepted.
		res := node.Step(struct{}{})
		event, _, ok := res.Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, 0, event.Discriminant)

		res = node.Step(struct{}{})
		assert.True(t, res.IsTerminal())
		selection, _ := res.Terminal()
		assert.True(t, selection.Ok)
		assert.Equal(t, 1, selection.Discriminant)
		assert.Equal(t, 20, selection.Value)
	})

	t.Run("reports failure after every variant is rejected", func(t *testing.T) {
		factory := func(d int) bt.Node[struct{}, struct{}, int] {
			return bt.Eval(func(struct{}) int { return d })
		}
		never := func(int) bool { return false }
		node := bt.MustSerialNode[struct{}, int, struct{}, int, bt.Selection[int]](factory, 0, bt.Selector[struct{}, struct{}, int](2, never))

		node.Step(struct{}{})
		res := node.Step(struct{}{})
		assert.True(t, res.IsTerminal())
		selection, _ := res.Terminal()
		assert.False(t, selection.Ok)
	})

	t.Run("nil accept takes any terminal", func(t *testing.T) {
		factory := func(d int) bt.Node[struct{}, struct{}, int] {
			return bt.Eval(func(struct{}) int { return d + 7 })
		}
		node := bt.MustSerialNode[struct{}, int, struct{}, int, bt.Selection[int]](factory, 0, bt.Selector[struct{}, struct{}, int](3, nil))

		res := node.Step(struct{}{})
		assert.True(t, res.IsTerminal())
		selection, _ := res.Terminal()
		assert.True(t, selection.Ok)
		assert.Equal(t, 0, selection.Discriminant)
		assert.Equal(t, 7, selection.Value)
	})
}

func TestRace(t *testing.T) {
	t.Run("first terminal child wins", func(t *testing.T) {
		steps := make([]int, 2)
		durations := []int{2, 5}
		build := func(i int) bt.Node[struct{}, int, string] {
			remaining := durations[i]
			return bt.Wait(func(struct{}) bt.Statepoint[int, string] {
				steps[i]++
				remaining--
				if remaining <= 0 {
					return bt.Terminal[int](variantLabels[i])
				}
				return bt.Nonterminal[string](remaining)
			})
		}
		node := bt.MustParallelNode[struct{}, int, string, bt.RaceWinner[string]](build, 2, bt.Race[struct{}, int, string]())

		res := node.Step(struct{}{})
		assert.False(t, res.IsTerminal())

		res = node.Step(struct{}{})
		assert.True(t, res.IsTerminal())
		winner, _ := res.Terminal()
		assert.Equal(t, 0, winner.Index)
		assert.Equal(t, "first", winner.Value)

		// The slower child was stepped exactly as often as the winner.
		assert.Equal(t, []int{2, 2}, steps)
	})

	t.Run("lowest slot wins ties", func(t *testing.T) {
		build := func(i int) bt.Node[struct{}, int, string] {
			return countdown(1, variantLabels[i])
		}
		node := bt.MustParallelNode[struct{}, int, string, bt.RaceWinner[string]](build, 3, bt.Race[struct{}, int, string]())

		winner, ok := node.Step(struct{}{}).Terminal()
		assert.True(t, ok)
		assert.Equal(t, 0, winner.Index)
		assert.Equal(t, "first", winner.Value)
	})
}

func TestWhenAll(t *testing.T) {
	t.Run("stays until every child is trapped", func(t *testing.T) {
		trapAfter := []int{1, 3}
		build := func(i int) bt.Node[struct{}, bt.Statepoint[int, string], string] {
			remaining := trapAfter[i]
			label := variantLabels[i]
			return bt.Wait(func(struct{}) bt.Statepoint[bt.Statepoint[int, string], string] {
				if remaining > 0 {
					remaining--
				}
				if remaining == 0 {
					return bt.Nonterminal[string](bt.Terminal[int]("trap " + label))
				}
				return bt.Nonterminal[string](bt.Nonterminal[string](remaining))
			})
		}
		node := bt.MustParallelNode[struct{}, bt.Statepoint[int, string], string, []bt.Statepoint[string, string]](build, 2, bt.WhenAll[struct{}, int, string, string]())

		for i := 0; i < 2; i++ {
			res := node.Step(struct{}{})
			assert.False(t, res.IsTerminal())
		}
		res := node.Step(struct{}{})
		assert.True(t, res.IsTerminal())
		out, _ := res.Terminal()
		assert.Equal(t, 2, len(out))
		first, _ := out[0].Nonterm()
		second, _ := out[1].Nonterm()
		assert.Equal(t, "trap first", first)
		assert.Equal(t, "trap second", second)
	})

	t.Run("outright terminal children count as finished", func(t *testing.T) {
		build := func(i int) bt.Node[struct{}, bt.Statepoint[int, string], string] {
			if i == 0 {
				return bt.Wait(func(struct{}) bt.Statepoint[bt.Statepoint[int, string], string] {
					return bt.Terminal[bt.Statepoint[int, string]]("done")
				})
			}
			return bt.Wait(func(struct{}) bt.Statepoint[bt.Statepoint[int, string], string] {
				return bt.Nonterminal[string](bt.Terminal[int]("trapped"))
			})
		}
		node := bt.MustParallelNode[struct{}, bt.Statepoint[int, string], string, []bt.Statepoint[string, string]](build, 2, bt.WhenAll[struct{}, int, string, string]())

		res := node.Step(struct{}{})
		assert.True(t, res.IsTerminal())
		out, _ := res.Terminal()

		value, ok := out[0].Term()
		assert.True(t, ok)
		assert.Equal(t, "done", value)

		trapped, ok := out[1].Nonterm()
		assert.True(t, ok)
		assert.Equal(t, "trapped", trapped)
	})
}
