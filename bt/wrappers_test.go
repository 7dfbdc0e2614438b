package bt_test

import (
	"strconv"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/birdayz/automat/bt"
)

func TestGuard(t *testing.T) {
	t.Run("passes nonterminal values while the test holds", func(t *testing.T) {
		node := bt.Guard(countdown(3, "done"), func(_ struct{}, value int) bool {
			return value > 0
		})

		value, next, ok := node.Step(struct{}{}).Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, 2, value)

		value, next, ok = next.Step(struct{}{}).Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, 1, value)

		exit, ok := next.Step(struct{}{}).Terminal()
		assert.True(t, ok)
		final, passed := exit.Passed()
		assert.True(t, passed)
		assert.Equal(t, "done", final)
	})

	t.Run("first rejected value ends the run", func(t *testing.T) {
		node := bt.Guard(countdown(10, "never"), func(_ struct{}, value int) bool {
			return value > 7
		})

		value, _, ok := node.Step(struct{}{}).Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, 9, value)

		node.Step(struct{}{})
		res := node.Step(struct{}{})
		assert.True(t, res.IsTerminal())
		exit, _ := res.Terminal()
		rejected, failed := exit.Rejected()
		assert.True(t, failed)
		assert.Equal(t, 7, rejected)
		_, passed := exit.Passed()
		assert.False(t, passed)
	})
}

func TestStepControlled(t *testing.T) {
	t.Run("play steps the child, pause holds it", func(t *testing.T) {
		node := bt.StepControlled(func() bt.Node[struct{}, int, string] {
			return countdown(3, "done")
		})

		event, _, _ := node.Step(bt.Play(struct{}{})).Nonterminal()
		value, stepped := event.Stepped()
		assert.True(t, stepped)
		assert.Equal(t, 2, value)

		event, _, _ = node.Step(bt.Pause[struct{}]()).Nonterminal()
		assert.True(t, event.Paused())

		// The pause did not consume a tick of the countdown.
		event, _, _ = node.Step(bt.Play(struct{}{})).Nonterminal()
		value, _ = event.Stepped()
		assert.Equal(t, 1, value)
	})

	t.Run("reset rebuilds the child from the factory", func(t *testing.T) {
		var builds int
		node := bt.StepControlled(func() bt.Node[struct{}, int, string] {
			builds++
			return countdown(3, "done")
		})
		assert.Equal(t, 1, builds)

		node.Step(bt.Play(struct{}{}))
		node.Step(bt.Play(struct{}{}))
		event, _, _ := node.Step(bt.Reset[struct{}]()).Nonterminal()
		assert.True(t, event.Paused())
		assert.Equal(t, 2, builds)

		// The fresh child starts its countdown over.
		event, _, _ = node.Step(bt.Play(struct{}{})).Nonterminal()
		value, _ := event.Stepped()
		assert.Equal(t, 2, value)
	})

	t.Run("reset play rebuilds and steps in one tick", func(t *testing.T) {
		var builds int
		node := bt.StepControlled(func() bt.Node[struct{}, int, string] {
			builds++
			return countdown(3, "done")
		})
		node.Step(bt.Play(struct{}{}))

		event, _, _ := node.Step(bt.ResetPlay(struct{}{})).Nonterminal()
		value, stepped := event.Stepped()
		assert.True(t, stepped)
		assert.Equal(t, 2, value)
		assert.Equal(t, 2, builds)
	})

	t.Run("child terminal ends the controlled node", func(t *testing.T) {
		node := bt.StepControlled(func() bt.Node[struct{}, int, string] {
			return countdown(1, "done")
		})
		value, ok := node.Step(bt.Play(struct{}{})).Terminal()
		assert.True(t, ok)
		assert.Equal(t, "done", value)
	})
}

func TestNodeMapping(t *testing.T) {
	t.Run("map input feeds the child through the mapping", func(t *testing.T) {
		inner := bt.Wait(func(input int) bt.Statepoint[int, string] {
			if input >= 100 {
				return bt.Terminal[int]("big")
			}
			return bt.Nonterminal[string](input * 2)
		})
		node := bt.MapInput(inner, func(s string) int {
			n, _ := strconv.Atoi(s)
			return n
		})

		value, next, ok := node.Step("21").Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, 42, value)

		final, ok := next.Step("100").Terminal()
		assert.True(t, ok)
		assert.Equal(t, "big", final)
	})

	t.Run("map nonterminal transforms reported values", func(t *testing.T) {
		node := bt.MapNonterminal(countdown(3, "done"), func(value int) string {
			return strconv.Itoa(value) + " left"
		})

		value, next, ok := node.Step(struct{}{}).Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, "2 left", value)

		value, next, ok = next.Step(struct{}{}).Nonterminal()
		assert.True(t, ok)
		assert.Equal(t, "1 left", value)

		final, ok := next.Step(struct{}{}).Terminal()
		assert.True(t, ok)
		assert.Equal(t, "done", final)
	})

	t.Run("map terminal transforms the exit value", func(t *testing.T) {
		node := bt.MapTerminal(countdown(1, "done"), func(value string) int {
			return len(value)
		})
		final, ok := node.Step(struct{}{}).Terminal()
		assert.True(t, ok)
		assert.Equal(t, 4, final)
	})

	t.Run("nil arguments fail fast", func(t *testing.T) {
		assert.Panics(t, func() { bt.MapInput[string](countdown(1, "x"), nil) })
		assert.Panics(t, func() {
			bt.MapNonterminal[struct{}, int, string, string](nil, func(int) string { return "" })
		})
	})
}
