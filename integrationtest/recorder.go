package integrationtest

import "github.com/birdayz/automat/loop"

// Recorder captures every action an agent emits. The sink runs on the
// agent's goroutine; read Actions only after the host has returned.
type Recorder[A any] struct {
	Actions []A
}

func (r *Recorder[A]) Sink() loop.Sink[A] {
	return func(action A) error {
		r.Actions = append(r.Actions, action)
		return nil
	}
}
