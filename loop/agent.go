package loop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/birdayz/automat"
)

// Sink consumes one action produced by an agent's machine.
type Sink[A any] func(action A) error

// Agent binds a machine to an input channel and an action sink. The host
// steps the machine once per received input on a goroutine of its own; the
// machine is never touched from anywhere else.
type Agent[I, A any] struct {
	agentName string
	machine   automat.Automaton[I, A]
	inputs    <-chan I
	sink      Sink[A]
}

// NewAgent returns an agent stepping machine with inputs from the channel
// and handing every action to sink.
func NewAgent[I, A any](name string, machine automat.Automaton[I, A], inputs <-chan I, sink Sink[A]) *Agent[I, A] {
	if machine == nil {
		panic("loop: nil machine")
	}
	if inputs == nil {
		panic("loop: nil input channel")
	}
	if sink == nil {
		panic("loop: nil sink")
	}
	return &Agent[I, A]{agentName: name, machine: machine, inputs: inputs, sink: sink}
}

// Name reports the agent's registration name.
func (a *Agent[I, A]) Name() string {
	return a.agentName
}

func (a *Agent[I, A]) run(ctx context.Context, log *slog.Logger, metrics *Metrics) error {
	log.Info("agent started")
	defer log.Info("agent stopped")
	for {
		select {
		case <-ctx.Done():
			return nil
		case input, ok := <-a.inputs:
			if !ok {
				return nil
			}
			action := a.machine.Transition(input)
			if metrics != nil {
				metrics.transitions.WithLabelValues(a.agentName).Inc()
			}
			log.Debug("transition")
			if err := a.sink(action); err != nil {
				if metrics != nil {
					metrics.sinkErrors.WithLabelValues(a.agentName).Inc()
				}
				return fmt.Errorf("agent %q: sink: %w", a.agentName, err)
			}
		}
	}
}
