// Package loop drives automat machines from input channels. A Host owns a
// set of named agents and runs each on a goroutine of its own, preserving
// the rule that exactly one caller transitions a machine at a time.
package loop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAgentExists = errors.New("agent exists already")
	ErrNilAgent    = errors.New("nil agent")
	ErrNoAgents    = errors.New("host has no agents")
)

// runner is the type-erased view the host keeps of its agents.
type runner interface {
	Name() string
	run(ctx context.Context, log *slog.Logger, metrics *Metrics) error
}

// Host runs registered agents until their inputs are exhausted or the run
// context is canceled.
type Host struct {
	log     *slog.Logger
	metrics *Metrics

	agents []runner
	names  map[string]struct{}
}

// New creates a host. Without options it logs nowhere and records no
// metrics.
func New(opts ...Option) *Host {
	h := &Host{
		log:   NullLogger(),
		names: map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds an agent under its name.
func Register[I, A any](h *Host, agent *Agent[I, A]) error {
	if agent == nil {
		return ErrNilAgent
	}
	if _, ok := h.names[agent.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrAgentExists, agent.Name())
	}
	h.names[agent.Name()] = struct{}{}
	h.agents = append(h.agents, agent)
	return nil
}

// MustRegister adds an agent under its name, panicking on registration
// errors.
func MustRegister[I, A any](h *Host, agent *Agent[I, A]) {
	if err := Register(h, agent); err != nil {
		panic(err)
	}
}

// Run blocks until every agent has stopped: an agent stops when its input
// channel closes, when the context is canceled, or when its sink fails. The
// first sink failure cancels the remaining agents; the errors of all agents
// are combined into the returned error.
func (h *Host) Run(ctx context.Context) error {
	if len(h.agents) == 0 {
		return ErrNoAgents
	}
	grp, ctx := errgroup.WithContext(ctx)
	errs := make([]error, len(h.agents))
	for i, agent := range h.agents {
		grp.Go(func() error {
			errs[i] = agent.run(ctx, h.log.With("agent", agent.Name()), h.metrics)
			return errs[i]
		})
	}
	_ = grp.Wait()

	var err error
	for _, e := range errs {
		err = multierr.Append(err, e)
	}
	return err
}
