package triggers

import (
	"context"
	"fmt"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline dispatches lifecycle events to triggers in load order.
// A failing trigger is logged and does not stop the others.
type Pipeline struct {
	logger   ports.Logger
	triggers []Trigger
}

// NewPipeline creates a pipeline over the given triggers.
func NewPipeline(logger ports.Logger, triggers ...Trigger) *Pipeline {
	return &Pipeline{logger: logger, triggers: triggers}
}

// Len returns the number of loaded triggers.
func (p *Pipeline) Len() int {
	return len(p.triggers)
}

// OnStart calls OnStart on every trigger.
func (p *Pipeline) OnStart(ctx context.Context) {
	p.dispatch("start", func(t Trigger) error {
		return t.OnStart(ctx)
	})
}

// Process calls OnResult on every trigger.
func (p *Pipeline) Process(ctx context.Context, result *domain.Result, packages []domain.Package) {
	p.dispatch("result", func(t Trigger) error {
		return t.OnResult(ctx, result, packages)
	})
}

// OnStop calls OnStop on every trigger.
func (p *Pipeline) OnStop(ctx context.Context) {
	p.dispatch("stop", func(t Trigger) error {
		return t.OnStop(ctx)
	})
}

func (p *Pipeline) dispatch(event string, call func(Trigger) error) {
	for _, t := range p.triggers {
		if err := p.invoke(t, call); err != nil {
			err = zerr.With(zerr.With(zerr.Wrap(err, "trigger failed"), "event", event), "trigger", fmt.Sprintf("%T", t))
			p.logger.Error(err)
		}
	}
}

func (p *Pipeline) invoke(t Trigger, call func(Trigger) error) (err error) {
	defer zerr.Defer(func(perr error) {
		err = perr
	})
	return call(t)
}
