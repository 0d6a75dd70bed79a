// Package triggers loads and dispatches the hooks run around repository updates.
package triggers

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
)

// Trigger is a hook invoked at the lifecycle points of an update run.
type Trigger interface {
	// OnStart is called once before any package is processed.
	OnStart(ctx context.Context) error

	// OnResult is called with the outcome of the run and the packages it covered.
	OnResult(ctx context.Context, result *domain.Result, packages []domain.Package) error

	// OnStop is called once when the command finishes.
	OnStop(ctx context.Context) error
}

// Base implements Trigger with no-op methods. Embed it to implement only the
// hooks a trigger needs. A bare Base is not a valid trigger.
type Base struct{}

// OnStart implements Trigger.
func (Base) OnStart(context.Context) error { return nil }

// OnResult implements Trigger.
func (Base) OnResult(context.Context, *domain.Result, []domain.Package) error { return nil }

// OnStop implements Trigger.
func (Base) OnStop(context.Context) error { return nil }

// Environment carries everything a trigger may need at construction.
type Environment struct {
	Repository    domain.RepositoryID
	Configuration *domain.Configuration
	Logger        ports.Logger
	Events        ports.EventStore
	Registerer    prometheus.Registerer

	// Options are the trigger-specific settings from the configuration.
	Options map[string]string
}

// Factory constructs a trigger. It returns any so that loading can reject
// values that do not implement Trigger.
type Factory func(env Environment) (any, error)
