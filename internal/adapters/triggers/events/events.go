// Package events provides a trigger that records package events in storage.
package events

import (
	"context"
	"errors"

	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/core/ports"
	"go.trai.ch/pacforge/internal/engine/triggers"
	"go.trai.ch/zerr"
)

// Identifier is the name the trigger is registered under.
const Identifier = "pacforge.triggers.events.EventsTrigger"

func init() {
	triggers.Register(Identifier, func(env triggers.Environment) (any, error) {
		return New(env)
	})
}

// EventsTrigger records one event per updated or failed package.
type EventsTrigger struct {
	triggers.Base
	repository domain.RepositoryID
	store      ports.EventStore
}

// New creates an events trigger writing to env.Events.
func New(env triggers.Environment) (*EventsTrigger, error) {
	if env.Events == nil {
		return nil, zerr.New("events trigger requires an event store")
	}
	return &EventsTrigger{repository: env.Repository, store: env.Events}, nil
}

// OnResult records the events. All packages are attempted even if one fails.
func (t *EventsTrigger) OnResult(ctx context.Context, result *domain.Result, _ []domain.Package) error {
	var errs []error
	for _, pkg := range result.Success() {
		errs = append(errs, t.insert(ctx, domain.EventPackageUpdated, &pkg, ""))
	}
	for _, pkg := range result.Failed() {
		errs = append(errs, t.insert(ctx, domain.EventPackageUpdateFailed, &pkg, "package update failed"))
	}
	return errors.Join(errs...)
}

func (t *EventsTrigger) insert(ctx context.Context, event string, pkg *domain.Package, message string) error {
	err := t.store.EventInsert(ctx, t.repository, &domain.Event{
		Event:    event,
		ObjectID: pkg.Base,
		Message:  message,
		Data:     map[string]string{"version": pkg.Version},
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to record event"), "base", pkg.Base)
	}
	return nil
}
