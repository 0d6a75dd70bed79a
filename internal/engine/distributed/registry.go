// Package distributed keeps track of remote build workers.
package distributed

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/pacforge/internal/core/domain"
)

// DefaultTimeToLive is the default maximum heartbeat age of a worker.
const DefaultTimeToLive = 60 * time.Second

type entry struct {
	worker   domain.Worker
	lastSeen time.Time
}

// Registry is the coordinator-side cache of live workers.
type Registry struct {
	clock clockwork.Clock
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]entry
}

// NewRegistry creates a registry evicting workers not seen for ttl.
// A nil clock uses the real clock.
func NewRegistry(clock clockwork.Clock, ttl time.Duration) *Registry {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if ttl <= 0 {
		ttl = DefaultTimeToLive
	}
	return &Registry{
		clock:   clock,
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// TimeToLive returns the eviction age of the registry.
func (r *Registry) TimeToLive() time.Duration {
	return r.ttl
}

// Workers returns the workers seen within the time to live, sorted by identifier.
func (r *Registry) Workers() []domain.Worker {
	now := r.clock.Now()

	r.mu.Lock()
	workers := make([]domain.Worker, 0, len(r.entries))
	for _, e := range r.entries {
		if now.Sub(e.lastSeen) < r.ttl {
			workers = append(workers, e.worker)
		}
	}
	r.mu.Unlock()

	slices.SortFunc(workers, func(a, b domain.Worker) int {
		return cmp.Compare(a.Identifier, b.Identifier)
	})
	return workers
}

// Update registers the worker or refreshes its last seen time.
func (r *Registry) Update(worker domain.Worker) {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[worker.Identifier] = entry{worker: worker, lastSeen: now}
}

// Remove forgets every worker.
func (r *Registry) Remove() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.entries)
}

// RemoveOne forgets the worker with the given identifier.
func (r *Registry) RemoveOne(identifier string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, identifier)
}
