// Package repository implements the in-memory activity registry.
package repository

import (
	"context"
	"sync"

	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/model"
	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/roster"
)

// Store provides read/write access to the activity registry.
type Store interface {
	// List returns a deep-copy snapshot of every activity keyed by name.
	List(ctx context.Context) map[string]model.Activity

	// Get returns one activity by exact name.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the named activity's roster.
	// Returns ErrActivityNotFound or roster.ErrAlreadyRegistered.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the named activity's roster.
	// Returns ErrActivityNotFound or roster.ErrNotRegistered.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities in the registry.
	Count(ctx context.Context) int

	// ParticipantCount returns the total number of participants across activities.
	ParticipantCount(ctx context.Context) int

	// SpotsAvailable returns the advisory sum of open spots across activities.
	SpotsAvailable(ctx context.Context) int
}

// Registry is a mutex-guarded map from activity name to record. Mutations are
// single check-then-act steps under the write lock, which keeps the
// no-duplicate roster invariant intact under concurrent requests.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// NewRegistry builds a Registry seeded from the configured dataset.
func NewRegistry(_ context.Context, opts ...Option) (*Registry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	seed := o.seed
	if o.seedFile != "" {
		loaded, err := LoadSeedFile(o.seedFile)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	r := &Registry{activities: make(map[string]*model.Activity, len(seed))}
	for _, a := range seed {
		c := a.Clone()
		r.activities[c.Name] = &c
	}
	return r, nil
}

// List returns a deep-copy snapshot so callers cannot mutate registry state.
func (r *Registry) List(_ context.Context) map[string]model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns one activity by exact, case-sensitive name.
func (r *Registry) Get(_ context.Context, name string) (model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Signup appends email to the named activity's roster. Capacity is advisory
// and deliberately not checked, so an activity can be over-enrolled.
func (r *Registry) Signup(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	updated, err := roster.Add(a.Participants, email)
	if err != nil {
		return err
	}
	a.Participants = updated
	return nil
}

// Unregister removes email from the named activity's roster.
func (r *Registry) Unregister(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	updated, err := roster.Remove(a.Participants, email)
	if err != nil {
		return err
	}
	a.Participants = updated
	return nil
}

// Count returns the number of activities tracked by the registry.
func (r *Registry) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// ParticipantCount returns the total number of participants across activities.
func (r *Registry) ParticipantCount(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, a := range r.activities {
		total += len(a.Participants)
	}
	return total
}

// SpotsAvailable sums the advisory open spots of every activity.
func (r *Registry) SpotsAvailable(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, a := range r.activities {
		total += a.SpotsLeft()
	}
	return total
}
