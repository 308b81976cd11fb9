// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"

	repository "github.com/pandacall/skills-getting-started-with-github-copilot/internal/adapters/repository"
	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/roster"
	"github.com/pandacall/skills-getting-started-with-github-copilot/internal/domain/types"
	"github.com/pandacall/skills-getting-started-with-github-copilot/pkg/logger"
	"github.com/pandacall/skills-getting-started-with-github-copilot/pkg/metrics"
)

// Service wires the activity registry behind the HTTP API dependency surface.
type Service struct {
	mu sync.RWMutex

	registry repository.Store
	seedFile string

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeedFile points the registry at a YAML seed dataset.
func WithSeedFile(path string) Option {
	return func(s *Service) {
		s.seedFile = path
	}
}

// WithRegistry injects a pre-built registry, mainly for tests.
func WithRegistry(r repository.Store) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting activities service...")

	if s.registry == nil {
		reg, err := repository.NewRegistry(ctx, repository.WithSeedFile(s.seedFile))
		if err != nil {
			return err
		}
		s.registry = reg
	}

	s.started = true
	s.updateRegistryMetrics(ctx)
	s.logger.Info(ctx, "activities service started",
		logger.Int("activities", s.registry.Count(ctx)),
		logger.Int("participants", s.registry.ParticipantCount(ctx)),
	)

	return nil
}

// Stop shuts the service down. The registry has no resources beyond process
// memory, so this only flips lifecycle state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "activities service stopped")
}

// ListActivities returns every activity in its wire shape, keyed by name.
func (s *Service) ListActivities(ctx context.Context) map[string]types.Activity {
	listed := s.registry.List(ctx)

	out := make(map[string]types.Activity, len(listed))
	for name, a := range listed {
		out[name] = types.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}
	return out
}

// Signup enrolls email in the named activity.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	if err := s.registry.Signup(ctx, name, email); err != nil {
		metrics.RecordRosterRejection(rejectionReason(err))
		return err
	}

	s.logger.Info(ctx, "signed up student",
		logger.String("activity", name),
		logger.String("email", email),
	)
	metrics.RecordSignup()
	s.updateRegistryMetrics(ctx)
	return nil
}

// Unregister withdraws email from the named activity.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	if err := s.registry.Unregister(ctx, name, email); err != nil {
		metrics.RecordRosterRejection(rejectionReason(err))
		return err
	}

	s.logger.Info(ctx, "unregistered student",
		logger.String("activity", name),
		logger.String("email", email),
	)
	metrics.RecordUnregister()
	s.updateRegistryMetrics(ctx)
	return nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		stats["activities"] = s.registry.Count(ctx)
		stats["participants"] = s.registry.ParticipantCount(ctx)
		stats["spotsAvailable"] = s.registry.SpotsAvailable(ctx)
	}

	return stats
}

// updateRegistryMetrics refreshes the registry gauges after a mutation.
func (s *Service) updateRegistryMetrics(ctx context.Context) {
	metrics.UpdateActivityCount(s.registry.Count(ctx))
	metrics.UpdateParticipantCount(s.registry.ParticipantCount(ctx))
	metrics.UpdateSpotsAvailable(s.registry.SpotsAvailable(ctx))
}

// rejectionReason maps roster/registry errors to a metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, roster.ErrAlreadyRegistered):
		return "already_signed_up"
	case errors.Is(err, roster.ErrNotRegistered):
		return "not_registered"
	default:
		return "unknown"
	}
}
