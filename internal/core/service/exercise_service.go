package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// LogCache abstracts the per-user exercise-list cache (Redis). Cache failures
// are never fatal to a request.
type LogCache interface {
	// Get returns the cached list and whether it was present.
	Get(ctx context.Context, ownerID string) ([]*domain.Exercise, bool, error)
	Set(ctx context.Context, ownerID string, exercises []*domain.Exercise) error
	Invalidate(ctx context.Context, ownerID string) error
}

type ExerciseService struct {
	users     ports.UserRepository
	exercises ports.ExerciseRepository
	cache     LogCache
	logger    zerolog.Logger
}

func NewExerciseService(
	users ports.UserRepository,
	exercises ports.ExerciseRepository,
	cache LogCache,
	logger zerolog.Logger,
) *ExerciseService {
	return &ExerciseService{users: users, exercises: exercises, cache: cache, logger: logger}
}

// Add logs an exercise for an existing user. The owner is resolved before any
// write, so a missing user can never leave a partial exercise behind.
func (s *ExerciseService) Add(ctx context.Context, input ports.AddExerciseInput) (*ports.ExerciseResult, error) {
	owner, err := s.users.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if input.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of minutes", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	created, err := s.exercises.Create(ctx, &domain.Exercise{
		OwnerID:     owner.ID,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        date,
		CreatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", owner.ID).Msg("failed to log exercise")
		return nil, err
	}

	if cacheErr := s.cache.Invalidate(ctx, owner.ID); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Str("user_id", owner.ID).Msg("failed to invalidate log cache")
	}

	s.logger.Info().
		Str("user_id", owner.ID).
		Str("description", created.Description).
		Int("duration", created.Duration).
		Msg("exercise logged")

	return &ports.ExerciseResult{
		ID:          owner.ID,
		Username:    owner.Username,
		Description: created.Description,
		Duration:    created.Duration,
		Date:        domain.FormatDate(created.Date),
	}, nil
}

// Log returns the owner's exercise log filtered to the inclusive [From, To]
// calendar-date range and truncated to the first Limit entries. Insertion
// order is preserved; entries are never re-sorted by date.
func (s *ExerciseService) Log(ctx context.Context, input ports.LogQueryInput) (*ports.LogResult, error) {
	owner, err := s.users.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	all, err := s.loadExercises(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	to := input.To
	if to.IsZero() {
		to = time.Now().UTC()
	}

	entries := make([]ports.LogEntry, 0, len(all))
	for _, e := range all {
		if !domain.WithinRange(e.Date, input.From, to) {
			continue
		}
		if input.Limit != ports.UnboundedLimit && len(entries) >= input.Limit {
			break
		}
		entries = append(entries, ports.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        domain.FormatDate(e.Date),
		})
	}

	return &ports.LogResult{
		ID:       owner.ID,
		Username: owner.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}

// loadExercises fetches the owner's full list, preferring the cache. Cache
// errors are logged and the store is consulted instead.
func (s *ExerciseService) loadExercises(ctx context.Context, ownerID string) ([]*domain.Exercise, error) {
	cached, ok, err := s.cache.Get(ctx, ownerID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", ownerID).Msg("log cache read failed")
	} else if ok {
		return cached, nil
	}

	all, err := s.exercises.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", ownerID).Msg("failed to list exercises")
		return nil, err
	}

	if cacheErr := s.cache.Set(ctx, ownerID, all); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Str("user_id", ownerID).Msg("log cache write failed")
	}
	return all, nil
}
