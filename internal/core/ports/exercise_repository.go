package ports

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// ExerciseRepository defines persistence operations for exercises.
type ExerciseRepository interface {
	// Create inserts a new exercise and returns it with its generated id.
	Create(ctx context.Context, e *domain.Exercise) (*domain.Exercise, error)
	// ListByOwner returns all exercises belonging to the owner in insertion
	// order.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Exercise, error)
}
