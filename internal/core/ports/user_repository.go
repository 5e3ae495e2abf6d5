package ports

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user and returns it with its generated id.
	// Returns domain.ErrDuplicateUsername when the username is already taken.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// List returns all users in insertion order.
	List(ctx context.Context) ([]*domain.User, error)
	// FindByID returns the user or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
