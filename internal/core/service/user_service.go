package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers a new user. Usernames are unique; a conflicting name
// surfaces as domain.ErrDuplicateUsername.
func (s *UserService) Create(ctx context.Context, username string) (*ports.UserResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")

	return &ports.UserResult{ID: created.ID, Username: created.Username}, nil
}

// List returns all users, exposing only id and username.
func (s *UserService) List(ctx context.Context) ([]ports.UserResult, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	out := make([]ports.UserResult, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserResult{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

// Get returns a single user or domain.ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*ports.UserResult, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UserResult{ID: u.ID, Username: u.Username}, nil
}
