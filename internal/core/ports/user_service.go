package ports

import "context"

// UserResult is the view of a user exposed by the service layer.
type UserResult struct {
	ID       string
	Username string
}

// UserService defines use-case operations for users.
type UserService interface {
	Create(ctx context.Context, username string) (*UserResult, error)
	List(ctx context.Context) ([]UserResult, error)
	Get(ctx context.Context, id string) (*UserResult, error)
}
