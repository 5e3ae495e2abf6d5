package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUsername = errors.New("username already taken")
var ErrInvalidInput = errors.New("invalid input")

// User is an account that owns a log of exercises.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}
