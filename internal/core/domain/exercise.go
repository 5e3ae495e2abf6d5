package domain

import "time"

// Exercise is a single logged activity. Every exercise belongs to exactly one
// user; entries are append-only and never updated or deleted.
type Exercise struct {
	ID          string
	OwnerID     string
	Description string
	Duration    int // minutes
	Date        time.Time
	CreatedAt   time.Time
}
