package ports

import (
	"context"
	"time"
)

// UnboundedLimit marks a log query with no result-count limit. A limit of 0
// is a valid (empty) query and must be distinguished from an absent one.
const UnboundedLimit = -1

// AddExerciseInput carries all data needed to log an exercise.
type AddExerciseInput struct {
	OwnerID     string
	Description string
	Duration    int
	// Date is the exercise date; the zero value means "now" (server clock).
	Date time.Time
}

// ExerciseResult is returned after logging an exercise. ID is the owner's id,
// mirroring the response contract of the exercises endpoint.
type ExerciseResult struct {
	ID          string
	Username    string
	Description string
	Duration    int
	Date        string
}

// LogQueryInput carries the parameters of a log query.
type LogQueryInput struct {
	OwnerID string
	// From is the inclusive lower bound; zero means unbounded.
	From time.Time
	// To is the inclusive upper bound; zero means "now" at query time.
	To time.Time
	// Limit caps the result count; UnboundedLimit means no cap.
	Limit int
}

// LogEntry is a single exercise in a log response, date rendered as a plain
// calendar-date string.
type LogEntry struct {
	Description string
	Duration    int
	Date        string
}

// LogResult is returned by a log query. Count always equals len(Log).
type LogResult struct {
	ID       string
	Username string
	Count    int
	Log      []LogEntry
}

// ExerciseService defines use-case operations for exercise logs.
type ExerciseService interface {
	Add(ctx context.Context, input AddExerciseInput) (*ExerciseResult, error)
	Log(ctx context.Context, input LogQueryInput) (*LogResult, error)
}
