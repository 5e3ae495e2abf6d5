package handler

import (
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// --- Service result → HTTP response ---

func toUserResponse(u *ports.UserResult) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

func toUserListResponse(users []ports.UserResult) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = userResponse{ID: u.ID, Username: u.Username}
	}
	return out
}

func toExerciseResponse(r *ports.ExerciseResult) exerciseResponse {
	return exerciseResponse{
		ID:          r.ID,
		Username:    r.Username,
		Description: r.Description,
		Duration:    r.Duration,
		Date:        r.Date,
	}
}

func toLogResponse(r *ports.LogResult) logResponse {
	entries := make([]logEntryResponse, len(r.Log))
	for i, e := range r.Log {
		entries[i] = logEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		}
	}
	return logResponse{
		ID:       r.ID,
		Username: r.Username,
		Count:    r.Count,
		Log:      entries,
	}
}
