package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fitlog/exercise-tracker/internal/api/metrics"
	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// ExerciseHandler handles HTTP requests for exercise logging and log queries.
type ExerciseHandler struct {
	service ports.ExerciseService
}

func NewExerciseHandler(service ports.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{service: service}
}

// Add handles POST /api/users/:userId/exercises.
//
// @Summary      Log an exercise for a user
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        userId  path      string              true  "User id"
// @Param        body    body      addExerciseRequest  true  "Exercise details"
// @Success      201     {object}  exerciseResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/users/{userId}/exercises [post]
func (h *ExerciseHandler) Add(c echo.Context) error {
	var req addExerciseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		date = parsed
	}

	result, err := h.service.Add(c.Request().Context(), ports.AddExerciseInput{
		OwnerID:     c.Param("userId"),
		Description: req.Description,
		Duration:    req.Duration,
		Date:        date,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.ExercisesLoggedTotal.Inc()
	return c.JSON(http.StatusCreated, toExerciseResponse(result))
}

// Log handles GET /api/users/:userId/logs?from&to&limit.
//
// @Summary      Query a user's exercise log
// @Tags         exercises
// @Produce      json
// @Param        userId  path      string  true   "User id"
// @Param        from    query     string  false  "Inclusive lower bound (2006-01-02)"
// @Param        to      query     string  false  "Inclusive upper bound (2006-01-02)"
// @Param        limit   query     int     false  "Maximum number of entries"
// @Success      200     {object}  logResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/users/{userId}/logs [get]
func (h *ExerciseHandler) Log(c echo.Context) error {
	query, err := parseLogQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	timer := prometheus.NewTimer(metrics.LogQueryDuration)
	result, err := h.service.Log(c.Request().Context(), query)
	timer.ObserveDuration()
	if err != nil {
		return h.mapError(c, err)
	}

	metrics.LogQueriesTotal.Inc()
	return c.JSON(http.StatusOK, toLogResponse(result))
}

// parseLogQuery extracts and validates the from/to/limit query parameters.
// Malformed values are rejected, never silently ignored.
func parseLogQuery(c echo.Context) (ports.LogQueryInput, error) {
	query := ports.LogQueryInput{
		OwnerID: c.Param("userId"),
		Limit:   ports.UnboundedLimit,
	}

	if from := c.QueryParam("from"); from != "" {
		parsed, err := domain.ParseDate(from)
		if err != nil {
			return query, err
		}
		query.From = parsed
	}
	if to := c.QueryParam("to"); to != "" {
		parsed, err := domain.ParseDate(to)
		if err != nil {
			return query, err
		}
		query.To = parsed
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return query, fmt.Errorf("%w: limit must be a non-negative integer", domain.ErrInvalidInput)
		}
		query.Limit = n
	}

	return query, nil
}

// mapError renders known domain errors; anything else bubbles up to the
// central HTTP error handler.
func (h *ExerciseHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return err
}
