package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
	"github.com/fitlog/exercise-tracker/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubExerciseRepo struct {
	byOwner   map[string][]*domain.Exercise
	nextID    int
	createErr error
	listCalls int
}

func newStubExerciseRepo() *stubExerciseRepo {
	return &stubExerciseRepo{byOwner: make(map[string][]*domain.Exercise)}
}

func (r *stubExerciseRepo) Create(_ context.Context, e *domain.Exercise) (*domain.Exercise, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *e
	clone.ID = fmt.Sprintf("e%d", r.nextID)
	r.byOwner[e.OwnerID] = append(r.byOwner[e.OwnerID], &clone)
	return &clone, nil
}

func (r *stubExerciseRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Exercise, error) {
	r.listCalls++
	out := make([]*domain.Exercise, 0, len(r.byOwner[ownerID]))
	for _, e := range r.byOwner[ownerID] {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

type stubLogCache struct {
	entries       map[string][]*domain.Exercise
	getErr        error
	setErr        error
	invalidateErr error
	invalidated   []string
}

func newStubLogCache() *stubLogCache {
	return &stubLogCache{entries: make(map[string][]*domain.Exercise)}
}

func (c *stubLogCache) Get(_ context.Context, ownerID string) ([]*domain.Exercise, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	list, ok := c.entries[ownerID]
	return list, ok, nil
}

func (c *stubLogCache) Set(_ context.Context, ownerID string, exercises []*domain.Exercise) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[ownerID] = exercises
	return nil
}

func (c *stubLogCache) Invalidate(_ context.Context, ownerID string) error {
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	c.invalidated = append(c.invalidated, ownerID)
	delete(c.entries, ownerID)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestExerciseService(t *testing.T) (*ExerciseService, *stubUserRepo, *stubExerciseRepo, *stubLogCache) {
	t.Helper()
	users := newStubUserRepo()
	exercises := newStubExerciseRepo()
	cache := newStubLogCache()
	return NewExerciseService(users, exercises, cache, discardLogger), users, exercises, cache
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func seedExercise(repo *stubExerciseRepo, ownerID, description string, date time.Time) {
	repo.nextID++
	repo.byOwner[ownerID] = append(repo.byOwner[ownerID], &domain.Exercise{
		ID:          fmt.Sprintf("e%d", repo.nextID),
		OwnerID:     ownerID,
		Description: description,
		Duration:    30,
		Date:        date,
		CreatedAt:   date,
	})
}

func unboundedQuery(ownerID string) ports.LogQueryInput {
	return ports.LogQueryInput{OwnerID: ownerID, Limit: ports.UnboundedLimit}
}

// ---------------------------------------------------------------------------
// Add tests
// ---------------------------------------------------------------------------

func TestExerciseService_Add_Success(t *testing.T) {
	svc, users, _, _ := newTestExerciseService(t)
	users.seed("u1", "alice")

	result, err := svc.Add(context.Background(), ports.AddExerciseInput{
		OwnerID:     "u1",
		Description: "run",
		Duration:    30,
		Date:        day(2024, time.January, 5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != "u1" {
		t.Errorf("expected owner id %q, got %q", "u1", result.ID)
	}
	if result.Username != "alice" {
		t.Errorf("expected username %q, got %q", "alice", result.Username)
	}
	if result.Date != "Fri Jan 05 2024" {
		t.Errorf("expected date %q, got %q", "Fri Jan 05 2024", result.Date)
	}
}

func TestExerciseService_Add_DefaultsDateToNow(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")

	before := time.Now().UTC()
	result, err := svc.Add(context.Background(), ports.AddExerciseInput{
		OwnerID:     "u1",
		Description: "swim",
		Duration:    45,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Date != domain.FormatDate(before) {
		t.Errorf("expected today's date %q, got %q", domain.FormatDate(before), result.Date)
	}
	stored := exercises.byOwner["u1"][0]
	if stored.Date.Before(before.Add(-time.Minute)) {
		t.Errorf("stored date should be close to now, got %v", stored.Date)
	}
}

func TestExerciseService_Add_UnknownOwner_NoPartialWrite(t *testing.T) {
	svc, _, exercises, _ := newTestExerciseService(t)

	_, err := svc.Add(context.Background(), ports.AddExerciseInput{
		OwnerID:     "missing",
		Description: "run",
		Duration:    30,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(exercises.byOwner) != 0 {
		t.Error("no exercise may be written for a missing user")
	}
}

func TestExerciseService_Add_InvalidInput(t *testing.T) {
	svc, users, _, _ := newTestExerciseService(t)
	users.seed("u1", "alice")

	cases := []struct {
		name  string
		input ports.AddExerciseInput
	}{
		{"empty description", ports.AddExerciseInput{OwnerID: "u1", Duration: 30}},
		{"zero duration", ports.AddExerciseInput{OwnerID: "u1", Description: "run"}},
		{"negative duration", ports.AddExerciseInput{OwnerID: "u1", Description: "run", Duration: -5}},
	}
	for _, tc := range cases {
		_, err := svc.Add(context.Background(), tc.input)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestExerciseService_Add_InvalidatesCache(t *testing.T) {
	svc, users, _, cache := newTestExerciseService(t)
	users.seed("u1", "alice")
	cache.entries["u1"] = []*domain.Exercise{}

	if _, err := svc.Add(context.Background(), ports.AddExerciseInput{
		OwnerID: "u1", Description: "run", Duration: 30,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "u1" {
		t.Errorf("expected cache invalidation for u1, got %v", cache.invalidated)
	}
}

func TestExerciseService_Add_CacheErrorIsNonFatal(t *testing.T) {
	svc, users, _, cache := newTestExerciseService(t)
	users.seed("u1", "alice")
	cache.invalidateErr = errors.New("redis down")

	if _, err := svc.Add(context.Background(), ports.AddExerciseInput{
		OwnerID: "u1", Description: "run", Duration: 30,
	}); err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Log query tests
// ---------------------------------------------------------------------------

func TestExerciseService_Log_InclusiveBounds(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	seedExercise(exercises, "u1", "before", day(2023, time.December, 31))
	seedExercise(exercises, "u1", "at-from", day(2024, time.January, 1))
	seedExercise(exercises, "u1", "inside", day(2024, time.January, 5))
	seedExercise(exercises, "u1", "at-to", day(2024, time.January, 10))
	seedExercise(exercises, "u1", "after", day(2024, time.January, 11))

	q := unboundedQuery("u1")
	q.From = day(2024, time.January, 1)
	q.To = day(2024, time.January, 10)

	result, err := svc.Log(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 3 {
		t.Fatalf("expected count 3, got %d", result.Count)
	}
	for i, want := range []string{"at-from", "inside", "at-to"} {
		if result.Log[i].Description != want {
			t.Errorf("log[%d]: expected %q, got %q", i, want, result.Log[i].Description)
		}
	}
}

func TestExerciseService_Log_DefaultRange(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	seedExercise(exercises, "u1", "old", day(1999, time.June, 1))
	seedExercise(exercises, "u1", "recent", time.Now().UTC())

	result, err := svc.Log(context.Background(), unboundedQuery("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 2 {
		t.Errorf("default range must include everything up to now, got count %d", result.Count)
	}
}

func TestExerciseService_Log_LimitTruncates(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	for i := 1; i <= 5; i++ {
		seedExercise(exercises, "u1", fmt.Sprintf("ex%d", i), day(2024, time.January, i))
	}

	q := unboundedQuery("u1")
	q.Limit = 2

	result, err := svc.Log(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 2 || len(result.Log) != 2 {
		t.Fatalf("expected 2 entries, got count=%d len=%d", result.Count, len(result.Log))
	}
	// First N in insertion order, not an arbitrary subset.
	if result.Log[0].Description != "ex1" || result.Log[1].Description != "ex2" {
		t.Errorf("expected first two entries, got %q, %q", result.Log[0].Description, result.Log[1].Description)
	}
}

func TestExerciseService_Log_LimitZeroYieldsEmptyLog(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	seedExercise(exercises, "u1", "run", day(2024, time.January, 5))

	q := unboundedQuery("u1")
	q.Limit = 0

	result, err := svc.Log(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("limit=0 must yield count 0, got %d", result.Count)
	}
	if len(result.Log) != 0 {
		t.Errorf("limit=0 must yield an empty log, got %d entries", len(result.Log))
	}
}

func TestExerciseService_Log_FromAfterTo(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	seedExercise(exercises, "u1", "run", day(2024, time.January, 5))

	q := unboundedQuery("u1")
	q.From = day(2024, time.February, 1)
	q.To = day(2024, time.January, 1)

	result, err := svc.Log(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("inverted range must yield empty log, got count %d", result.Count)
	}
}

func TestExerciseService_Log_CountEqualsLen(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	for i := 1; i <= 7; i++ {
		seedExercise(exercises, "u1", fmt.Sprintf("ex%d", i), day(2024, time.January, i))
	}

	for _, limit := range []int{ports.UnboundedLimit, 0, 3, 100} {
		q := unboundedQuery("u1")
		q.Limit = limit
		result, err := svc.Log(context.Background(), q)
		if err != nil {
			t.Fatalf("limit=%d: unexpected error: %v", limit, err)
		}
		if result.Count != len(result.Log) {
			t.Errorf("limit=%d: count %d != len(log) %d", limit, result.Count, len(result.Log))
		}
	}
}

func TestExerciseService_Log_PreservesInsertionOrder(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	// Inserted out of date order on purpose.
	seedExercise(exercises, "u1", "third", day(2024, time.March, 1))
	seedExercise(exercises, "u1", "first", day(2024, time.January, 1))
	seedExercise(exercises, "u1", "second", day(2024, time.February, 1))

	result, err := svc.Log(context.Background(), unboundedQuery("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"third", "first", "second"} {
		if result.Log[i].Description != want {
			t.Errorf("log[%d]: expected %q, got %q (log must not be re-sorted by date)", i, want, result.Log[i].Description)
		}
	}
}

func TestExerciseService_Log_RoundTripCalendarDate(t *testing.T) {
	svc, users, exercises, _ := newTestExerciseService(t)
	users.seed("u1", "alice")
	// Logged with a time-of-day; the log must still report the calendar date.
	seedExercise(exercises, "u1", "run", time.Date(2024, time.January, 5, 22, 15, 0, 0, time.UTC))

	q := unboundedQuery("u1")
	q.From = day(2024, time.January, 1)
	q.To = day(2024, time.January, 10)

	result, err := svc.Log(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("expected 1 entry, got %d", result.Count)
	}
	if result.Log[0].Date != "Fri Jan 05 2024" {
		t.Errorf("expected date %q, got %q", "Fri Jan 05 2024", result.Log[0].Date)
	}
}

func TestExerciseService_Log_UnknownOwner(t *testing.T) {
	svc, _, _, _ := newTestExerciseService(t)

	_, err := svc.Log(context.Background(), unboundedQuery("missing"))
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestExerciseService_Log_ServesFromCache(t *testing.T) {
	svc, users, exercises, cache := newTestExerciseService(t)
	users.seed("u1", "alice")
	cache.entries["u1"] = []*domain.Exercise{
		{ID: "e1", OwnerID: "u1", Description: "cached-run", Duration: 30, Date: day(2024, time.January, 5)},
	}

	result, err := svc.Log(context.Background(), unboundedQuery("u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exercises.listCalls != 0 {
		t.Errorf("expected repo to be skipped on cache hit, got %d calls", exercises.listCalls)
	}
	if result.Count != 1 || result.Log[0].Description != "cached-run" {
		t.Errorf("unexpected result from cache: %+v", result)
	}
}

func TestExerciseService_Log_PopulatesCacheOnMiss(t *testing.T) {
	svc, users, exercises, cache := newTestExerciseService(t)
	users.seed("u1", "alice")
	seedExercise(exercises, "u1", "run", day(2024, time.January, 5))

	if _, err := svc.Log(context.Background(), unboundedQuery("u1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.entries["u1"]; !ok {
		t.Error("expected cache to be populated after a miss")
	}
}

func TestExerciseService_Log_CacheErrorFallsBackToStore(t *testing.T) {
	svc, users, exercises, cache := newTestExerciseService(t)
	users.seed("u1", "alice")
	seedExercise(exercises, "u1", "run", day(2024, time.January, 5))
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")

	result, err := svc.Log(context.Background(), unboundedQuery("u1"))
	if err != nil {
		t.Fatalf("cache failure must not fail the query: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("expected 1 entry from store fallback, got %d", result.Count)
	}
}
