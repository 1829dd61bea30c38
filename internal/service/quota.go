package service

import (
	"context"
	"errors"
	"log"
	"time"

	apperrors "propwrite/internal/errors"
	"propwrite/internal/repository"
)

// QuotaTracker enforces the per-user daily generation ceiling. The stored
// counter resets lazily: a last_generation_date older than today means an
// effective count of zero, no scheduled reset job involved.
type QuotaTracker struct {
	profiles repository.ProfileRepository
	limit    int
}

// NewQuotaTracker creates a tracker with the given daily ceiling.
func NewQuotaTracker(profiles repository.ProfileRepository, limit int) *QuotaTracker {
	return &QuotaTracker{profiles: profiles, limit: limit}
}

// Today returns the current UTC calendar date in ISO form, no time component.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Admit decides whether one more generation is permitted for the user. It
// returns the effective current count and today's date for the later Commit
// call. A missing or unreadable profile aborts with ErrProfileUnavailable.
func (t *QuotaTracker) Admit(ctx context.Context, userID uint) (current int, today string, err error) {
	profile, err := t.profiles.FindByUserID(ctx, userID)
	if err != nil {
		log.Printf("quota: fetch profile for user %d: %v", userID, err)
		return 0, "", apperrors.ErrProfileUnavailable
	}

	today = Today()
	current = profile.DailyGenerationsCount
	if profile.LastGenerationDate != today {
		current = 0
	}

	if current >= t.limit {
		return current, today, &apperrors.QuotaExceededError{Limit: t.limit}
	}
	return current, today, nil
}

// Commit records one more generation for the user. Called only after the
// proposal has been generated and saved. A failed write is logged and
// swallowed: bookkeeping must never discard already-produced work.
func (t *QuotaTracker) Commit(ctx context.Context, userID uint, current int, today string) {
	if err := t.profiles.UpdateQuota(ctx, userID, current+1, today); err != nil {
		log.Printf("quota: update count for user %d: %v", userID, err)
	}
}

// Remaining reports how many generations the user has left today.
func (t *QuotaTracker) Remaining(ctx context.Context, userID uint) (int, error) {
	current, _, err := t.Admit(ctx, userID)
	if err != nil {
		var quotaErr *apperrors.QuotaExceededError
		if errors.As(err, &quotaErr) {
			return 0, nil
		}
		return 0, err
	}
	return t.limit - current, nil
}

// Limit returns the configured daily ceiling.
func (t *QuotaTracker) Limit() int {
	return t.limit
}
