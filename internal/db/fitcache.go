package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobmatch/internal/fit"
)

// FitCache implements fit.Store on top of the user_jobs link table, storing
// the cached fit result as JSON alongside the user's saved-job state.
type FitCache struct {
	db *DB
}

// NewFitCache returns a PostgreSQL-backed fit store.
func NewFitCache(db *DB) *FitCache {
	return &FitCache{db: db}
}

// Get returns the cached fit result for (user, job), or (nil, nil) when no
// entry exists. Stale entries are returned as-is; freshness is the fit
// service's concern.
func (c *FitCache) Get(ctx context.Context, userID, jobID uuid.UUID) (*fit.Result, error) {
	var payload []byte
	err := c.db.pool.QueryRow(ctx,
		`SELECT fit_cache FROM user_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fit cache entry: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	var result fit.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode fit cache entry: %w", err)
	}
	return &result, nil
}

// Put upserts the cached fit result for (user, job), creating the link row
// when the user has no saved state for the job yet.
func (c *FitCache) Put(ctx context.Context, userID, jobID uuid.UUID, result fit.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode fit cache entry: %w", err)
	}
	_, err = c.db.pool.Exec(ctx,
		`INSERT INTO user_jobs (user_id, job_id, fit_cache, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id, job_id) DO UPDATE SET fit_cache = $3, updated_at = NOW()`,
		userID, jobID, payload)
	if err != nil {
		return fmt.Errorf("failed to put fit cache entry: %w", err)
	}
	return nil
}
