package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/jonathan/jobmatch/internal/types"
)

const jobColumns = `id, title, company, COALESCE(description, ''), locations, work_modes,
	categories, levels, skills, salary, COALESCE(url, ''), status, source,
	COALESCE(metadata, '{}'), embedding, embedding_updated_at, created_at, last_seen_active`

// GetJob retrieves one job record. Returns (nil, nil) when it does not exist.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*types.JobRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	job, err := scanJob(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListCandidates returns the bounded candidate pool for the given
// preferences: open jobs matching the declared filters, most recently seen
// active first. The recency order is the ranking tie-break downstream.
func (db *DB) ListCandidates(ctx context.Context, prefs *types.Preferences, limit int) ([]types.JobRecord, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status <> 'closed'`
	args := []any{}
	argNum := 1

	locations := types.NormalizeTerms(prefs.Locations)
	if len(locations) > 0 {
		if prefs.RemoteOK {
			query += fmt.Sprintf(" AND (locations && $%d OR work_modes && ARRAY['remote','hybrid'])", argNum)
		} else {
			query += fmt.Sprintf(" AND locations && $%d", argNum)
		}
		args = append(args, locations)
		argNum++
	} else if prefs.RemoteOK {
		query += " AND work_modes && ARRAY['remote','hybrid']"
	}

	if len(prefs.RoleFamilies) > 0 {
		query += fmt.Sprintf(" AND categories && $%d", argNum)
		args = append(args, prefs.RoleFamilies)
		argNum++
	}
	if len(prefs.SeniorityLevels) > 0 {
		query += fmt.Sprintf(" AND levels && $%d", argNum)
		args = append(args, prefs.SeniorityLevels)
		argNum++
	}
	if len(prefs.IndustriesLike) > 0 {
		query += fmt.Sprintf(" AND metadata->'industry' ?| $%d", argNum)
		args = append(args, prefs.IndustriesLike)
		argNum++
	}
	if len(prefs.CompanySizes) > 0 {
		query += fmt.Sprintf(" AND LOWER(metadata->>'company_size') = ANY($%d)", argNum)
		args = append(args, lowered(prefs.CompanySizes))
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY last_seen_active DESC LIMIT $%d", argNum)
	args = append(args, limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobRecord
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJobEmbedding caches a computed embedding on the job record.
// Full-column overwrite: safe for concurrent duplicate writers.
func (db *DB) UpdateJobEmbedding(ctx context.Context, jobID uuid.UUID, vector []float32) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET embedding = $2, embedding_updated_at = NOW() WHERE id = $1`,
		jobID, pgvector.NewVector(vector))
	if err != nil {
		return fmt.Errorf("failed to update job embedding: %w", err)
	}
	return nil
}

// MarkJobStatus updates a job's lifecycle status (for example "closed"
// once a posting disappears from its source).
func (db *DB) MarkJobStatus(ctx context.Context, jobID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = $2, last_status_change = NOW() WHERE id = $1`,
		jobID, status)
	if err != nil {
		return fmt.Errorf("failed to mark job status: %w", err)
	}
	return nil
}

// scanJob reads one job row. The scan argument order matches jobColumns.
func scanJob(scan func(dest ...any) error) (*types.JobRecord, error) {
	var (
		job         types.JobRecord
		metadataRaw []byte
		emb         *pgvector.Vector
		embAt       *time.Time
	)
	err := scan(
		&job.ID, &job.Title, &job.Company, &job.Description, &job.Locations, &job.WorkModes,
		&job.Categories, &job.Levels, &job.Skills, &job.Salary, &job.URL, &job.Status, &job.Source,
		&metadataRaw, &emb, &embAt, &job.CreatedAt, &job.LastSeenActive,
	)
	if err != nil {
		return nil, err
	}
	if len(metadataRaw) > 0 {
		if err := json.Unmarshal(metadataRaw, &job.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode job metadata: %w", err)
		}
	}
	if emb != nil {
		job.Embedding = emb.Slice()
	}
	job.EmbeddingUpdatedAt = embAt
	return &job, nil
}

func lowered(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
