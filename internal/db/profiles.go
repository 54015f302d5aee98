package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"

	"github.com/jonathan/jobmatch/internal/types"
)

// GetProfile retrieves a user's profile. Returns (nil, nil) when the user
// has no profile yet.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var (
		profile        types.Profile
		workRaw        []byte
		educationRaw   []byte
		preferencesRaw []byte
		emb            *pgvector.Vector
		embAt          *time.Time
	)
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, COALESCE(summary, ''), skills, COALESCE(work_experience, '[]'),
		        COALESCE(education, '[]'), COALESCE(resume_text, ''), preferences,
		        resume_embedding, resume_embedding_updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.Summary, &profile.Skills, &workRaw,
		&educationRaw, &profile.ResumeText, &preferencesRaw, &emb, &embAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(workRaw, &profile.WorkExperience); err != nil {
		return nil, fmt.Errorf("failed to decode work experience: %w", err)
	}
	if err := json.Unmarshal(educationRaw, &profile.Education); err != nil {
		return nil, fmt.Errorf("failed to decode education: %w", err)
	}
	if len(preferencesRaw) > 0 {
		var prefs types.Preferences
		if err := json.Unmarshal(preferencesRaw, &prefs); err != nil {
			return nil, fmt.Errorf("failed to decode preferences: %w", err)
		}
		profile.Preferences = &prefs
	}
	if emb != nil {
		profile.ResumeEmbedding = emb.Slice()
	}
	profile.ResumeEmbeddingUpdatedAt = embAt
	return &profile, nil
}

// UpdateResumeEmbedding caches a computed résumé embedding on the profile
// row, creating the row if it does not exist yet. Full-column overwrite:
// safe for concurrent duplicate writers.
func (db *DB) UpdateResumeEmbedding(ctx context.Context, userID uuid.UUID, vector []float32) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, resume_embedding, resume_embedding_updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET resume_embedding = $2, resume_embedding_updated_at = NOW()`,
		userID, pgvector.NewVector(vector))
	if err != nil {
		return fmt.Errorf("failed to update resume embedding: %w", err)
	}
	return nil
}
