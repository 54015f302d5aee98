package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/types"
)

// Candidate pool and result bounds.
const (
	DefaultLimit  = 20
	MaxCandidates = 150
)

// JobStore provides the bounded candidate pool and job embedding writeback.
// ListCandidates must return jobs ordered by recency (most recently seen
// active first); that order is the ranking tie-break.
type JobStore interface {
	ListCandidates(ctx context.Context, prefs *types.Preferences, limit int) ([]types.JobRecord, error)
	JobEmbeddingWriter
}

// ProfileStore loads profiles and persists lazily computed résumé
// embeddings. GetProfile returns (nil, nil) when no profile exists.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	UpdateResumeEmbedding(ctx context.Context, userID uuid.UUID, vector []float32) error
}

// GuestRequest is a recommendation request without a stored profile.
type GuestRequest struct {
	Preferences    types.Preferences `json:"preferences"`
	ResumeSnippets []string          `json:"resume_snippets,omitempty"`
	Limit          int               `json:"limit,omitempty"`
}

// Service produces ranked job recommendations for users and guests.
type Service struct {
	jobs     JobStore
	profiles ProfileStore
	embedder embedding.Embedder
	ranker   *Ranker
	logger   *zap.Logger
}

// NewService wires a recommendation service over the given stores and
// embedding provider.
func NewService(jobs JobStore, profiles ProfileStore, embedder embedding.Embedder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		jobs:     jobs,
		profiles: profiles,
		embedder: embedder,
		ranker:   NewRanker(embedder, jobs, logger),
		logger:   logger,
	}
}

// RecommendForUser ranks the candidate pool for a stored user profile.
// A missing profile or missing preferences yields an empty result rather
// than an error: there is nothing to rank against yet.
func (s *Service) RecommendForUser(ctx context.Context, userID uuid.UUID, limit int) ([]types.RankedEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		s.logger.Info("no profile for user, returning empty recommendations", zap.String("user_id", userID.String()))
		return []types.RankedEntry{}, nil
	}
	if profile.Preferences == nil {
		s.logger.Info("no preferences for user, returning empty recommendations", zap.String("user_id", userID.String()))
		return []types.RankedEntry{}, nil
	}
	if err := profile.Preferences.Validate(); err != nil {
		return nil, err
	}

	resumeVector, err := s.ensureResumeEmbedding(ctx, profile)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListCandidates(ctx, profile.Preferences, MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate jobs: %w", err)
	}
	if len(jobs) == 0 {
		return []types.RankedEntry{}, nil
	}

	ranked := s.ranker.Rank(ctx, jobs, profile.Preferences, profile.Skills, resumeVector)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	s.logger.Info("generated recommendations",
		zap.String("user_id", userID.String()),
		zap.Int("candidates", len(jobs)),
		zap.Int("results", len(ranked)))
	return ranked, nil
}

// RecommendForGuest ranks the candidate pool for an ad-hoc preference set,
// optionally anchored by embedded résumé snippets.
func (s *Service) RecommendForGuest(ctx context.Context, req GuestRequest) ([]types.RankedEntry, error) {
	if err := req.Preferences.Validate(); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	var resumeVector []float32
	if len(req.ResumeSnippets) > 0 {
		vector, err := s.embedText(ctx, strings.Join(req.ResumeSnippets, " \n"))
		if err != nil {
			return nil, err
		}
		resumeVector = vector
	}

	jobs, err := s.jobs.ListCandidates(ctx, &req.Preferences, MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate jobs: %w", err)
	}
	if len(jobs) == 0 {
		return []types.RankedEntry{}, nil
	}

	ranked := s.ranker.Rank(ctx, jobs, &req.Preferences, req.Preferences.Skills, resumeVector)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// ensureResumeEmbedding returns the cached résumé embedding or computes and
// persists a fresh one. The résumé is the subject of the call, so embedding
// failures here propagate instead of degrading.
func (s *Service) ensureResumeEmbedding(ctx context.Context, profile *types.Profile) ([]float32, error) {
	if len(profile.ResumeEmbedding) > 0 {
		return profile.ResumeEmbedding, nil
	}

	vector, err := s.embedText(ctx, profile.Text())
	if err != nil {
		return nil, err
	}
	if vector == nil {
		return nil, nil
	}

	if err := s.profiles.UpdateResumeEmbedding(ctx, profile.UserID, vector); err != nil {
		// The vector is still usable for this call; only the cache write failed.
		s.logger.Warn("failed to cache resume embedding",
			zap.String("user_id", profile.UserID.String()), zap.Error(err))
	}
	profile.ResumeEmbedding = vector
	return vector, nil
}

// embedText embeds one snippet; blank input returns a nil vector, no error.
func (s *Service) embedText(ctx context.Context, text string) ([]float32, error) {
	snippet := strings.TrimSpace(text)
	if snippet == "" {
		return nil, nil
	}
	vectors, err := s.embedder.Embed(ctx, []string{snippet})
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}
	if len(vectors) == 0 {
		return nil, nil
	}
	return vectors[0], nil
}
