// Package fit computes and caches per-(user, job) résumé fit scores:
// a blend of résumé/job embedding similarity and direct skill overlap,
// cached with a 24 hour time-to-live.
package fit

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/types"
)

// CacheTTL is how long a cached fit result stays fresh. Entries older than
// this are treated as absent and recomputed; they are never deleted eagerly.
const CacheTTL = 24 * time.Hour

// Blend weights of the two fit signals.
const (
	similarityShare = 60.0
	overlapShare    = 40.0
)

// summaryLimit caps the human-readable summary string.
const summaryLimit = 400

// maxSummaryGaps bounds how many gap skills the summary names.
const maxSummaryGaps = 5

// JobSource loads job records and persists lazily computed job embeddings.
// GetJob returns (nil, nil) when the job does not exist.
type JobSource interface {
	GetJob(ctx context.Context, jobID uuid.UUID) (*types.JobRecord, error)
	UpdateJobEmbedding(ctx context.Context, jobID uuid.UUID, vector []float32) error
}

// ProfileSource loads profiles and persists lazily computed résumé
// embeddings. GetProfile returns (nil, nil) when no profile exists.
type ProfileSource interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	UpdateResumeEmbedding(ctx context.Context, userID uuid.UUID, vector []float32) error
}

// Service computes fit results on cache miss and serves them on hit.
type Service struct {
	jobs     JobSource
	profiles ProfileSource
	store    Store
	embedder embedding.Embedder
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a fit service over the given stores and embedder.
func NewService(jobs JobSource, profiles ProfileSource, store Store, embedder embedding.Embedder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		jobs:     jobs,
		profiles: profiles,
		store:    store,
		embedder: embedder,
		logger:   logger,
		now:      time.Now,
	}
}

// GetOrCompute returns the cached fit result for (user, job) when it is
// younger than CacheTTL, otherwise recomputes and upserts it with a fresh
// UpdatedAt. A missing job yields NotFoundError, a missing profile
// ProfileMissingError; neither is retried here.
func (s *Service) GetOrCompute(ctx context.Context, userID, jobID uuid.UUID) (*Result, error) {
	cached, err := s.store.Get(ctx, userID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to read fit cache: %w", err)
	}
	if cached != nil {
		age := s.now().UTC().Sub(cached.UpdatedAt)
		if age < CacheTTL {
			s.logger.Debug("serving cached fit result",
				zap.String("user_id", userID.String()),
				zap.String("job_id", jobID.String()),
				zap.Duration("age", age))
			return cached, nil
		}
	}

	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, &NotFoundError{JobID: jobID}
	}

	result, err := s.compute(ctx, userID, job)
	if err != nil {
		return nil, err
	}

	result.UpdatedAt = s.now().UTC()
	if err := s.store.Put(ctx, userID, jobID, *result); err != nil {
		return nil, fmt.Errorf("failed to write fit cache: %w", err)
	}
	return result, nil
}

// compute runs the two-signal fit computation against a loaded job.
func (s *Service) compute(ctx context.Context, userID uuid.UUID, job *types.JobRecord) (*Result, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, &ProfileMissingError{UserID: userID}
	}

	resumeVector, err := s.ensureResumeEmbedding(ctx, profile)
	if err != nil {
		return nil, err
	}
	jobVector, err := s.ensureJobEmbedding(ctx, job)
	if err != nil {
		return nil, err
	}

	similarity := 0.0
	if len(resumeVector) > 0 && len(jobVector) > 0 {
		similarity = math.Max(0.0, embedding.CosineSimilarity(resumeVector, jobVector))
	} else {
		s.logger.Warn("missing embeddings for fit similarity",
			zap.Bool("resume_vector", len(resumeVector) > 0),
			zap.Bool("job_vector", len(jobVector) > 0))
	}

	profileSkills := types.NormalizeTerms(profile.Skills)
	jobSkills := types.NormalizeTerms(job.Skills)
	matched, gaps := skillOverlap(profileSkills, jobSkills)

	matchRatio := 0.0
	if len(jobSkills) > 0 {
		matchRatio = float64(len(matched)) / float64(len(jobSkills))
	}

	score := int(math.Round(similarity*similarityShare + matchRatio*overlapShare))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return &Result{
		Score:   score,
		Summary: buildSummary(similarity, matched, gaps),
		Matched: matched,
		Gaps:    gaps,
	}, nil
}

// skillOverlap splits job skills into those present in the profile (matched,
// profile casing) and those absent (gaps, job casing), both sorted.
func skillOverlap(profileSkills, jobSkills []string) (matched, gaps []string) {
	jobSet := make(map[string]string, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[strings.ToLower(skill)] = skill
	}

	matched = []string{}
	gaps = []string{}
	matchedKeys := make(map[string]bool, len(profileSkills))
	for _, skill := range profileSkills {
		key := strings.ToLower(skill)
		if _, ok := jobSet[key]; ok {
			matched = append(matched, skill)
			matchedKeys[key] = true
		}
	}
	for key, skill := range jobSet {
		if !matchedKeys[key] {
			gaps = append(gaps, skill)
		}
	}

	sort.Strings(matched)
	sort.Strings(gaps)
	return matched, gaps
}

func buildSummary(similarity float64, matched, gaps []string) string {
	var bits []string
	if similarity > 0 {
		bits = append(bits, fmt.Sprintf("Overall similarity %d%%", int(similarity*100)))
	}
	if len(matched) > 0 {
		bits = append(bits, "Matched skills: "+strings.Join(matched, ", "))
	}
	if len(gaps) > 0 {
		shown := gaps
		if len(shown) > maxSummaryGaps {
			shown = shown[:maxSummaryGaps]
		}
		bits = append(bits, "Consider highlighting: "+strings.Join(shown, ", "))
	}
	if len(bits) == 0 {
		bits = append(bits, "No direct overlap detected; tailor your resume to highlight relevant skills.")
	}

	summary := strings.Join(bits, " | ")
	if len(summary) > summaryLimit {
		summary = summary[:summaryLimit]
	}
	return summary
}

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
		s.logger.Warn("failed to cache resume embedding",
			zap.String("user_id", profile.UserID.String()), zap.Error(err))
	}
	profile.ResumeEmbedding = vector
	return vector, nil
}

func (s *Service) ensureJobEmbedding(ctx context.Context, job *types.JobRecord) ([]float32, error) {
	if len(job.Embedding) > 0 {
		return job.Embedding, nil
	}
	vector, err := s.embedText(ctx, job.Text())
	if err != nil {
		return nil, err
	}
	if vector == nil {
		return nil, nil
	}
	if err := s.jobs.UpdateJobEmbedding(ctx, job.ID, vector); err != nil {
		s.logger.Warn("failed to cache job embedding",
			zap.String("job_id", job.ID.String()), zap.Error(err))
	}
	job.Embedding = vector
	return vector, nil
}

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
