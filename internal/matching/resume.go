package matching

import (
	"context"
	"fmt"

	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/types"
)

// JobRequirements carries the externally parsed requirement lists for each
// scored dimension of one job posting.
type JobRequirements struct {
	Skills     []types.Requirement `json:"skills,omitempty"`
	Experience []types.Requirement `json:"experience,omitempty"`
	Education  []types.Requirement `json:"education,omitempty"`
	Keywords   []types.Requirement `json:"keywords,omitempty"`
}

// ScoreResume scores a profile against a job's requirements across all four
// dimensions and aggregates them into the overall fit score. A threshold of
// 0 falls back to DefaultThreshold.
func ScoreResume(ctx context.Context, embedder embedding.Embedder, reqs JobRequirements, profile *types.Profile, threshold float64) (types.OverallScore, error) {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	skills, err := ScoreDimension(ctx, embedder, reqs.Skills, profile.Skills, threshold)
	if err != nil {
		return types.OverallScore{}, fmt.Errorf("failed to score skills: %w", err)
	}
	experience, err := ScoreDimension(ctx, embedder, reqs.Experience, ExperienceEvidence(profile), threshold)
	if err != nil {
		return types.OverallScore{}, fmt.Errorf("failed to score experience: %w", err)
	}
	education, err := ScoreDimension(ctx, embedder, reqs.Education, EducationEvidence(profile), threshold)
	if err != nil {
		return types.OverallScore{}, fmt.Errorf("failed to score education: %w", err)
	}
	keywords, err := ScoreDimension(ctx, embedder, reqs.Keywords, KeywordEvidence(profile), threshold)
	if err != nil {
		return types.OverallScore{}, fmt.Errorf("failed to score keywords: %w", err)
	}

	return Aggregate(skills, experience, education, keywords), nil
}
