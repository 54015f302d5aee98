// Package matching scores structured job requirements against résumé
// evidence using embedding cosine similarity, and aggregates the four
// scored dimensions into one explainable 0-100 fit score.
package matching

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/types"
)

// DefaultThreshold is the minimum cosine similarity for a requirement to
// count as matched by a piece of evidence.
const DefaultThreshold = 0.72

// ScoreDimension matches requirements against evidence snippets and returns
// the per-dimension result.
//
// Requirements with blank labels are dropped first; if none remain the
// dimension is vacuously satisfied (applicable=false, score 100) and must
// not penalize the overall score. Requirements with no evidence at all score
// zero with every requirement missing. Otherwise all requirement labels and
// evidence snippets are embedded in one batched call and each requirement is
// matched to its highest-similarity evidence snippet; the best similarity is
// recorded even for missing requirements, for explainability.
func ScoreDimension(ctx context.Context, embedder embedding.Embedder, requirements []types.Requirement, evidenceTexts []string, threshold float64) (types.DimensionResult, error) {
	cleaned := make([]types.Requirement, 0, len(requirements))
	for _, item := range requirements {
		label := strings.TrimSpace(item.Label)
		if label == "" {
			continue
		}
		cleaned = append(cleaned, types.Requirement{Label: label, Critical: item.Critical, Notes: item.Notes})
	}

	if len(cleaned) == 0 {
		return types.DimensionResult{
			Score:      100,
			Applicable: false,
			Matched:    []types.MatchEntry{},
			Missing:    []types.MatchEntry{},
			Weight:     0,
		}, nil
	}

	evidence := make([]string, 0, len(evidenceTexts))
	for _, text := range evidenceTexts {
		if s := strings.TrimSpace(text); s != "" {
			evidence = append(evidence, s)
		}
	}

	totalWeight := 0.0
	for _, item := range cleaned {
		totalWeight += item.Weight()
	}

	if len(evidence) == 0 {
		missing := make([]types.MatchEntry, 0, len(cleaned))
		for _, item := range cleaned {
			missing = append(missing, types.MatchEntry{
				Requirement: item.Label,
				Critical:    item.Critical,
				Similarity:  nil,
			})
		}
		return types.DimensionResult{
			Score:      0,
			Applicable: true,
			Matched:    []types.MatchEntry{},
			Missing:    missing,
			Weight:     totalWeight,
		}, nil
	}

	// One batched call keeps provider round trips to a minimum:
	// requirement labels first, evidence snippets after.
	combined := make([]string, 0, len(cleaned)+len(evidence))
	for _, item := range cleaned {
		combined = append(combined, item.Label)
	}
	combined = append(combined, evidence...)

	vectors, err := embedder.Embed(ctx, combined)
	if err != nil {
		return types.DimensionResult{}, fmt.Errorf("failed to embed requirements and evidence: %w", err)
	}
	if len(vectors) != len(combined) {
		return types.DimensionResult{}, fmt.Errorf("embedding count mismatch: want %d, got %d", len(combined), len(vectors))
	}
	reqVectors := vectors[:len(cleaned)]
	evidenceVectors := vectors[len(cleaned):]

	matched := []types.MatchEntry{}
	missing := []types.MatchEntry{}
	matchedWeight := 0.0

	for i, item := range cleaned {
		bestSimilarity := -1.0
		bestIdx := -1
		for j, evVector := range evidenceVectors {
			similarity := embedding.CosineSimilarity(reqVectors[i], evVector)
			if similarity > bestSimilarity {
				bestSimilarity = similarity
				bestIdx = j
			}
		}

		if bestIdx >= 0 && bestSimilarity >= threshold {
			matched = append(matched, types.MatchEntry{
				Requirement: item.Label,
				Critical:    item.Critical,
				MatchedText: evidence[bestIdx],
				Similarity:  roundSimilarity(bestSimilarity),
			})
			matchedWeight += item.Weight()
		} else {
			entry := types.MatchEntry{
				Requirement: item.Label,
				Critical:    item.Critical,
			}
			if bestIdx >= 0 {
				entry.Similarity = roundSimilarity(bestSimilarity)
			}
			missing = append(missing, entry)
		}
	}

	return types.DimensionResult{
		Score:      int(math.Round(100 * matchedWeight / totalWeight)),
		Applicable: true,
		Matched:    matched,
		Missing:    missing,
		Weight:     totalWeight,
	}, nil
}

// roundSimilarity rounds to 3 decimals for stable, readable output.
func roundSimilarity(value float64) *float64 {
	rounded := math.Round(value*1000) / 1000
	return &rounded
}
