package matching

import (
	"math"

	"github.com/jonathan/jobmatch/internal/types"
)

// BaseWeights are the fixed dimension weights of the overall fit score.
var BaseWeights = types.DimensionWeights{
	Skills:     0.35,
	Experience: 0.35,
	Education:  0.15,
	Keywords:   0.15,
}

// Aggregate combines the four dimension results into one overall score.
//
// Only applicable dimensions contribute; their base weights are renormalized
// so the overall score is always relative to the requirements that actually
// existed. A job with no stated education requirement cannot drag the score
// down through a zero-weight phantom dimension. When no dimension is
// applicable the overall score is 0. Pure function, no side effects.
func Aggregate(skills, experience, education, keywords types.DimensionResult) types.OverallScore {
	breakdown := types.Breakdown{
		Skills:     skills,
		Experience: experience,
		Education:  education,
		Keywords:   keywords,
	}

	activeWeight := 0.0
	weightedSum := 0.0
	for _, dim := range []struct {
		weight float64
		result types.DimensionResult
	}{
		{BaseWeights.Skills, skills},
		{BaseWeights.Experience, experience},
		{BaseWeights.Education, education},
		{BaseWeights.Keywords, keywords},
	} {
		if dim.result.Applicable {
			activeWeight += dim.weight
			weightedSum += dim.weight * float64(dim.result.Score)
		}
	}

	overall := 0
	if activeWeight > 0 {
		overall = int(math.Round(weightedSum / activeWeight))
	}

	return types.OverallScore{
		OverallScore: overall,
		Breakdown:    breakdown,
		Weights:      BaseWeights,
	}
}
