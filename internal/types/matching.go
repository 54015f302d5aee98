// Package types defines the shared data model for the job matching engine:
// job records, candidate profiles, preferences, and the structured scoring
// results produced by the matching and ranking packages.
package types

// Requirement is a single labeled need extracted from a job description.
// Requirements are produced externally (job-description parsing); the engine
// only consumes them. Labels that are empty after trimming are discarded
// before scoring.
type Requirement struct {
	Label    string `json:"label"`
	Critical bool   `json:"critical"`
	Notes    string `json:"notes,omitempty"`
}

// Weight returns the scoring weight of the requirement.
// Critical requirements count double.
func (r Requirement) Weight() float64 {
	if r.Critical {
		return 2
	}
	return 1
}

// MatchEntry records how one requirement fared against the available evidence.
// Similarity is nil when there was no evidence to compare against.
type MatchEntry struct {
	Requirement string   `json:"requirement"`
	Critical    bool     `json:"critical"`
	MatchedText string   `json:"matched_text,omitempty"`
	Similarity  *float64 `json:"similarity"`
}

// DimensionResult is the outcome of scoring one dimension (skills,
// experience, education, or keywords) of a job against a profile.
// Applicable is false only when the requirement list was empty, in which
// case the dimension must not influence the overall score.
type DimensionResult struct {
	Score      int          `json:"score"`
	Applicable bool         `json:"applicable"`
	Matched    []MatchEntry `json:"matched"`
	Missing    []MatchEntry `json:"missing"`
	Weight     float64      `json:"weight"`
}

// Breakdown groups the four dimension results of a full fit computation.
type Breakdown struct {
	Skills     DimensionResult `json:"skills"`
	Experience DimensionResult `json:"experience"`
	Education  DimensionResult `json:"education"`
	Keywords   DimensionResult `json:"keywords"`
}

// DimensionWeights holds the base weight of each dimension in the overall
// score. The weights of inapplicable dimensions are renormalized away.
type DimensionWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Keywords   float64 `json:"keywords"`
}

// OverallScore is the explainable 0-100 fit score for one job/profile pair.
type OverallScore struct {
	OverallScore int              `json:"overall_score"`
	Breakdown    Breakdown        `json:"breakdown"`
	Weights      DimensionWeights `json:"weights"`
}

// RankedEntry pairs a job with its combined match score and the
// human-readable reasons behind it.
type RankedEntry struct {
	Job     JobRecord `json:"job"`
	Score   float64   `json:"score"`
	Reasons []string  `json:"reasons"`
}
