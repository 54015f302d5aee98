package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/types"
)

// fakeEmbedder returns scripted vectors per text and records every batch.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   [][]string
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if v, ok := f.vectors[text]; ok {
			out[i] = v
		} else {
			out[i] = []float32{0, 0, 1}
		}
	}
	return out, nil
}

func (f *fakeEmbedder) Model() string { return "fake" }
func (f *fakeEmbedder) Close() error  { return nil }

func TestScoreDimension_EmptyRequirements(t *testing.T) {
	embedder := &fakeEmbedder{}

	result, err := ScoreDimension(context.Background(), embedder, nil, []string{"Go"}, DefaultThreshold)
	require.NoError(t, err)

	assert.False(t, result.Applicable)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 0.0, result.Weight)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
	assert.Empty(t, embedder.calls, "no embedding call for a vacuous dimension")
}

func TestScoreDimension_BlankLabelsDiscarded(t *testing.T) {
	reqs := []types.Requirement{
		{Label: "   "},
		{Label: ""},
	}

	result, err := ScoreDimension(context.Background(), &fakeEmbedder{}, reqs, []string{"Go"}, DefaultThreshold)
	require.NoError(t, err)
	assert.False(t, result.Applicable)
	assert.Equal(t, 100, result.Score)
}

func TestScoreDimension_NoEvidence(t *testing.T) {
	reqs := []types.Requirement{
		{Label: "Go", Critical: true},
		{Label: "Docker"},
	}

	result, err := ScoreDimension(context.Background(), &fakeEmbedder{}, reqs, nil, DefaultThreshold)
	require.NoError(t, err)

	assert.True(t, result.Applicable)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 3.0, result.Weight)
	assert.Empty(t, result.Matched)
	require.Len(t, result.Missing, 2)
	for _, entry := range result.Missing {
		assert.Nil(t, entry.Similarity)
	}
}

func TestScoreDimension_WhitespaceEvidenceIsNoEvidence(t *testing.T) {
	reqs := []types.Requirement{{Label: "Go"}}

	result, err := ScoreDimension(context.Background(), &fakeEmbedder{}, reqs, []string{"  ", ""}, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	require.Len(t, result.Missing, 1)
	assert.Nil(t, result.Missing[0].Similarity)
}

func TestScoreDimension_CriticalWeighting(t *testing.T) {
	// Only the critical requirement matches: score = round(100*2/3) = 67.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Go":                 {1, 0, 0},
		"Kubernetes":         {0, 1, 0},
		"5 years writing Go": {1, 0, 0},
	}}
	reqs := []types.Requirement{
		{Label: "Go", Critical: true},
		{Label: "Kubernetes"},
	}

	result, err := ScoreDimension(context.Background(), embedder, reqs, []string{"5 years writing Go"}, DefaultThreshold)
	require.NoError(t, err)

	assert.Equal(t, 67, result.Score)
	assert.Equal(t, 3.0, result.Weight)
	require.Len(t, result.Matched, 1)
	assert.Equal(t, "Go", result.Matched[0].Requirement)
	assert.Equal(t, "5 years writing Go", result.Matched[0].MatchedText)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Kubernetes", result.Missing[0].Requirement)
}

func TestScoreDimension_SingleBatchedEmbedCall(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{}}
	reqs := []types.Requirement{{Label: "Go"}, {Label: "Docker"}}
	evidence := []string{"built services", "shipped containers"}

	_, err := ScoreDimension(context.Background(), embedder, reqs, evidence, DefaultThreshold)
	require.NoError(t, err)

	require.Len(t, embedder.calls, 1, "requirements and evidence share one batch")
	assert.Equal(t, []string{"Go", "Docker", "built services", "shipped containers"}, embedder.calls[0])
}

func TestScoreDimension_MissingRecordsBestSimilarity(t *testing.T) {
	// Best similarity is below threshold: requirement is missing but the
	// similarity is still reported, rounded to 3 decimals.
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Rust":           {1, 0, 0},
		"wrote some C++": {0.5, 0.866, 0},
	}}
	reqs := []types.Requirement{{Label: "Rust"}}

	result, err := ScoreDimension(context.Background(), embedder, reqs, []string{"wrote some C++"}, DefaultThreshold)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Score)
	require.Len(t, result.Missing, 1)
	require.NotNil(t, result.Missing[0].Similarity)
	assert.InDelta(t, 0.5, *result.Missing[0].Similarity, 0.001)
}

func TestScoreDimension_ArgMaxEvidenceWins(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Go":           {1, 0, 0},
		"weak match":   {0.75, 0.661, 0},
		"strong match": {0.99, 0.141, 0},
	}}
	reqs := []types.Requirement{{Label: "Go"}}

	result, err := ScoreDimension(context.Background(), embedder, reqs, []string{"weak match", "strong match"}, DefaultThreshold)
	require.NoError(t, err)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, "strong match", result.Matched[0].MatchedText)
}

func TestScoreDimension_EmbedderErrorPropagates(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("provider down")}
	reqs := []types.Requirement{{Label: "Go"}}

	_, err := ScoreDimension(context.Background(), embedder, reqs, []string{"Go services"}, DefaultThreshold)
	require.Error(t, err)
	assert.ErrorContains(t, err, "provider down")
}

func TestScoreDimension_AllMatched(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"Go":     {1, 0, 0},
		"Docker": {0, 1, 0},
		"go":     {1, 0, 0},
		"docker": {0, 1, 0},
	}}
	reqs := []types.Requirement{{Label: "Go"}, {Label: "Docker"}}

	result, err := ScoreDimension(context.Background(), embedder, reqs, []string{"go", "docker"}, DefaultThreshold)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Score)
	assert.Len(t, result.Matched, 2)
	assert.Empty(t, result.Missing)
}
