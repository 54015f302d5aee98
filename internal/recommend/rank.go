package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/types"
)

// SimilarityWeight scales the clamped résumé/job cosine similarity into the
// 0-70 band of the match score; preference bonuses supply the rest.
const SimilarityWeight = 70.0

// defaultEmbedConcurrency bounds concurrent per-job embedding requests.
const defaultEmbedConcurrency = 4

// JobEmbeddingWriter persists a lazily computed job embedding back onto the
// job record. Writes are full-record upserts: last writer wins, and a write
// abandoned mid-call leaves the cache recomputable rather than corrupt.
type JobEmbeddingWriter interface {
	UpdateJobEmbedding(ctx context.Context, jobID uuid.UUID, vector []float32) error
}

// Ranker fuses preference signals and embedding similarity into a single
// match score per job and sorts a bounded candidate pool.
type Ranker struct {
	embedder embedding.Embedder
	store    JobEmbeddingWriter
	logger   *zap.Logger
	limit    int
}

// NewRanker creates a Ranker. store may be nil for callers with no
// persistence (guest flows); computed embeddings are then kept only for the
// duration of the call.
func NewRanker(embedder embedding.Embedder, store JobEmbeddingWriter, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{
		embedder: embedder,
		store:    store,
		logger:   logger,
		limit:    defaultEmbedConcurrency,
	}
}

// Rank scores every job and returns the pool sorted by score, descending.
//
// Jobs with equal scores keep their relative input order; the candidate pool
// arrives ordered by recency and that order is the intended tie-break.
// A failed embedding for one job degrades that job to a preference-only
// score and never aborts the batch.
func (r *Ranker) Rank(ctx context.Context, jobs []types.JobRecord, prefs *types.Preferences, profileSkills []string, resumeVector []float32) []types.RankedEntry {
	if len(resumeVector) > 0 {
		r.ensureJobEmbeddings(ctx, jobs)
	}

	ranked := make([]types.RankedEntry, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		prefScore, reasons := EvaluatePreferences(&job, prefs, profileSkills)

		simScore := 0.0
		if len(resumeVector) > 0 && len(job.Embedding) > 0 {
			similarity := embedding.CosineSimilarity(resumeVector, job.Embedding)
			if similarity > 0 {
				simScore = similarity * SimilarityWeight
				reasons = append(reasons, fmt.Sprintf("Resume alignment %d%%", int(similarity*100)))
			}
		}

		total := math.Min(100.0, math.Max(0.0, simScore+prefScore))
		ranked = append(ranked, types.RankedEntry{
			Job:     job,
			Score:   math.Round(total*100) / 100,
			Reasons: reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// ensureJobEmbeddings fills in missing job embeddings concurrently, writing
// each computed vector back to the store. Per-job failures are logged and
// absorbed so one bad record cannot fail the whole ranking call.
func (r *Ranker) ensureJobEmbeddings(ctx context.Context, jobs []types.JobRecord) {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.limit)

	for i := range jobs {
		if len(jobs[i].Embedding) > 0 {
			continue
		}
		job := &jobs[i]
		group.Go(func() error {
			text := strings.TrimSpace(job.Text())
			if text == "" {
				return nil
			}
			vectors, err := r.embedder.Embed(groupCtx, []string{text})
			if err != nil {
				r.logger.Warn("failed to embed job, ranking without similarity",
					zap.String("job_id", job.ID.String()), zap.Error(err))
				return nil
			}
			if len(vectors) == 0 || len(vectors[0]) == 0 {
				return nil
			}
			job.Embedding = vectors[0]
			if r.store != nil {
				if err := r.store.UpdateJobEmbedding(groupCtx, job.ID, vectors[0]); err != nil {
					r.logger.Warn("failed to cache job embedding",
						zap.String("job_id", job.ID.String()), zap.Error(err))
				}
			}
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = group.Wait()
}
