package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Job status constants
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// JobMetadata holds optional descriptive fields that not every source
// provides. Industry is a list because aggregators tag jobs with several.
type JobMetadata struct {
	Industry    []string `json:"industry,omitempty"`
	CompanySize string   `json:"company_size,omitempty"`
}

// JobRecord is a normalized job posting as stored in the document store.
type JobRecord struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Description string      `json:"description,omitempty"`
	Locations   []string    `json:"locations,omitempty"`
	WorkModes   []string    `json:"work_modes,omitempty"`
	Categories  []string    `json:"categories,omitempty"`
	Levels      []string    `json:"levels,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	Salary      *string     `json:"salary,omitempty"`
	URL         string      `json:"url,omitempty"`
	Status      string      `json:"status"`
	Source      *string     `json:"source,omitempty"`
	Metadata    JobMetadata `json:"metadata"`

	// Cached embedding of Text(), refreshed lazily by the ranker.
	Embedding          []float32  `json:"-"`
	EmbeddingUpdatedAt *time.Time `json:"-"`

	CreatedAt      time.Time `json:"created_at"`
	LastSeenActive time.Time `json:"last_seen_active"`
}

// Text flattens the job into the text representation used for embedding.
func (j *JobRecord) Text() string {
	chunks := []string{j.Title, j.Company}
	if j.Description != "" {
		chunks = append(chunks, j.Description)
	}
	if len(j.Skills) > 0 {
		chunks = append(chunks, "Skills: "+strings.Join(j.Skills, ", "))
	}
	if len(j.Categories) > 0 {
		chunks = append(chunks, "Categories: "+strings.Join(j.Categories, ", "))
	}
	if len(j.Levels) > 0 {
		chunks = append(chunks, "Levels: "+strings.Join(j.Levels, ", "))
	}
	nonEmpty := chunks[:0]
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return strings.Join(nonEmpty, " \n")
}
