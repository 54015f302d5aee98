package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkExperience is one position from a candidate's work history.
type WorkExperience struct {
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Tasks   string `json:"tasks,omitempty"`
}

// Sentence flattens the position into a single evidence sentence.
// Returns "" when every field is blank.
func (w WorkExperience) Sentence() string {
	return joinNonEmpty(" ", w.Role, w.Company, w.Tasks)
}

// Education is one entry from a candidate's education history.
type Education struct {
	Degree string `json:"degree,omitempty"`
	School string `json:"school,omitempty"`
	Year   string `json:"year,omitempty"`
	GPA    string `json:"gpa,omitempty"`
}

// Sentence flattens the entry into a single evidence sentence.
func (e Education) Sentence() string {
	return joinNonEmpty(" ", e.Degree, e.School, e.Year, e.GPA)
}

// Profile is a candidate's structured profile as stored in the document
// store. ResumeText carries the raw extracted résumé text used as keyword
// evidence; extraction itself happens outside this engine.
type Profile struct {
	UserID         uuid.UUID        `json:"user_id"`
	Summary        string           `json:"summary,omitempty"`
	Skills         []string         `json:"skills,omitempty"`
	WorkExperience []WorkExperience `json:"work_experience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	ResumeText     string           `json:"resume_text,omitempty"`
	Preferences    *Preferences     `json:"preferences,omitempty"`

	// Cached embedding of Text(), refreshed lazily.
	ResumeEmbedding          []float32  `json:"-"`
	ResumeEmbeddingUpdatedAt *time.Time `json:"-"`
}

// Text flattens the profile into the text representation used for embedding.
func (p *Profile) Text() string {
	var chunks []string
	if s := strings.TrimSpace(p.Summary); s != "" {
		chunks = append(chunks, s)
	}
	if len(p.Skills) > 0 {
		chunks = append(chunks, "Skills: "+strings.Join(p.Skills, ", "))
	}
	for _, item := range p.WorkExperience {
		if s := item.Sentence(); s != "" {
			chunks = append(chunks, s)
		}
	}
	for _, item := range p.Education {
		if s := item.Sentence(); s != "" {
			chunks = append(chunks, s)
		}
	}
	return strings.Join(chunks, " \n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}
