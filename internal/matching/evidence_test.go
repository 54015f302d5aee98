package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmatch/internal/types"
)

func TestExperienceEvidence(t *testing.T) {
	profile := &types.Profile{
		WorkExperience: []types.WorkExperience{
			{Role: "Backend Engineer", Company: "Acme", Tasks: "built billing services"},
			{},
			{Role: "Intern"},
		},
	}

	evidence := ExperienceEvidence(profile)
	assert.Equal(t, []string{
		"Backend Engineer Acme built billing services",
		"Intern",
	}, evidence)
}

func TestEducationEvidence(t *testing.T) {
	profile := &types.Profile{
		Education: []types.Education{
			{Degree: "BSc Computer Science", School: "State University", Year: "2019"},
			{},
		},
	}

	evidence := EducationEvidence(profile)
	assert.Equal(t, []string{"BSc Computer Science State University 2019"}, evidence)
}

func TestKeywordEvidence(t *testing.T) {
	profile := &types.Profile{
		Skills:     []string{"Go", "Postgres"},
		ResumeText: "full resume text",
		WorkExperience: []types.WorkExperience{
			{Role: "Engineer", Company: "Acme"},
		},
	}

	evidence := KeywordEvidence(profile)
	assert.Equal(t, []string{
		"full resume text",
		"Go",
		"Postgres",
		"Engineer Acme",
	}, evidence)
}

func TestKeywordEvidence_NoResumeText(t *testing.T) {
	profile := &types.Profile{Skills: []string{"Go"}}
	assert.Equal(t, []string{"Go"}, KeywordEvidence(profile))
}
