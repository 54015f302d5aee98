package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobmatch/internal/types"
)

func TestEvaluatePreferences_NoPreferencesNoSkills(t *testing.T) {
	job := &types.JobRecord{Title: "Engineer"}
	score, reasons := EvaluatePreferences(job, &types.Preferences{}, nil)

	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

func TestEvaluatePreferences_RoleFamily(t *testing.T) {
	job := &types.JobRecord{Categories: []string{"Backend", "Infrastructure"}}
	prefs := &types.Preferences{RoleFamilies: []string{"backend"}}

	score, reasons := EvaluatePreferences(job, prefs, nil)
	assert.Equal(t, PreferenceBonus, score)
	assert.Equal(t, []string{"Matches preferred role focus"}, reasons)
}

func TestEvaluatePreferences_SeniorityLevel(t *testing.T) {
	job := &types.JobRecord{Levels: []string{"Senior"}}
	prefs := &types.Preferences{SeniorityLevels: []string{"SENIOR"}}

	score, reasons := EvaluatePreferences(job, prefs, nil)
	assert.Equal(t, PreferenceBonus, score)
	assert.Equal(t, []string{"Requested seniority level"}, reasons)
}

func TestEvaluatePreferences_CompanySize(t *testing.T) {
	job := &types.JobRecord{Metadata: types.JobMetadata{CompanySize: "Startup"}}
	prefs := &types.Preferences{CompanySizes: []string{"startup", "mid"}}

	score, reasons := EvaluatePreferences(job, prefs, nil)
	assert.Equal(t, PreferenceBonus, score)
	assert.Equal(t, []string{"Preferred company size"}, reasons)
}

func TestEvaluatePreferences_CompanySizeMissingMetadata(t *testing.T) {
	job := &types.JobRecord{}
	prefs := &types.Preferences{CompanySizes: []string{"startup"}}

	score, reasons := EvaluatePreferences(job, prefs, nil)
	assert.Equal(t, 0.0, score)
	assert.Empty(t, reasons)
}

func TestEvaluatePreferences_IndustryLiked(t *testing.T) {
	job := &types.JobRecord{Metadata: types.JobMetadata{Industry: []string{"Fintech"}}}
	prefs := &types.Preferences{IndustriesLike: []string{"fintech"}}

	score, reasons := EvaluatePreferences(job, prefs, nil)
	assert.Equal(t, PreferenceBonus, score)
	assert.Equal(t, []string{"Preferred industry"}, reasons)
}

func TestEvaluatePreferences_IndustryAvoided(t *testing.T) {
	job := &types.JobRecord{Metadata: types.JobMetadata{Industry: []string{"Gambling"}}}
	prefs := &types.Preferences{IndustriesAvoid: []string{"gambling"}}

	score, reasons := EvaluatePreferences(job, prefs, nil)
	assert.Equal(t, -PreferenceBonus, score)
	assert.Equal(t, []string{"Industry on avoid list"}, reasons)
}

func TestEvaluatePreferences_BothIndustryRulesFire(t *testing.T) {
	// A job tagged with both a liked and an avoided industry nets zero but
	// keeps both reasons.
	job := &types.JobRecord{Metadata: types.JobMetadata{Industry: []string{"Fintech", "Gambling"}}}
	prefs := &types.Preferences{
		IndustriesLike:  []string{"fintech"},
		IndustriesAvoid: []string{"gambling"},
	}

	score, reasons := EvaluatePreferences(job, prefs, nil)
	assert.Equal(t, 0.0, score)
	assert.Equal(t, []string{"Preferred industry", "Industry on avoid list"}, reasons)
}

func TestEvaluatePreferences_SkillOverlap(t *testing.T) {
	job := &types.JobRecord{Skills: []string{"Go", "Postgres", "Kafka"}}
	profileSkills := []string{"go", "postgres"}

	score, reasons := EvaluatePreferences(job, &types.Preferences{}, profileSkills)
	assert.Equal(t, PreferenceBonus, score)
	assert.Equal(t, []string{"Skill overlap: Go, Postgres"}, reasons)
}

func TestEvaluatePreferences_SkillOverlapUsesJobCasing(t *testing.T) {
	job := &types.JobRecord{Skills: []string{"GoLang"}}
	_, reasons := EvaluatePreferences(job, &types.Preferences{}, []string{"golang"})

	assert.Equal(t, []string{"Skill overlap: GoLang"}, reasons)
}

func TestEvaluatePreferences_SkillOverlapTruncated(t *testing.T) {
	jobSkills := []string{
		"Kubernetes", "Terraform", "Prometheus", "Elasticsearch", "Cassandra", "RabbitMQ",
	}
	job := &types.JobRecord{Skills: jobSkills}

	_, reasons := EvaluatePreferences(job, &types.Preferences{}, jobSkills)
	if assert.Len(t, reasons, 1) {
		assert.True(t, strings.HasPrefix(reasons[0], "Skill overlap: "))
		assert.LessOrEqual(t, len(strings.TrimPrefix(reasons[0], "Skill overlap: ")), skillOverlapReasonLimit)
	}
}

func TestEvaluatePreferences_AllRulesStack(t *testing.T) {
	job := &types.JobRecord{
		Categories: []string{"Backend"},
		Levels:     []string{"Senior"},
		Skills:     []string{"Go"},
		Metadata: types.JobMetadata{
			Industry:    []string{"Fintech"},
			CompanySize: "startup",
		},
	}
	prefs := &types.Preferences{
		RoleFamilies:    []string{"Backend"},
		SeniorityLevels: []string{"Senior"},
		IndustriesLike:  []string{"Fintech"},
		CompanySizes:    []string{"Startup"},
	}

	score, reasons := EvaluatePreferences(job, prefs, []string{"Go"})
	assert.Equal(t, 5*PreferenceBonus, score)
	assert.Len(t, reasons, 5)
}

func TestSkillOverlap_DeduplicatesAndSorts(t *testing.T) {
	overlap := skillOverlap([]string{"Postgres", "Go", "go"}, []string{"GO", "postgres"})
	assert.Equal(t, []string{"Go", "Postgres"}, overlap)
}
