package matching

import "github.com/jonathan/jobmatch/internal/types"

// ExperienceEvidence flattens a profile's work history into evidence
// sentences, one per position, skipping entries with no content.
func ExperienceEvidence(profile *types.Profile) []string {
	evidence := make([]string, 0, len(profile.WorkExperience))
	for _, item := range profile.WorkExperience {
		if s := item.Sentence(); s != "" {
			evidence = append(evidence, s)
		}
	}
	return evidence
}

// EducationEvidence flattens a profile's education history into evidence
// sentences, one per entry, skipping entries with no content.
func EducationEvidence(profile *types.Profile) []string {
	evidence := make([]string, 0, len(profile.Education))
	for _, item := range profile.Education {
		if s := item.Sentence(); s != "" {
			evidence = append(evidence, s)
		}
	}
	return evidence
}

// KeywordEvidence builds the evidence pool for the keywords dimension:
// the full résumé text plus skills and experience sentences, so keyword
// requirements can match anywhere in the résumé.
func KeywordEvidence(profile *types.Profile) []string {
	evidence := make([]string, 0, 1+len(profile.Skills)+len(profile.WorkExperience))
	if profile.ResumeText != "" {
		evidence = append(evidence, profile.ResumeText)
	}
	evidence = append(evidence, profile.Skills...)
	evidence = append(evidence, ExperienceEvidence(profile)...)
	return evidence
}
