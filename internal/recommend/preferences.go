// Package recommend ranks candidate jobs for a user by fusing declared
// preference signals with résumé embedding similarity.
package recommend

import (
	"sort"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

// PreferenceBonus is the magnitude of each categorical boost or penalty.
const PreferenceBonus = 10.0

// skillOverlapReasonLimit caps the joined skill list in the overlap reason.
const skillOverlapReasonLimit = 60

// EvaluatePreferences scores one job against a user's declared preferences
// and the profile's skills. Each rule is independently additive, so the
// returned score can be negative (avoid-list penalty) and is not normalized;
// clamping happens in the ranker.
func EvaluatePreferences(job *types.JobRecord, prefs *types.Preferences, profileSkills []string) (float64, []string) {
	score := 0.0
	var reasons []string

	if len(prefs.RoleFamilies) > 0 && overlaps(job.Categories, prefs.RoleFamilies) {
		score += PreferenceBonus
		reasons = append(reasons, "Matches preferred role focus")
	}

	if len(prefs.SeniorityLevels) > 0 && overlaps(job.Levels, prefs.SeniorityLevels) {
		score += PreferenceBonus
		reasons = append(reasons, "Requested seniority level")
	}

	companySize := strings.ToLower(strings.TrimSpace(job.Metadata.CompanySize))
	if len(prefs.CompanySizes) > 0 && companySize != "" {
		for _, size := range prefs.CompanySizes {
			if companySize == strings.ToLower(size) {
				score += PreferenceBonus
				reasons = append(reasons, "Preferred company size")
				break
			}
		}
	}

	// Both industry rules may fire for the same job when its metadata
	// intersects the liked and avoided lists through different entries.
	if len(prefs.IndustriesLike) > 0 && overlaps(job.Metadata.Industry, prefs.IndustriesLike) {
		score += PreferenceBonus
		reasons = append(reasons, "Preferred industry")
	}
	if len(prefs.IndustriesAvoid) > 0 && overlaps(job.Metadata.Industry, prefs.IndustriesAvoid) {
		score -= PreferenceBonus
		reasons = append(reasons, "Industry on avoid list")
	}

	if overlap := skillOverlap(job.Skills, profileSkills); len(overlap) > 0 {
		score += PreferenceBonus
		reasons = append(reasons, "Skill overlap: "+truncate(strings.Join(overlap, ", "), skillOverlapReasonLimit))
	}

	return score, reasons
}

// overlaps reports whether the two lists share any entry, case-insensitively.
func overlaps(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, item := range a {
		set[strings.ToLower(item)] = true
	}
	for _, item := range b {
		if set[strings.ToLower(item)] {
			return true
		}
	}
	return false
}

// skillOverlap returns the job-side skills also present in the profile,
// case-insensitively matched, sorted for stable output.
func skillOverlap(jobSkills, profileSkills []string) []string {
	if len(jobSkills) == 0 || len(profileSkills) == 0 {
		return nil
	}
	profileSet := make(map[string]bool, len(profileSkills))
	for _, skill := range profileSkills {
		profileSet[strings.ToLower(skill)] = true
	}
	seen := make(map[string]bool, len(jobSkills))
	var overlap []string
	for _, skill := range jobSkills {
		key := strings.ToLower(skill)
		if profileSet[key] && !seen[key] {
			seen[key] = true
			overlap = append(overlap, skill)
		}
	}
	sort.Strings(overlap)
	return overlap
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
