package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Preferences is a user's declared job search preferences. All list fields
// are optional; an empty list means "no preference" for that axis.
// Skills is only populated for guest requests, where no stored profile
// exists to take skills from.
type Preferences struct {
	Locations       []string `json:"locations,omitempty" validate:"dive,min=1"`
	RemoteOK        bool     `json:"remote_ok,omitempty"`
	RoleFamilies    []string `json:"role_families,omitempty" validate:"dive,min=1"`
	SeniorityLevels []string `json:"seniority_levels,omitempty" validate:"dive,min=1"`
	IndustriesLike  []string `json:"industries_like,omitempty" validate:"dive,min=1"`
	IndustriesAvoid []string `json:"industries_avoid,omitempty" validate:"dive,min=1"`
	CompanySizes    []string `json:"company_sizes,omitempty" validate:"dive,min=1"`
	Skills          []string `json:"skills,omitempty" validate:"dive,min=1"`
}

// Validate checks the preference payload and returns a ValidationError
// describing the first offending field.
func (p *Preferences) Validate() error {
	if err := validate.Struct(p); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ValidationError{Field: errs[0].Field(), Message: "must not contain empty entries"}
		}
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// NormalizeTerms trims entries, drops blanks, and deduplicates
// case-insensitively while preserving first-seen casing and order.
func NormalizeTerms(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, item := range values {
		cleaned := strings.TrimSpace(item)
		if cleaned == "" {
			continue
		}
		key := strings.ToLower(cleaned)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, cleaned)
	}
	return unique
}
