package constants

import (
	"strings"
)

// SkillCategory is the coarse grouping the site uses to colour skill badges.
type SkillCategory string

const (
	Frontend SkillCategory = "Frontend"
	Backend  SkillCategory = "Backend"
	DevOps   SkillCategory = "DevOps"
	Other    SkillCategory = "Other"
)

var allCategories = []SkillCategory{
	Frontend,
	Backend,
	DevOps,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a free-form category written by the model onto a known one.
// The stored record keeps the original string; this is only used for display.
func Canonicalize(input string) (SkillCategory, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]SkillCategory{
		"front-end":      Frontend,
		"front end":      Frontend,
		"ui":             Frontend,
		"back-end":       Backend,
		"back end":       Backend,
		"server":         Backend,
		"database":       Backend,
		"databases":      Backend,
		"cloud":          DevOps,
		"infrastructure": DevOps,
		"ops":            DevOps,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
