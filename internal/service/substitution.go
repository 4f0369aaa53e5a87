package service

import (
	"sort"
	"strings"
)

// SubstitutionService answers ingredient substitution and cooking tip
// lookups from fixed tables seeded at startup.
type SubstitutionService struct {
	substitutions map[string][]string
	tips          map[string][]string
}

func NewSubstitutionService() *SubstitutionService {
	return &SubstitutionService{
		substitutions: seedSubstitutions(),
		tips:          seedCookingTips(),
	}
}

// Lookup returns substitutes for an ingredient. Matching tolerates extra
// words in either direction ("large eggs" finds "eggs"). Unknown
// ingredients return an empty slice, not an error.
func (s *SubstitutionService) Lookup(ingredient string) []string {
	ingredient = strings.ToLower(strings.TrimSpace(ingredient))
	if ingredient == "" {
		return nil
	}
	// Longest key first so "sour cream" wins over "cream"-style overlaps.
	keys := make([]string, 0, len(s.substitutions))
	for k := range s.substitutions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, k := range keys {
		if strings.Contains(ingredient, k) || strings.Contains(k, ingredient) {
			return s.substitutions[k]
		}
	}
	return []string{}
}

// Ingredients returns the known substitution keys, longest first so
// callers scanning free text match "sour cream" before "cream".
func (s *SubstitutionService) Ingredients() []string {
	out := make([]string, 0, len(s.substitutions))
	for k := range s.substitutions {
		out = append(out, k)
	}
	sortLongestFirst(out)
	return out
}

// Tips returns cooking tips for a category, falling back to general tips
// for unknown categories.
func (s *SubstitutionService) Tips(category string) []string {
	if tips, ok := s.tips[strings.ToLower(strings.TrimSpace(category))]; ok {
		return tips
	}
	return s.tips["general"]
}

// TipCategories returns the known tip categories, sorted.
func (s *SubstitutionService) TipCategories() []string {
	out := make([]string, 0, len(s.tips))
	for k := range s.tips {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
