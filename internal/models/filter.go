package models

import "strings"

// RecipeFilter is a sparse set of criteria. A nil or empty criterion does
// not participate; present criteria are combined with AND.
type RecipeFilter struct {
	Title       *string
	DietaryTags *string
	Ingredients *string
	// MaxCookingTime is inclusive.
	MaxCookingTime *int
}

// IsEmpty reports whether no criterion is present, in which case every
// recipe matches.
func (f RecipeFilter) IsEmpty() bool {
	return !present(f.Title) && !present(f.DietaryTags) && !present(f.Ingredients) && f.MaxCookingTime == nil
}

// Matches evaluates the filter against a single recipe.
func (f RecipeFilter) Matches(r *Recipe) bool {
	if r == nil {
		return false
	}
	if present(f.Title) && !containsFold(r.Title, *f.Title) {
		return false
	}
	if present(f.DietaryTags) && !containsFold(r.DietaryTags, *f.DietaryTags) {
		return false
	}
	if present(f.Ingredients) && !containsFold(r.Ingredients, *f.Ingredients) {
		return false
	}
	if f.MaxCookingTime != nil && r.CookingTime > *f.MaxCookingTime {
		return false
	}
	return true
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
