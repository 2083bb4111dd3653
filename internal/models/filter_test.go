package models

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func sampleRecipes() []*Recipe {
	return []*Recipe{
		{Title: "Chocolate Cake", Ingredients: "flour, cocoa, sugar", CookingTime: 60, DietaryTags: "Vegetarian"},
		{Title: "Hot Chocolate", Ingredients: "milk, cocoa", CookingTime: 10, DietaryTags: ""},
		{Title: "Salad", Ingredients: "lettuce, tomato", CookingTime: 10, DietaryTags: "Vegan, Gluten-Free"},
		{Title: "Stew", Ingredients: "beef, carrot", CookingTime: 120, DietaryTags: "Non-Vegetarian"},
		{Title: "Vegan Curry", Ingredients: "chickpeas, coconut", CookingTime: 40, DietaryTags: "Vegan"},
	}
}

func titles(rs []*Recipe) []string {
	return lo.Map(rs, func(r *Recipe, _ int) string { return r.Title })
}

func apply(f RecipeFilter, rs []*Recipe) []*Recipe {
	return lo.Filter(rs, func(r *Recipe, _ int) bool { return f.Matches(r) })
}

func TestRecipeFilter_EmptyMatchesEverything(t *testing.T) {
	f := RecipeFilter{Title: lo.ToPtr("")}

	assert.True(t, f.IsEmpty())
	assert.Len(t, apply(f, sampleRecipes()), 5)
}

func TestRecipeFilter_TitleIsCaseInsensitiveSubstring(t *testing.T) {
	f := RecipeFilter{Title: lo.ToPtr("choc")}

	assert.Equal(t, []string{"Chocolate Cake", "Hot Chocolate"}, titles(apply(f, sampleRecipes())))
}

func TestRecipeFilter_CookingTimeIsInclusive(t *testing.T) {
	recipes := []*Recipe{
		{Title: "a", CookingTime: 29},
		{Title: "b", CookingTime: 30},
		{Title: "c", CookingTime: 31},
	}

	got := apply(RecipeFilter{MaxCookingTime: lo.ToPtr(30)}, recipes)

	assert.Equal(t, []string{"a", "b"}, titles(got))
}

func TestRecipeFilter_CriteriaAreConjunctive(t *testing.T) {
	f := RecipeFilter{DietaryTags: lo.ToPtr("vegan"), MaxCookingTime: lo.ToPtr(15)}

	assert.Equal(t, []string{"Salad"}, titles(apply(f, sampleRecipes())))
}

func TestRecipeFilter_IngredientMatch(t *testing.T) {
	f := RecipeFilter{Ingredients: lo.ToPtr("COCOA")}

	assert.Equal(t, []string{"Chocolate Cake", "Hot Chocolate"}, titles(apply(f, sampleRecipes())))
}

func TestRecipeFilter_MissingTagsNeverMatchTagCriterion(t *testing.T) {
	f := RecipeFilter{DietaryTags: lo.ToPtr("veg")}

	got := titles(apply(f, sampleRecipes()))

	assert.NotContains(t, got, "Hot Chocolate")
	assert.ElementsMatch(t, []string{"Chocolate Cake", "Salad", "Stew", "Vegan Curry"}, got)
}

func TestRecipeFilter_NilRecipe(t *testing.T) {
	assert.False(t, RecipeFilter{}.Matches(nil))
}
