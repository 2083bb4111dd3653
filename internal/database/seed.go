package database

import (
	"context"
	"fmt"

	"github.com/bytebites/backend/internal/audit"
	"github.com/bytebites/backend/internal/models"
)

// RecipeSeeder is the subset of the recipe store used for seeding.
type RecipeSeeder interface {
	ListAll(ctx context.Context) ([]*models.Recipe, error)
	Add(ctx context.Context, actor audit.Actor, recipe *models.Recipe) (*models.Recipe, error)
}

// SampleRecipes returns the starter catalogue.
func SampleRecipes() []*models.Recipe {
	return []*models.Recipe{
		{
			Title:       "Spaghetti Bolognese",
			Description: "A classic Italian pasta dish with a rich, meaty sauce.",
			Ingredients: "Spaghetti, Ground Beef, Tomato Sauce, Onion, Garlic, Olive Oil, Salt, Pepper",
			Steps:       "1. Cook spaghetti. 2. Brown beef with onion and garlic. 3. Add tomato sauce and simmer. 4. Serve over spaghetti.",
			CookingTime: 45,
			DietaryTags: "Non-Vegetarian, Italian",
		},
		{
			Title:       "Vegetarian Chili",
			Description: "A hearty, spicy chili packed with beans and vegetables.",
			Ingredients: "Kidney Beans, Black Beans, Tomatoes, Bell Peppers, Onion, Garlic, Chili Powder, Cumin",
			Steps:       "1. Saute onion, garlic and peppers. 2. Add beans, tomatoes and spices. 3. Simmer for 30 minutes.",
			CookingTime: 50,
			DietaryTags: "Vegetarian, Vegan, Gluten-Free",
		},
		{
			Title:       "Chicken Stir-Fry",
			Description: "Quick chicken and vegetable stir-fry in a savoury soy glaze.",
			Ingredients: "Chicken Breast, Broccoli, Carrots, Soy Sauce, Ginger, Garlic, Vegetable Oil",
			Steps:       "1. Slice chicken and vegetables. 2. Stir-fry chicken until cooked. 3. Add vegetables and sauce. 4. Serve hot.",
			CookingTime: 30,
			DietaryTags: "Non-Vegetarian, Asian",
		},
	}
}

// SeedRecipes inserts the sample recipes as the system user when the store
// holds no live recipe. It returns how many recipes were added.
func SeedRecipes(ctx context.Context, store RecipeSeeder) (int, error) {
	existing, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing recipes: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	added := 0
	for _, recipe := range SampleRecipes() {
		if _, err := store.Add(ctx, audit.System, recipe); err != nil {
			return added, fmt.Errorf("failed to seed recipe %q: %w", recipe.Title, err)
		}
		added++
	}
	return added, nil
}
