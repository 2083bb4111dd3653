package types

import (
	"github.com/google/uuid"

	"github.com/bytebites/backend/internal/models"
)

// CreateRecipeRequest is the body of POST /api/recipes. Identity and audit
// fields are not accepted from clients.
type CreateRecipeRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=250"`
	Ingredients string `json:"ingredients" validate:"required"`
	Steps       string `json:"steps" validate:"required"`
	CookingTime int    `json:"cookingTime" validate:"required,min=1,max=1440"`
	DietaryTags string `json:"dietaryTags" validate:"max=255"`
}

func (r *CreateRecipeRequest) ToRecipe() *models.Recipe {
	return &models.Recipe{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CookingTime: r.CookingTime,
		DietaryTags: r.DietaryTags,
	}
}

// UpdateRecipeRequest is the body of PUT /api/recipes/:id. ID must match the path.
type UpdateRecipeRequest struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,max=100"`
	Description string    `json:"description" validate:"required,max=250"`
	Ingredients string    `json:"ingredients" validate:"required"`
	Steps       string    `json:"steps" validate:"required"`
	CookingTime int       `json:"cookingTime" validate:"required,min=1,max=1440"`
	DietaryTags string    `json:"dietaryTags" validate:"max=255"`
}

func (r *UpdateRecipeRequest) ToRecipe() *models.Recipe {
	return &models.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CookingTime: r.CookingTime,
		DietaryTags: r.DietaryTags,
	}
}

// FilterRecipesRequest is the body of POST /api/recipes/filter. Every
// field is optional and unknown fields are ignored.
type FilterRecipesRequest struct {
	Title       *string `json:"title"`
	DietaryTags *string `json:"dietaryTags"`
	Ingredients *string `json:"ingredients"`
	CookingTime *int    `json:"cookingTime" validate:"omitempty,min=0"`
}

func (r *FilterRecipesRequest) ToFilter() models.RecipeFilter {
	return models.RecipeFilter{
		Title:          r.Title,
		DietaryTags:    r.DietaryTags,
		Ingredients:    r.Ingredients,
		MaxCookingTime: r.CookingTime,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
