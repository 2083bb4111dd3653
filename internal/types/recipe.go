package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/bytebites/backend/internal/models"
)

// RecipeResponse is the full representation of a live recipe.
type RecipeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Ingredients string     `json:"ingredients"`
	Steps       string     `json:"steps"`
	CookingTime int        `json:"cookingTime"`
	DietaryTags string     `json:"dietaryTags,omitempty"`
	UserID      string     `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   string     `json:"createdBy"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy   *string    `json:"updatedBy,omitempty"`
}

// RecipeListItem is the summary returned by GET /api/recipes.
type RecipeListItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewRecipeResponse(r *models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CookingTime: r.CookingTime,
		DietaryTags: r.DietaryTags,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
		CreatedBy:   r.CreatedBy,
		UpdatedAt:   r.UpdatedAt,
		UpdatedBy:   r.UpdatedBy,
	}
}

func NewRecipeResponses(rs []*models.Recipe) []RecipeResponse {
	return lo.Map(rs, func(r *models.Recipe, _ int) RecipeResponse {
		return NewRecipeResponse(r)
	})
}

func NewRecipeListItems(rs []*models.Recipe) []RecipeListItem {
	return lo.Map(rs, func(r *models.Recipe, _ int) RecipeListItem {
		return RecipeListItem{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			CreatedBy:   r.CreatedBy,
			CreatedAt:   r.CreatedAt,
		}
	})
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
