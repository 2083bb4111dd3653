package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/bytebites/backend/internal/audit"
	"github.com/bytebites/backend/internal/models"
	"github.com/bytebites/backend/internal/types"
)

// IRecipeStore defines recipe persistence. Mutations take the acting user
// explicitly; reads never return soft-deleted recipes.
type IRecipeStore interface {
	ListAll(ctx context.Context) ([]*models.Recipe, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	Add(ctx context.Context, actor audit.Actor, recipe *models.Recipe) (*models.Recipe, error)
	Update(ctx context.Context, actor audit.Actor, recipe *models.Recipe) error
	Delete(ctx context.Context, actor audit.Actor, id uuid.UUID) error
	Filter(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, error)
	GetByOwner(ctx context.Context, userID string) ([]*models.Recipe, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
