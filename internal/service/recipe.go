package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/bytebites/backend/internal/audit"
	ierr "github.com/bytebites/backend/internal/errors"
	"github.com/bytebites/backend/internal/logger"
	"github.com/bytebites/backend/internal/models"
)

// RecipeStore persists recipes through GORM. The database handle must have
// the audit plugin installed; it supplies stamping, soft deletes and the
// live-record filter on reads.
type RecipeStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewRecipeStore creates a new RecipeStore instance
func NewRecipeStore(db *gorm.DB, log *logger.Logger) *RecipeStore {
	return &RecipeStore{
		db:  db,
		log: log,
	}
}

// ListAll returns every live recipe, oldest first
func (s *RecipeStore) ListAll(ctx context.Context) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&recipes).Error; err != nil {
		return nil, storageError(err, "failed to list recipes")
	}
	return recipes, nil
}

// GetByID returns the live recipe with the given id, or nil when there is none
func (s *RecipeStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(err, "failed to get recipe")
	}
	return &recipe, nil
}

// Add inserts a new recipe owned by actor. Any id, ownership or audit values
// on the input are discarded.
func (s *RecipeStore) Add(ctx context.Context, actor audit.Actor, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.ID = uuid.New()
	recipe.Fields = audit.Fields{}
	recipe.SoftDelete = audit.SoftDelete{}

	if err := audit.As(s.db.WithContext(ctx), actor).Create(recipe).Error; err != nil {
		return nil, storageError(err, "failed to create recipe")
	}

	s.log.Debugw("recipe created", "recipe_id", recipe.ID, "user_id", recipe.UserID)
	return recipe, nil
}

// Update replaces the content fields of an existing live recipe. Creation
// metadata is left as is.
func (s *RecipeStore) Update(ctx context.Context, actor audit.Actor, recipe *models.Recipe) error {
	// The zero UUID is never assigned, and GORM drops zero primary keys
	// from the WHERE clause.
	if recipe.ID == uuid.Nil {
		return notFound(recipe.ID)
	}

	result := audit.As(s.db.WithContext(ctx), actor).
		Model(&models.Recipe{}).
		Where("id = ?", recipe.ID).
		Updates(recipe.ContentColumns())
	if result.Error != nil {
		return storageError(result.Error, "failed to update recipe")
	}
	if result.RowsAffected == 0 {
		return notFound(recipe.ID)
	}

	s.log.Debugw("recipe updated", "recipe_id", recipe.ID, "by", actor.DisplayName())
	return nil
}

// Delete soft-deletes a live recipe
func (s *RecipeStore) Delete(ctx context.Context, actor audit.Actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return notFound(id)
	}

	result := audit.As(s.db.WithContext(ctx), actor).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return storageError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return notFound(id)
	}

	s.log.Debugw("recipe deleted", "recipe_id", id, "by", actor.DisplayName())
	return nil
}

// Filter returns the live recipes matching every present criterion. The
// predicate is evaluated in process so matching is identical on every driver.
func (s *RecipeStore) Filter(ctx context.Context, filter models.RecipeFilter) ([]*models.Recipe, error) {
	recipes, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		return recipes, nil
	}
	return lo.Filter(recipes, func(r *models.Recipe, _ int) bool {
		return filter.Matches(r)
	}), nil
}

// GetByOwner returns the live recipes owned by userID
func (s *RecipeStore) GetByOwner(ctx context.Context, userID string) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, storageError(err, "failed to list recipes by owner")
	}
	return recipes, nil
}

func notFound(id uuid.UUID) error {
	return ierr.NewError("recipe not found").
		WithHintf("Recipe %s was not found", id).
		WithReportableDetails(map[string]any{"id": id.String()}).
		Mark(ierr.ErrNotFound)
}

func storageError(err error, msg string) error {
	return ierr.WithError(err).
		WithMessage(msg).
		WithHint("The recipe store is unavailable").
		Mark(ierr.ErrDatabase)
}
