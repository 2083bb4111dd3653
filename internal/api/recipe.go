package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ierr "github.com/bytebites/backend/internal/errors"
	"github.com/bytebites/backend/internal/logger"
	"github.com/bytebites/backend/internal/middleware"
	"github.com/bytebites/backend/internal/service"
	"github.com/bytebites/backend/internal/types"
	"github.com/bytebites/backend/internal/validator"
)

type RecipeHandler struct {
	store service.IRecipeStore
	log   *logger.Logger
}

func NewRecipeHandler(store service.IRecipeStore, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		store: store,
		log:   log,
	}
}

// RegisterRoutes mounts the recipe endpoints. auth guards mutations and
// limiters run after it so they can key on the principal.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc, limiters ...gin.HandlerFunc) {
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(limiters)+2)
		chain = append(chain, auth)
		chain = append(chain, limiters...)
		return append(chain, handler)
	}

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/user/:userId", h.GetRecipesByOwner)
		recipes.POST("/filter", h.FilterRecipes)
		recipes.POST("", guarded(h.CreateRecipe)...)
		recipes.PUT("/:id", guarded(h.UpdateRecipe)...)
		recipes.DELETE("/:id", guarded(h.DeleteRecipe)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeListItems(recipes))
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(recipeNotFound(c.Param("id")))
		return
	}

	recipe, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if recipe == nil {
		_ = c.Error(recipeNotFound(id.String()))
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		_ = c.Error(unauthenticated())
		return
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}
	if err := validator.ValidateRequest(&req); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.store.Add(c.Request.Context(), actor, req.ToRecipe())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Location", "/api/recipes/"+recipe.ID.String())
	c.JSON(http.StatusCreated, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		_ = c.Error(unauthenticated())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		_ = c.Error(ierr.NewError("invalid recipe id").
			WithHint("Recipe id must be a valid UUID").
			Mark(ierr.ErrValidation))
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidBody(err))
		return
	}
	if req.ID != id {
		_ = c.Error(ierr.NewError("recipe id mismatch").
			WithHint("Recipe id in the path and body must match").
			WithReportableDetails(map[string]any{"pathId": id.String(), "bodyId": req.ID.String()}).
			Mark(ierr.ErrValidation))
		return
	}
	if err := validator.ValidateRequest(&req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.store.Update(c.Request.Context(), actor, req.ToRecipe()); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if recipe == nil {
		_ = c.Error(recipeNotFound(id.String()))
		return
	}

	c.JSON(http.StatusOK, types.NewRecipeResponse(recipe))
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		_ = c.Error(unauthenticated())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(recipeNotFound(c.Param("id")))
		return
	}

	if err := h.store.Delete(c.Request.Context(), actor, id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// FilterRecipes accepts an empty body as "no criteria"
func (h *RecipeHandler) FilterRecipes(c *gin.Context) {
	var req types.FilterRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(invalidBody(err))
		return
	}
	if err := validator.ValidateRequest(&req); err != nil {
		_ = c.Error(err)
		return
	}

	recipes, err := h.store.Filter(c.Request.Context(), req.ToFilter())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

func (h *RecipeHandler) GetRecipesByOwner(c *gin.Context) {
	recipes, err := h.store.GetByOwner(c.Request.Context(), c.Param("userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.NewRecipeResponses(recipes))
}

func recipeNotFound(id string) error {
	return ierr.NewError("recipe not found").
		WithHintf("Recipe %s was not found", id).
		Mark(ierr.ErrNotFound)
}

func unauthenticated() error {
	return ierr.NewError("missing principal").
		WithHint("Authentication required").
		Mark(ierr.ErrUnauthorized)
}

func invalidBody(err error) error {
	return ierr.WithError(err).
		WithHint("Invalid request body").
		Mark(ierr.ErrValidation)
}
