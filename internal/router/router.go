package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bytebites/backend/internal/api"
	"github.com/bytebites/backend/internal/logger"
	"github.com/bytebites/backend/internal/middleware"
	"github.com/bytebites/backend/internal/service"
)

// Options carries the pieces SetupRouter wires together
type Options struct {
	Logger         *logger.Logger
	AuthService    service.IAuthService
	RecipeStore    service.IRecipeStore
	Health         api.Pinger
	Limiter        middleware.Limiter
	AllowedOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		gin.Recovery(),
		middleware.ErrorHandler(opts.Logger),
		middleware.CORSMiddleware(opts.AllowedOrigins),
	)

	router.GET("/health", api.NewHealthHandler(opts.Health).HealthCheck)

	var limiters []gin.HandlerFunc
	if opts.Limiter != nil {
		limiters = append(limiters, middleware.RateLimit(opts.Limiter, opts.Logger))
	}

	v1 := router.Group("/api")

	api.NewAuthHandler(opts.AuthService).RegisterRoutes(v1, limiters...)
	api.NewRecipeHandler(opts.RecipeStore, opts.Logger).
		RegisterRoutes(v1, middleware.AuthMiddleware(opts.AuthService), limiters...)

	return router
}
