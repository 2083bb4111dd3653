package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bytebites/backend/config"
	"github.com/bytebites/backend/internal/database"
	"github.com/bytebites/backend/internal/logger"
	"github.com/bytebites/backend/internal/middleware"
	"github.com/bytebites/backend/internal/router"
	"github.com/bytebites/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	log    *logger.Logger
	db     *gorm.DB
	redis  *redis.Client
	router *gin.Engine
	http   *http.Server
}

// New connects to the database (and Redis when configured), prepares the
// schema and wires the HTTP routes.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Server, error) {
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	srv, err := NewWithDB(ctx, cfg, log, db)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return srv, nil
}

// NewWithDB builds a server around an already opened database
func NewWithDB(ctx context.Context, cfg *config.Config, log *logger.Logger, db *gorm.DB) (*Server, error) {
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}

	store := service.NewRecipeStore(db, log)
	if cfg.Seed {
		n, err := database.SeedRecipes(ctx, store)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			log.Infow("seeded sample recipes", "count", n)
		}
	}

	s := &Server{cfg: cfg, log: log, db: db}

	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		limitCfg := middleware.RateLimitConfig{
			Window:    cfg.RateLimit.Window,
			Limit:     cfg.RateLimit.Limit,
			KeyPrefix: "bytebites:ratelimit",
		}
		if cfg.Redis.Enabled() {
			client, err := database.NewRedisClient(cfg.Redis, log)
			if err != nil {
				return nil, err
			}
			s.redis = client
			limiter = middleware.NewRedisLimiter(client, limitCfg)
		} else {
			limiter = middleware.NewLocalLimiter(limitCfg)
		}
	}

	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = router.SetupRouter(router.Options{
		Logger:      log,
		AuthService: service.NewAuthService(db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		RecipeStore: store,
		Health: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
		Limiter:        limiter,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	return s, nil
}

// Handler exposes the configured routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Address(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	s.log.Infow("starting server", "addr", s.http.Addr, "env", s.cfg.Env)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server and releases the connections it owns
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.http != nil {
		errs = append(errs, s.http.Shutdown(ctx))
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	errs = append(errs, database.Close(s.db))
	return errors.Join(errs...)
}
