package server

import (
	"fmt"
	"net/http"
	"time"

	"catalog-service/internal/clock"
	"catalog-service/internal/config"
	"catalog-service/internal/database"
	custommiddleware "catalog-service/internal/middleware"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"catalog-service/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "catalog_rate_limit"

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     database.Service
	redis  *redis.Client
}

// NewServer wires the catalog repositories, services and handlers onto one router.
// redisClient may be nil, in which case rate limiting is skipped.
func NewServer(cfg *config.Config, logger *zap.Logger, db database.Service, redisClient *redis.Client) *Server {
	clk := clock.NewRealClock()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db.DB())
	brandRepo := repository.NewBrandRepository(db.DB())
	categoryRepo := repository.NewCategoryRepository(db.DB())

	// Initialize services
	productService := service.NewProductService(productRepo, clk, logger)
	brandService := service.NewBrandService(brandRepo, clk, logger)
	categoryService := service.NewCategoryService(categoryRepo, clk, logger)

	var limiter redis.Cmdable
	if redisClient != nil {
		limiter = redisClient
	}
	router := newRouter(cfg, logger, db, limiter)

	guards := newGuards(cfg.JWT, logger)
	transport.NewProductHandler(productService, logger).RegisterRoutes(router, guards)
	transport.NewBrandHandler(brandService, logger).RegisterRoutes(router, guards)
	transport.NewCategoryHandler(categoryService, logger).RegisterRoutes(router, guards)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}
}

func newRouter(cfg *config.Config, logger *zap.Logger, db database.Service, limiter redis.Cmdable) chi.Router {
	router := chi.NewRouter()

	router.Use(custommiddleware.DefaultMiddlewareStack()...)
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.IsDevelopment()))

	if cfg.RateLimit.Enabled && limiter != nil {
		router.Use(custommiddleware.RateLimitMiddleware(limiter, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.Requests,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         rateLimitKeyPrefix,
		}, logger))
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := db.Health()
		status := http.StatusOK
		if health["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		custommiddleware.RespondWithJSON(w, status, health)
	})

	return router
}

// newGuards leaves mutating routes open when no JWT secret is configured
func newGuards(cfg config.JWTConfig, logger *zap.Logger) transport.Guards {
	if cfg.Secret == "" {
		logger.Warn("JWT secret not configured, catalog write routes are unauthenticated")
		return transport.Guards{}
	}

	auth := custommiddleware.AuthMiddleware(cfg.Secret, logger)
	return transport.Guards{
		Write: []func(http.Handler) http.Handler{
			auth,
			custommiddleware.RequireRole([]string{custommiddleware.RoleAdmin, custommiddleware.RoleEditor}, logger),
		},
		Delete: []func(http.Handler) http.Handler{
			auth,
			custommiddleware.RequireAdmin(logger),
		},
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
