// Package server contains the HTTP handlers exposing the state stores and
// trending stubs to clients.
package server

import (
	"context"
	"fmt"
	"time"

	"ripple/internal/config"
	"ripple/internal/middleware"
	"ripple/internal/observability"
	"ripple/internal/storage"
	"ripple/internal/store"
	"ripple/internal/trending"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"log/slog"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	logger         *slog.Logger
	kv             storage.KV
	userStore      *store.UserStore
	postStore      *store.PostStore
	news           *trending.NewsService
	videos         *trending.VideoService
	promMiddleware *fiberprometheus.FiberPrometheus
	tracingStop    func(context.Context) error
}

// NewServer creates a server instance, opening the configured storage driver
// and loading both stores.
func NewServer(cfg *config.Config) (*Server, error) {
	var kv storage.KV
	switch cfg.StorageDriver {
	case "sqlite":
		s, err := storage.OpenSQLite(cfg.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("storage driver: %w", err)
		}
		kv = s
	case "redis":
		kv = storage.OpenRedis(cfg.RedisURL)
	case "memory":
		kv = storage.NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	return NewServerWithDeps(cfg, kv)
}

// NewServerWithDeps creates a Server using an already-initialized storage
// driver. Use this in tests or when a bootstrap layer owns the storage.
func NewServerWithDeps(cfg *config.Config, kv storage.KV) (*Server, error) {
	logger := observability.NewLogger(cfg.Env)

	userStore := store.NewUserStore(kv, logger)
	postStore := store.NewPostStore(kv, userStore, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	userStore.Load(ctx)
	postStore.Load(ctx)

	latency := time.Duration(cfg.TrendingDelay) * time.Millisecond

	tracingStop, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "ripple-api",
		ServiceVersion: "1.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExport,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init: %w", err)
	}

	return &Server{
		config:         cfg,
		logger:         logger,
		kv:             kv,
		userStore:      userStore,
		postStore:      postStore,
		news:           trending.NewNewsService(latency),
		videos:         trending.NewVideoService(latency),
		promMiddleware: middleware.InitMetrics("ripple-api"),
		tracingStop:    tracingStop,
	}, nil
}

// Logger exposes the server's logger for the process entry point.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(middleware.StructuredLogger(s.logger))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")

	// Feed
	api.Get("/feed", s.GetFeed)
	api.Post("/feed/refresh", s.RefreshFeed)

	// Posts
	posts := api.Group("/posts")
	posts.Post("/", s.CreatePost)
	posts.Post("/:id/like", s.LikePost)
	posts.Delete("/:id/like", s.UnlikePost)
	posts.Get("/:id/liked", s.GetPostLiked)
	posts.Post("/:id/comments", s.AddComment)

	// Users
	users := api.Group("/users")
	users.Get("/", s.GetAllUsers)
	users.Post("/:id/follow", s.FollowUser)
	users.Delete("/:id/follow", s.UnfollowUser)
	users.Get("/:username/posts", s.GetUserPosts)
	users.Get("/:username", s.GetUserProfile)

	// Current user
	api.Get("/me", s.GetMyProfile)
	api.Put("/me/profile", s.UpdateMyProfile)
	api.Post("/session", s.SwitchSession)
	api.Delete("/session", s.ClearSession)

	// Trending stubs
	api.Get("/trending/news", s.GetTrendingNews)
	api.Get("/trending/videos", s.GetTrendingVideos)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether storage is reachable. Storage being down is
// not fatal (state degrades to memory-only), so this never returns an error
// status; it just reports.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	storageState := "ok"
	if _, _, err := s.kv.Get(c.Context(), "users"); err != nil {
		storageState = "degraded"
	}
	return c.JSON(fiber.Map{"status": "ok", "storage": storageState})
}

// Shutdown flushes pending snapshot writes and releases resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.postStore.Close()
	s.userStore.Close()
	if s.tracingStop != nil {
		if err := s.tracingStop(ctx); err != nil {
			s.logger.Error("tracing shutdown failed", "error", err)
		}
	}
	return s.kv.Close()
}
