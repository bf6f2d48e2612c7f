// Package server contains the HTTP handlers for the application's pages and API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"vulnsocial/internal/config"
	"vulnsocial/internal/flash"
	"vulnsocial/internal/middleware"
	"vulnsocial/internal/models"
	"vulnsocial/internal/render"
	"vulnsocial/internal/seed"
	"vulnsocial/internal/session"
	"vulnsocial/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	store          *store.Store
	session        *session.Manager
	flash          *flash.Center
	renderer       *render.Renderer
	promMiddleware *fiberprometheus.FiberPrometheus
	app            *fiber.App
}

// NewServer creates a server instance with a freshly seeded store.
func NewServer(cfg *config.Config) (*Server, error) {
	st := store.New()
	if err := seed.Apply(st, seed.Options{ExtraUsers: cfg.SeedExtraUsers}); err != nil {
		return nil, fmt.Errorf("seeding failed: %w", err)
	}

	srv, err := NewServerWithDeps(cfg, st, session.NewManager(), flash.NewCenter(flash.DefaultTTL))
	if err != nil {
		return nil, err
	}

	// Prometheus collectors register globally, so the HTTP metrics
	// middleware is only created on this path. Tests build servers through
	// NewServerWithDeps and skip it.
	srv.promMiddleware = middleware.InitMetrics("vulnsocial")
	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when the caller performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, st *store.Store, sess *session.Manager, center *flash.Center) (*Server, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	return &Server{
		config:   cfg,
		store:    st,
		session:  sess,
		flash:    center,
		renderer: renderer,
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New())

	// Expose the session user to the logging context. The session is
	// process-wide, so this is a read, not an authentication step.
	app.Use(func(c *fiber.Ctx) error {
		if u := s.session.Current(); u != nil {
			c.Locals("userID", u.ID)
		}
		return c.Next()
	})

	// Context middleware to propagate request ID and user ID into slog
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Structured request logging
	app.Use(middleware.StructuredLogger())

	// No helmet here: CSP and browser XSS filtering headers would mask the
	// exact behaviors the pages exist to show. The cross-origin posture is
	// part of the CSRF surface as well.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
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

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "VulnSocial Metrics Dashboard",
	}))

	// Page routes
	app.Get("/", s.Index)
	app.Post("/login", s.Login)
	app.Post("/logout", s.Logout)
	app.Post("/posts", s.CreatePost)
	app.Get("/search", s.SearchUsers)
	app.Get("/profile", s.MyProfile)
	app.Get("/users/profile", s.ViewProfile)
	app.Get("/settings", s.SettingsForm)
	app.Post("/settings", s.UpdateSettings)

	// Admin pages. The role check lives inside the handlers, against the
	// process-wide session only; there is nothing else guarding these.
	app.Get("/admin/users", s.AdminUsers)
	app.Post("/admin/users/delete", s.AdminDeleteUser)

	// Debug backdoor, on by default. Disable with DEBUG_API=false.
	if s.config.DebugAPI {
		debug := app.Group("/api/debug")
		debug.Get("/current-user", s.DebugCurrentUser)
		debug.Get("/users", s.DebugUsers)
		debug.Get("/posts", s.DebugPosts)
		debug.Post("/set-admin", s.DebugSetAdmin)
	}
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The only dependency is
// the in-memory store, which is ready once it holds seed data.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	storeStatus := "healthy"
	status := fiber.StatusOK
	overallStatus := "healthy"
	if s.store.UserCount() == 0 {
		storeStatus = "empty"
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "VulnSocial",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"store": storeStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "VulnSocial",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
				slog.String("error", err.Error()))
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		return s.app.ShutdownWithContext(ctx)
	}
	return nil
}
