// Package server is the HTTP layer: Echo setup, routes, and handlers.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/petr3232-cloud/syndicate-backend/internal/auth"
	"github.com/petr3232-cloud/syndicate-backend/internal/config"
	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
	apperrors "github.com/petr3232-cloud/syndicate-backend/internal/errors"
	"github.com/petr3232-cloud/syndicate-backend/web"
)

// postgresHealthChecker is a minimal interface for database health checks.
type postgresHealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	app       domain.AppService
	tokens    *auth.TokenManager
	db        postgresHealthChecker
	startTime time.Time
}

func NewServer(cfg *config.Config, app domain.AppService, tokens *auth.TokenManager, db postgresHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		app:       app,
		tokens:    tokens,
		db:        db,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/version", s.handleVersion)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Static entry page for the Mini App
	s.echo.FileFS("/", "public/index.html", web.Public)
	s.echo.StaticFS("/static", echo.MustSubFS(web.Public, "public"))

	// Telegram authentication
	s.echo.POST("/auth", s.handleAuth)

	// Data endpoints (Bearer session token required)
	s.echo.GET("/task/:day", s.handleTask, s.requireAuth)
	s.echo.POST("/checklist/toggle", s.handleToggle, s.requireAuth)
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
