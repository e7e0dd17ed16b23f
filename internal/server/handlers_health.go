package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petr3232-cloud/syndicate-backend/internal/version"
)

// handleHealth is the plain liveness probe.
func (s *Server) handleHealth(c echo.Context) error {
	return c.String(200, "OK")
}

// handleReadiness pings the database before declaring the process ready.
func (s *Server) handleReadiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		return c.JSON(503, map[string]any{
			"status":       "unhealthy",
			"failed_check": "postgres",
			"error":        err.Error(),
		})
	}

	return c.JSON(200, map[string]any{
		"status": "ready",
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
