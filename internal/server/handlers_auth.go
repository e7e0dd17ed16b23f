package server

import (
	"errors"

	"github.com/labstack/echo/v4"

	apperrors "github.com/petr3232-cloud/syndicate-backend/internal/errors"
	"github.com/petr3232-cloud/syndicate-backend/internal/telegram"
)

type authRequest struct {
	InitData string `json:"initData"`
}

type authResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

// handleAuth exchanges a signed Telegram initData payload for a session token.
func (s *Server) handleAuth(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.InitData == "" {
		return apperrors.ValidationError("initData is required")
	}

	token, err := s.app.Authenticate(c.Request().Context(), req.InitData)
	switch {
	case err == nil:
	case errors.Is(err, telegram.ErrHashMissing), errors.Is(err, telegram.ErrInvalidSignature):
		return apperrors.ForbiddenError("telegram signature verification failed")
	case errors.Is(err, telegram.ErrUserMissing):
		return apperrors.ValidationError("initData has no user profile")
	default:
		return apperrors.InternalError("authentication failed", err)
	}

	return c.JSON(200, authResponse{OK: true, Token: token})
}
