package server

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
	apperrors "github.com/petr3232-cloud/syndicate-backend/internal/errors"
)

type toggleRequest struct {
	ChecklistID string `json:"checklist_id"`
	Done        *bool  `json:"done"`
}

type toggleResponse struct {
	OK  bool                  `json:"ok"`
	Row *domain.ChecklistMark `json:"row"`
}

// handleToggle upserts the caller's completion flag for one checklist item.
func (s *Server) handleToggle(c echo.Context) error {
	id, err := telegramID(c)
	if err != nil {
		return err
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Done == nil {
		return apperrors.ValidationError("done is required")
	}
	itemID, err := uuid.Parse(req.ChecklistID)
	if err != nil {
		return apperrors.ValidationError("checklist_id must be a UUID").WithField("checklist_id", req.ChecklistID)
	}

	mark, err := s.app.ToggleChecklist(c.Request().Context(), id, itemID, *req.Done)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		return apperrors.ValidationError("unknown user")
	default:
		return apperrors.InternalError("failed to toggle checklist item", err).
			WithField("checklist_id", itemID.String())
	}

	return c.JSON(200, toggleResponse{OK: true, Row: mark})
}
