package server

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
	apperrors "github.com/petr3232-cloud/syndicate-backend/internal/errors"
)

type taskResponse struct {
	OK        bool                    `json:"ok"`
	Task      *domain.Task            `json:"task,omitempty"`
	Checklist []domain.ChecklistEntry `json:"checklist,omitempty"`
}

// handleTask returns the task for a day with the caller's checklist state.
// A missing user or task is a legitimate business state for the Mini App,
// rendered as ok:false with HTTP 200 rather than an error status.
func (s *Server) handleTask(c echo.Context) error {
	id, err := telegramID(c)
	if err != nil {
		return err
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return apperrors.ValidationError("day must be an integer").WithField("day", c.Param("day"))
	}

	task, checklist, err := s.app.GetDayTask(c.Request().Context(), id, day)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrTaskNotFound):
		return c.JSON(200, taskResponse{OK: false})
	default:
		return apperrors.InternalError("failed to load task", err).WithField("day", day)
	}

	if checklist == nil {
		checklist = []domain.ChecklistEntry{}
	}
	return c.JSON(200, taskResponse{OK: true, Task: task, Checklist: checklist})
}
