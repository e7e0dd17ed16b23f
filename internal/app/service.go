// Package app is the application layer. It is the only component that
// references multiple domain collaborators and it orchestrates all use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/petr3232-cloud/syndicate-backend/internal/auth"
	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
	"github.com/petr3232-cloud/syndicate-backend/internal/telegram"
)

// reportThreshold is the number of completed checklist marks that unlocks a
// daily report.
const reportThreshold = 3

type Service struct {
	users     domain.UserRepository
	tasks     domain.TaskRepository
	checklist domain.ChecklistRepository
	reports   domain.ReportRepository
	tokens    *auth.TokenManager
	botToken  string
}

func NewService(users domain.UserRepository, tasks domain.TaskRepository, checklist domain.ChecklistRepository, reports domain.ReportRepository, tokens *auth.TokenManager, botToken string) *Service {
	return &Service{
		users:     users,
		tasks:     tasks,
		checklist: checklist,
		reports:   reports,
		tokens:    tokens,
		botToken:  botToken,
	}
}

// Authenticate verifies a Telegram initData payload, finds or creates the
// user, and issues a session token. The token is only issued once the user
// row is known to exist.
func (s *Service) Authenticate(ctx context.Context, initData string) (string, error) {
	if err := telegram.Verify(initData, s.botToken); err != nil {
		return "", err
	}

	profile, err := telegram.ParseUser(initData)
	if err != nil {
		return "", err
	}
	telegramID := strconv.FormatInt(profile.ID, 10)

	user, err := s.users.GetByTelegramID(ctx, telegramID)
	if errors.Is(err, domain.ErrUserNotFound) {
		var username *string
		if profile.Username != "" {
			username = &profile.Username
		}
		user, err = s.users.Create(ctx, telegramID, username)
		if err == nil {
			slog.Info("Created user on first login", "telegram_id", telegramID)
		}
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve user: %w", err)
	}

	token, err := s.tokens.Issue(user.TelegramID)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}

// GetDayTask returns the task for a given day together with the caller's
// checklist state. Items carry the user's done flag, defaulting to false.
func (s *Service) GetDayTask(ctx context.Context, telegramID string, day int) (*domain.Task, []domain.ChecklistEntry, error) {
	user, err := s.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, nil, err
	}

	task, err := s.tasks.GetByDay(ctx, day)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.checklist.ListItems(ctx, task.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load checklist items: %w", err)
	}

	marks, err := s.checklist.ListMarks(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load checklist marks: %w", err)
	}

	doneByItem := make(map[uuid.UUID]bool, len(marks))
	for _, mark := range marks {
		doneByItem[mark.ChecklistItemID] = mark.Done
	}

	checklist := make([]domain.ChecklistEntry, len(items))
	for i, item := range items {
		checklist[i] = domain.ChecklistEntry{
			ID:    item.ID,
			Title: item.Title,
			Done:  doneByItem[item.ID],
		}
	}

	return task, checklist, nil
}

// ToggleChecklist upserts the caller's completion flag for one item. Once
// the user's completed count reaches the threshold, the daily report for the
// item's task is upserted with the completed flag set. The trigger is
// monotonic: nothing ever resets it.
func (s *Service) ToggleChecklist(ctx context.Context, telegramID string, itemID uuid.UUID, done bool) (*domain.ChecklistMark, error) {
	user, err := s.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	mark, err := s.checklist.UpsertMark(ctx, user.ID, itemID, done)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert checklist mark: %w", err)
	}

	completed, err := s.checklist.CountCompleted(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed marks: %w", err)
	}

	if completed >= reportThreshold {
		s.recordDailyReport(ctx, user.ID, itemID, completed)
	}

	return mark, nil
}

// recordDailyReport resolves the task owning the toggled item and upserts
// its report. Failures are logged and swallowed: the toggle itself already
// succeeded and the next toggle retriggers the upsert.
func (s *Service) recordDailyReport(ctx context.Context, userID, itemID uuid.UUID, completed int) {
	taskID, err := s.tasks.GetTaskIDForItem(ctx, itemID)
	if err != nil {
		slog.Warn("Skipping daily report, item has no task", "item_id", itemID, "error", err)
		return
	}

	if err := s.reports.Upsert(ctx, userID, taskID, completed, completed, true); err != nil {
		slog.Error("Failed to upsert daily report", "user_id", userID, "task_id", taskID, "error", err)
		return
	}

	slog.Info("Daily report recorded", "user_id", userID, "task_id", taskID, "completed", completed)
}
