package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository abstracts user persistence.
type UserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID string) (*User, error)
	Create(ctx context.Context, telegramID string, username *string) (*User, error)
}

// TaskRepository abstracts task lookups.
type TaskRepository interface {
	GetByDay(ctx context.Context, day int) (*Task, error)
	GetTaskIDForItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
}

// ChecklistRepository abstracts checklist items and per-user marks.
type ChecklistRepository interface {
	ListItems(ctx context.Context, taskID uuid.UUID) ([]ChecklistItem, error)
	ListMarks(ctx context.Context, userID uuid.UUID) ([]ChecklistMark, error)
	UpsertMark(ctx context.Context, userID, itemID uuid.UUID, done bool) (*ChecklistMark, error)
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)
}

// ReportRepository abstracts daily report persistence.
type ReportRepository interface {
	Upsert(ctx context.Context, userID, taskID uuid.UUID, doneCount, totalCount int, completed bool) error
}

// AppService is the application layer consumed by the HTTP server.
type AppService interface {
	Authenticate(ctx context.Context, initData string) (string, error)
	GetDayTask(ctx context.Context, telegramID string, day int) (*Task, []ChecklistEntry, error)
	ToggleChecklist(ctx context.Context, telegramID string, itemID uuid.UUID, done bool) (*ChecklistMark, error)
}
