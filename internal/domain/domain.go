package domain

import (
	"time"

	"github.com/google/uuid"
)

// --- Model types ---

// User is a Telegram Mini App user. Users are created lazily on first
// successful authentication and are never deleted.
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TelegramID string    `json:"telegram_id" db:"telegram_id"`
	Username   *string   `json:"username" db:"username"`
	Points     int       `json:"points" db:"points"`
	Level      string    `json:"level" db:"level"`
	IsAdmin    bool      `json:"is_admin" db:"is_admin"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Task is the content shown for one day of the program.
type Task struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Day         int       `json:"day" db:"day"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ChecklistItem is one entry of a task's checklist, shared by all users.
type ChecklistItem struct {
	ID       uuid.UUID `json:"id" db:"id"`
	TaskID   uuid.UUID `json:"task_id" db:"task_id"`
	Title    string    `json:"title" db:"title"`
	Position int       `json:"position" db:"position"`
}

// ChecklistMark is a per-user completion flag for one checklist item.
// Marks are upserted and never deleted.
type ChecklistMark struct {
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	ChecklistItemID uuid.UUID `json:"checklist_item_id" db:"checklist_item_id"`
	Done            bool      `json:"done" db:"done"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// ChecklistEntry is a checklist item merged with the caller's mark,
// as rendered on the task endpoint.
type ChecklistEntry struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Done  bool      `json:"done"`
}

// DailyReport is the derived record signaling a user has completed enough
// checklist items on a task to unlock report submission. The completed flag
// is a one-way ratchet: no code path resets it.
type DailyReport struct {
	UserID              uuid.UUID `json:"user_id" db:"user_id"`
	TaskID              uuid.UUID `json:"task_id" db:"task_id"`
	ChecklistDoneCount  int       `json:"checklist_done_count" db:"checklist_done_count"`
	ChecklistTotalCount int       `json:"checklist_total_count" db:"checklist_total_count"`
	ChecklistCompleted  bool      `json:"checklist_completed" db:"checklist_completed"`
	CanOpenReport       bool      `json:"can_open_report" db:"can_open_report"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
