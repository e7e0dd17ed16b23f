package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
)

// ChecklistRepo implements domain.ChecklistRepository backed by PostgreSQL.
type ChecklistRepo struct {
	pool *pgxpool.Pool
}

func NewChecklistRepo(pool *pgxpool.Pool) *ChecklistRepo {
	return &ChecklistRepo{pool: pool}
}

func (r *ChecklistRepo) ListItems(ctx context.Context, taskID uuid.UUID) ([]domain.ChecklistItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, task_id, title, position
		FROM task_checklist_items
		WHERE task_id = $1
		ORDER BY position
	`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	var items []domain.ChecklistItem
	for rows.Next() {
		var item domain.ChecklistItem
		if err := rows.Scan(&item.ID, &item.TaskID, &item.Title, &item.Position); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ChecklistRepo) ListMarks(ctx context.Context, userID uuid.UUID) ([]domain.ChecklistMark, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, checklist_item_id, done, updated_at
		FROM user_checklist_items
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist marks: %w", err)
	}
	defer rows.Close()

	var marks []domain.ChecklistMark
	for rows.Next() {
		var mark domain.ChecklistMark
		if err := rows.Scan(&mark.UserID, &mark.ChecklistItemID, &mark.Done, &mark.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checklist mark: %w", err)
		}
		marks = append(marks, mark)
	}
	return marks, rows.Err()
}

// UpsertMark creates or overwrites the caller's completion flag for one item.
// The primary key on (user_id, checklist_item_id) makes concurrent toggles
// collapse onto a single row.
func (r *ChecklistRepo) UpsertMark(ctx context.Context, userID, itemID uuid.UUID, done bool) (*domain.ChecklistMark, error) {
	var mark domain.ChecklistMark
	err := r.pool.QueryRow(ctx, `
		INSERT INTO user_checklist_items (user_id, checklist_item_id, done, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, checklist_item_id) DO UPDATE SET
			done = EXCLUDED.done,
			updated_at = NOW()
		RETURNING user_id, checklist_item_id, done, updated_at
	`, userID, itemID, done).Scan(&mark.UserID, &mark.ChecklistItemID, &mark.Done, &mark.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert checklist mark: %w", err)
	}
	return &mark, nil
}

func (r *ChecklistRepo) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM user_checklist_items
		WHERE user_id = $1 AND done = TRUE
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed marks: %w", err)
	}
	return count, nil
}
