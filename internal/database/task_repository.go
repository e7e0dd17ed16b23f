package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
)

// TaskRepo implements domain.TaskRepository backed by PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

func (r *TaskRepo) GetByDay(ctx context.Context, day int) (*domain.Task, error) {
	var task domain.Task
	err := r.pool.QueryRow(ctx, `
		SELECT id, day, title, description, created_at
		FROM tasks
		WHERE day = $1
	`, day).Scan(&task.ID, &task.Day, &task.Title, &task.Description, &task.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return &task, nil
}

func (r *TaskRepo) GetTaskIDForItem(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error) {
	var taskID uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT task_id FROM task_checklist_items WHERE id = $1`, itemID).Scan(&taskID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, domain.ErrItemNotFound
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve task for item: %w", err)
	}
	return taskID, nil
}
