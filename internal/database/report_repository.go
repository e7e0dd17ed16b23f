package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepo implements domain.ReportRepository backed by PostgreSQL.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Upsert records that a user's checklist progress on a task crossed the
// report threshold. The completed flag only ever moves to true from here.
func (r *ReportRepo) Upsert(ctx context.Context, userID, taskID uuid.UUID, doneCount, totalCount int, completed bool) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO daily_reports (user_id, task_id, checklist_done_count, checklist_total_count, checklist_completed, can_open_report, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		ON CONFLICT (user_id, task_id) DO UPDATE SET
			checklist_done_count = EXCLUDED.checklist_done_count,
			checklist_total_count = EXCLUDED.checklist_total_count,
			checklist_completed = EXCLUDED.checklist_completed,
			can_open_report = TRUE,
			updated_at = NOW()
	`, userID, taskID, doneCount, totalCount, completed)
	if err != nil {
		return fmt.Errorf("failed to upsert daily report: %w", err)
	}
	return nil
}
