package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petr3232-cloud/syndicate-backend/internal/domain"
)

// userColumns must match the Scan order in scanUser.
const userColumns = `id, telegram_id, username, points, level, is_admin, created_at, updated_at`

// defaultLevel is the label assigned to freshly created users.
const defaultLevel = "Новичок"

// UserRepo implements domain.UserRepository backed by PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.TelegramID, &user.Username, &user.Points,
		&user.Level, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByTelegramID(ctx context.Context, telegramID string) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// Create inserts a user with default profile fields. Two concurrent first
// logins for the same Telegram id race on the unique constraint, so the
// insert is an upsert that returns the surviving row.
func (r *UserRepo) Create(ctx context.Context, telegramID string, username *string) (*domain.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, `
		INSERT INTO users (telegram_id, username, points, level, is_admin, created_at, updated_at)
		VALUES ($1, $2, 0, $3, FALSE, NOW(), NOW())
		ON CONFLICT (telegram_id) DO UPDATE SET updated_at = NOW()
		RETURNING `+userColumns+`
	`, telegramID, username, defaultLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
