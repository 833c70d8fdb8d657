package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/dbx"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, due_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.DueDate, task.Status).
		Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		item, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByOwner(ctx context.Context, id int64, ownerID string) (*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, due_date, status, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`
	return r.queryOne(ctx, query, id, ownerID)
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, ownerID, title, description string, dueDate *time.Time, status string) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, due_date = $5, status = $6, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, due_date, status, created_at, updated_at
	`
	return r.queryOne(ctx, query, id, ownerID, title, description, dueDate, status)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, ownerID, status string) (*models.Task, error) {
	query := `
		UPDATE tasks
		SET status = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, due_date, status, created_at, updated_at
	`
	return r.queryOne(ctx, query, id, ownerID, status)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) queryOne(ctx context.Context, query string, args ...any) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		item        models.Task
		description sql.NullString
		dueDate     sql.NullTime
	)
	if err := s.Scan(
		&item.ID, &item.UserID, &item.Title, &description, &dueDate,
		&item.Status, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	item.Description = description.String
	if dueDate.Valid {
		d := dueDate.Time
		item.DueDate = &d
	}
	return &item, nil
}
