package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskflow/taskflow/internal/common"
	"github.com/taskflow/taskflow/internal/dbx"
	"github.com/taskflow/taskflow/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (user_id, title, description, is_completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.IsCompleted, task.CreatedAt, task.UpdatedAt).
		Scan(&task.ID)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, is_completed, created_at, updated_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return tasks, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string, id int64) (*models.Task, error) {
	query :=
		`SELECT id, user_id, title, description, is_completed, created_at, updated_at FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return t, nil
}

// Update rewrites the mutable columns of a task. The WHERE clause carries
// the owner filter, so updating someone else's task reports ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, task *models.Task) (*models.Task, error) {
	query :=
		`UPDATE tasks SET title = $1, description = $2, is_completed = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6
		 `

	res, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.IsCompleted, task.UpdatedAt, task.ID, task.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string, id int64) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
