package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/taskflow/taskflow/internal/dbx"
	"github.com/taskflow/taskflow/internal/server/models"
	"github.com/taskflow/taskflow/internal/server/repositories/repomanager"
)

// TaskPatch carries a partial task update; nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	IsCompleted *bool
}

// TaskService runs task operations scoped to the authenticated user. The
// user id parameter on every method comes from a verified token, never from
// client payloads.
type TaskService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repos: m}
}

func (s *TaskService) Create(ctx context.Context, userID, title string, description *string) (*models.Task, error) {
	now := time.Now().UTC()
	task := &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repos.Tasks(s.db).Create(ctx, task)
}

func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	return s.repos.Tasks(s.db).ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, userID string, id int64) (*models.Task, error) {
	return s.repos.Tasks(s.db).GetByID(ctx, userID, id)
}

// Update applies a partial patch inside a transaction so the read and the
// write see the same row.
func (s *TaskService) Update(ctx context.Context, userID string, id int64, patch TaskPatch) (*models.Task, error) {
	var updated *models.Task

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Tasks(tx)

		task, err := repo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = patch.Description
		}
		if patch.IsCompleted != nil {
			task.IsCompleted = *patch.IsCompleted
		}
		task.UpdatedAt = time.Now().UTC()

		updated, err = repo.Update(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, userID string, id int64) error {
	return s.repos.Tasks(s.db).Delete(ctx, userID, id)
}
