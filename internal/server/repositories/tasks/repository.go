package tasks

import (
	"context"

	"github.com/taskflow/taskflow/internal/server/models"
)

// Repository is the storage contract for tasks. Every method takes the
// owner's user id and is scoped to it; a task owned by another user is
// indistinguishable from a missing one.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	GetByID(ctx context.Context, userID string, id int64) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, userID string, id int64) error
}
