package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository persists tasks. Every read and write is scoped to the owning
// user id; a task belonging to someone else behaves exactly like a missing
// one.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Get(ctx context.Context, userID, taskID string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) (*models.Task, error)
}
