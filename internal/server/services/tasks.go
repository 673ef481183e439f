package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TaskCreate carries the fields of a new task.
type TaskCreate struct {
	Title          string
	Description    string
	Priority       models.Priority
	ExpirationDate *time.Time
}

// TaskPatch carries a partial update. Nil fields keep their current values.
type TaskPatch struct {
	Title          *string
	Description    *string
	Priority       *models.Priority
	ExpirationDate *time.Time
}

// TaskService implements the ownership-scoped task operations. Every call
// takes the authenticated owner's id; tasks of other users are
// indistinguishable from missing ones.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService over the given connection pool.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// List returns the owner's tasks, newest first.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	tasks, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return tasks, nil
}

// Create validates and persists a new task for the owner.
func (s *TaskService) Create(ctx context.Context, userID string, in TaskCreate) (*models.Task, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if !in.Priority.Valid() {
		return nil, fmt.Errorf("%w: priority must be low, medium, or high", common.ErrorValidation)
	}

	repo := s.repomanager.Tasks(s.db)
	task, err := repo.Create(ctx, &models.Task{
		UserID:         userID,
		Title:          in.Title,
		Description:    in.Description,
		Priority:       in.Priority,
		ExpirationDate: in.ExpirationDate,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// Get returns the owner's task. Missing, foreign-owned, and malformed ids all
// yield common.ErrorNotFound.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*models.Task, error) {
	if uuid.Validate(taskID) != nil {
		return nil, common.ErrorNotFound
	}

	repo := s.repomanager.Tasks(s.db)
	return repo.Get(ctx, userID, taskID)
}

// Update applies a field-level merge to the owner's task inside a
// transaction: the current row is read, only non-nil patch fields are
// overlaid, and the result is written back with a refreshed updated_at.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch TaskPatch) (*models.Task, error) {
	if uuid.Validate(taskID) != nil {
		return nil, common.ErrorNotFound
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrorValidation)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, fmt.Errorf("%w: priority must be low, medium, or high", common.ErrorValidation)
	}

	var updated *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		task, err := repo.Get(ctx, userID, taskID)
		if err != nil {
			return err
		}

		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Priority != nil {
			task.Priority = *patch.Priority
		}
		if patch.ExpirationDate != nil {
			task.ExpirationDate = patch.ExpirationDate
		}

		updated, err = repo.Update(ctx, task)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the owner's task and returns the deleted snapshot.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) (*models.Task, error) {
	if uuid.Validate(taskID) != nil {
		return nil, common.ErrorNotFound
	}

	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, userID, taskID)
}
