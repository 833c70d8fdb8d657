package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/tasks"
)

// TaskService implements the ownership-enforcing task operations. The owner
// id always comes from the resolved session identity; because every
// repository call is owner-scoped, a foreign task and a missing task are both
// reported as common.ErrorNotFound.
type TaskService struct {
	repo tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo}
}

// List returns all tasks of the owner, newest first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	result, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// Create adds a task for the owner. An empty title yields
// common.ErrorValidation. Status starts as the default.
func (s *TaskService) Create(ctx context.Context, ownerID, title, description string, dueDate *time.Time) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorValidation
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      models.DefaultTaskStatus,
		UserID:      ownerID,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}
	return created, nil
}

// Get returns a single task of the owner.
func (s *TaskService) Get(ctx context.Context, id int64, ownerID string) (*models.Task, error) {
	return s.repo.GetByOwner(ctx, id, ownerID)
}

// Update rewrites title, description, due date and status. The owner
// reference cannot be changed through this call.
func (s *TaskService) Update(ctx context.Context, id int64, ownerID, title, description string, dueDate *time.Time, status string) (*models.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.ErrorValidation
	}
	return s.repo.Update(ctx, id, ownerID, title, description, dueDate, status)
}

// UpdateStatus rewrites only the status field. Any string is accepted: the
// status vocabulary is deliberately unconstrained.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, ownerID, status string) (*models.Task, error) {
	return s.repo.UpdateStatus(ctx, id, ownerID, status)
}

// Delete permanently removes the owner's task.
func (s *TaskService) Delete(ctx context.Context, id int64, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}
