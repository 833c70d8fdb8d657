// Package tasks provides the task store: to-do items persisted in the
// relational database, always scoped by owning user.
package tasks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// Repository is the task store contract. Every lookup and mutation is scoped
// by owner id, so a task that exists but belongs to someone else is
// indistinguishable from one that does not exist: both yield
// common.ErrorNotFound.
type Repository interface {
	// Create persists a task and returns it with id and timestamps assigned.
	Create(ctx context.Context, task *models.Task) (*models.Task, error)

	// ListByOwner returns all tasks of an owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error)

	// GetByOwner returns a single task of an owner.
	GetByOwner(ctx context.Context, id int64, ownerID string) (*models.Task, error)

	// Update rewrites title, description, due date and status of an owner's
	// task and returns the updated row. The owner reference is immutable.
	Update(ctx context.Context, id int64, ownerID, title, description string, dueDate *time.Time, status string) (*models.Task, error)

	// UpdateStatus rewrites only the status field.
	UpdateStatus(ctx context.Context, id int64, ownerID, status string) (*models.Task, error)

	// Delete permanently removes an owner's task.
	Delete(ctx context.Context, id int64, ownerID string) error
}
