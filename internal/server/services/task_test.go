package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// fakeTasksRepo is an in-memory task store with the same owner scoping as the
// Postgres implementation: lookups by id alone do not exist.
type fakeTasksRepo struct {
	tasks  []*models.Task
	nextID int64
}

func (f *fakeTasksRepo) find(id int64, ownerID string) *models.Task {
	for _, task := range f.tasks {
		if task.ID == id && task.UserID == ownerID {
			return task
		}
	}
	return nil
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	f.nextID++
	stored := *task
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.tasks = append(f.tasks, &stored)
	return &stored, nil
}

func (f *fakeTasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error) {
	// Newest first, mirroring the ORDER BY of the real repository.
	var result []*models.Task
	for i := len(f.tasks) - 1; i >= 0; i-- {
		if f.tasks[i].UserID == ownerID {
			result = append(result, f.tasks[i])
		}
	}
	return result, nil
}

func (f *fakeTasksRepo) GetByOwner(ctx context.Context, id int64, ownerID string) (*models.Task, error) {
	if task := f.find(id, ownerID); task != nil {
		return task, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeTasksRepo) Update(ctx context.Context, id int64, ownerID, title, description string, dueDate *time.Time, status string) (*models.Task, error) {
	task := f.find(id, ownerID)
	if task == nil {
		return nil, common.ErrorNotFound
	}
	task.Title = title
	task.Description = description
	task.DueDate = dueDate
	task.Status = status
	task.UpdatedAt = time.Now()
	return task, nil
}

func (f *fakeTasksRepo) UpdateStatus(ctx context.Context, id int64, ownerID, status string) (*models.Task, error) {
	task := f.find(id, ownerID)
	if task == nil {
		return nil, common.ErrorNotFound
	}
	task.Status = status
	task.UpdatedAt = time.Now()
	return task, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id int64, ownerID string) error {
	for i, task := range f.tasks {
		if task.ID == id && task.UserID == ownerID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func TestTaskCreate_EmptyTitle(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})

	for _, title := range []string{"", "   "} {
		_, err := s.Create(context.Background(), "owner-1", title, "", nil)
		if !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("title %q: want ErrorValidation, got %v", title, err)
		}
	}
}

func TestTaskCreate_Defaults(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})

	task, err := s.Create(context.Background(), "owner-1", "buy milk", "", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.Status != "pending" {
		t.Fatalf("want default status %q, got %q", "pending", task.Status)
	}
	if task.UserID != "owner-1" {
		t.Fatalf("owner reference mismatch: %q", task.UserID)
	}
}

func TestTaskList_NewestFirst(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})
	ctx := context.Background()

	a, _ := s.Create(ctx, "owner-1", "task A", "", nil)
	b, _ := s.Create(ctx, "owner-1", "task B", "", nil)

	list, err := s.List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || list[0].ID != b.ID || list[1].ID != a.ID {
		t.Fatalf("expected [B, A], got %+v", list)
	}
}

func TestTaskOperations_ForeignOwnerIsNotFound(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})
	ctx := context.Background()

	task, err := s.Create(ctx, "alice-id", "secret plan", "", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	ops := map[string]func() error{
		"get": func() error {
			_, err := s.Get(ctx, task.ID, "bob-id")
			return err
		},
		"update": func() error {
			_, err := s.Update(ctx, task.ID, "bob-id", "stolen", "", nil, "done")
			return err
		},
		"updateStatus": func() error {
			_, err := s.UpdateStatus(ctx, task.ID, "bob-id", "done")
			return err
		},
		"delete": func() error {
			return s.Delete(ctx, task.ID, "bob-id")
		},
	}

	for name, op := range ops {
		if err := op(); !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("%s as foreign owner: want ErrorNotFound, got %v", name, err)
		}
	}

	// The same operations against a completely absent id give the identical error.
	if _, err := s.Get(ctx, 9999, "bob-id"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("absent task: want ErrorNotFound, got %v", err)
	}
}

func TestTaskUpdate_EmptyTitle(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})
	ctx := context.Background()

	task, _ := s.Create(ctx, "owner-1", "original", "", nil)

	_, err := s.Update(ctx, task.ID, "owner-1", "", "", nil, "done")
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestTaskUpdate_RewritesFields(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})
	ctx := context.Background()

	task, _ := s.Create(ctx, "owner-1", "original", "old", nil)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	updated, err := s.Update(ctx, task.ID, "owner-1", "renamed", "new", &due, "in-progress")
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "renamed" || updated.Description != "new" || updated.Status != "in-progress" {
		t.Fatalf("unexpected task: %+v", updated)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("unexpected due date: %v", updated.DueDate)
	}
	if updated.UserID != "owner-1" {
		t.Fatalf("owner reference must not change: %q", updated.UserID)
	}
}

func TestTaskUpdateStatus_Idempotent(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})
	ctx := context.Background()

	task, _ := s.Create(ctx, "owner-1", "report", "", nil)

	first, err := s.UpdateStatus(ctx, task.ID, "owner-1", "done")
	if err != nil {
		t.Fatalf("first UpdateStatus error: %v", err)
	}
	second, err := s.UpdateStatus(ctx, task.ID, "owner-1", "done")
	if err != nil {
		t.Fatalf("second UpdateStatus error: %v", err)
	}
	if first.Status != second.Status || first.Title != second.Title {
		t.Fatalf("state changed between identical calls: %+v vs %+v", first, second)
	}
}

func TestTaskDelete_ThenGone(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})
	ctx := context.Background()

	task, _ := s.Create(ctx, "owner-1", "temp", "", nil)

	if err := s.Delete(ctx, task.ID, "owner-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, task.ID, "owner-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound after delete, got %v", err)
	}
}
