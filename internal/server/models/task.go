package models

import "time"

// DefaultTaskStatus is assigned to newly created tasks. Status is otherwise a
// free-form label: no transition rules are enforced.
const DefaultTaskStatus = "pending"

// Task is a to-do item stored in the relational store.
//
// UserID is a weak reference to User.ID. The user lives in a different store,
// so neither side can enforce referential integrity; the reference is set at
// creation and never changed afterwards.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	Status      string
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
