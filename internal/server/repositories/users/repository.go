// Package users provides the credential store: user account records persisted
// in a document database.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

type Repository interface {
	// Create persists a new user and returns it with the assigned id.
	// A username or email collision yields common.ErrorDuplicateKey.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByUsername returns the user with the given username or
	// common.ErrorNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByUsernameOrEmail returns a user matching either value, or
	// common.ErrorNotFound when neither matches.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}
