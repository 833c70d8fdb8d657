// Package services contains the business logic sitting between the web layer
// and the stores. This file implements UserService: registration and login.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the stored hashes were created with.
const bcryptCost = 10

// UserService handles account registration and credential verification
// against the document store.
type UserService struct {
	repo users.Repository
}

func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. The username is trimmed, the email trimmed
// and lower-cased. Empty fields yield common.ErrorValidation; an existing
// username or email yields common.ErrorDuplicateKey. Only the bcrypt hash of
// the password is ever persisted.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.FindByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil:
		return nil, common.ErrorDuplicateKey
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	// The unique indexes close the race between the lookup above and this
	// insert: a concurrent registration surfaces as a duplicate key here.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateKey) {
			return nil, common.ErrorDuplicateKey
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// Login verifies the credentials and returns the session identity. Unknown
// username and wrong password both yield common.ErrorInvalidCredentials, so
// a caller cannot tell which check failed.
func (s *UserService) Login(ctx context.Context, username, password string) (models.Identity, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Identity{}, common.ErrorInvalidCredentials
		}
		return models.Identity{}, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Identity{}, common.ErrorInvalidCredentials
	}

	return models.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
