// Package auth implements the session mechanism: a signed HS256 token carried
// in an HttpOnly cookie. A session has a fixed lifetime; activity close to
// expiry extends it by a configurable window, so idle sessions lapse while
// active ones keep going.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session identity plus the standard registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Manager mints and resolves session tokens.
type Manager struct {
	secret         []byte
	duration       time.Duration
	activeDuration time.Duration
}

func NewManager(secret []byte, duration, activeDuration time.Duration) *Manager {
	return &Manager{secret: secret, duration: duration, activeDuration: activeDuration}
}

// Issue mints a fresh session token for an identity, valid for the full
// session duration.
func (m *Manager) Issue(identity models.Identity) (string, error) {
	now := time.Now()
	return m.sign(identity, now, now.Add(m.duration))
}

// Resolve verifies a token and returns its identity. When the token is valid
// but close to expiry (less than the active-duration window remaining), a
// replacement token extending the session is returned as well; otherwise the
// second result is empty. Invalid or expired tokens yield ErrInvalidToken.
func (m *Manager) Resolve(tokenString string) (models.Identity, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, "", common.ErrInvalidToken
	}

	identity := models.Identity{
		ID:       claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
	}

	refreshed := ""
	if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < m.activeDuration {
		issuedAt := time.Now()
		if claims.IssuedAt != nil {
			issuedAt = claims.IssuedAt.Time
		}
		refreshed, err = m.sign(identity, issuedAt, time.Now().Add(m.activeDuration))
		if err != nil {
			return models.Identity{}, "", err
		}
	}

	return identity, refreshed, nil
}

// sign keeps the original issue time across extensions.
func (m *Manager) sign(identity models.Identity, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
	})
	return token.SignedString(m.secret)
}
