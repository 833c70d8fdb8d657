package web

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityContextKey  = "identity"
	requestIDContextKey = "request_id"
	requestIDHeaderName = "X-Request-ID"
)

// requestID assigns every request an id, honoring one supplied by the client.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(requestIDHeaderName, id)
		c.Next()
	}
}

// requestLogger logs completion of every request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "http_request",
			"request_id", c.GetString(requestIDContextKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"ip", c.ClientIP(),
			"duration", time.Since(start).String(),
		)
	}
}

// resolveSession reads the session cookie and, when it verifies, puts the
// identity into the request context. A near-expiry session gets a refreshed
// cookie written back, extending it by the active-duration window. Runs on
// every route: handlers see "current identity or none".
func (s *Server) resolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		identity, refreshed, err := s.sessions.Resolve(token)
		if err != nil {
			// Expired or tampered cookie: drop it and continue anonymous.
			s.clearSessionCookie(c)
			c.Next()
			return
		}

		if refreshed != "" {
			s.setSessionCookie(c, refreshed)
		}
		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// requireLogin rejects unauthenticated requests with a redirect to the login
// page before any business logic runs.
func (s *Server) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentIdentity(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentIdentity(c *gin.Context) (models.Identity, bool) {
	value, ok := c.Get(identityContextKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

func (s *Server) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
