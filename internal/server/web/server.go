// Package web is the HTTP surface of taskboard: a small form-based UI over
// the authentication and task services. All business failures are recovered
// here and rendered as messages on the originating page; nothing propagates
// to the client as an unhandled fault.
package web

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session"

type Server struct {
	address  string
	logger   logging.Logger
	users    *services.UserService
	tasks    *services.TaskService
	sessions *auth.Manager
	engine   *gin.Engine
	httpSrv  *http.Server
}

func NewServer(cfg *config.Config, l logging.Logger, us *services.UserService, ts *services.TaskService, sm *auth.Manager) (*Server, error) {
	s := &Server{
		address:  cfg.Addr,
		logger:   l.With("module", "web_server"),
		users:    us,
		tasks:    ts,
		sessions: sm,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tmpl)

	s.engine = engine
	s.registerRoutes()

	s.httpSrv = &http.Server{Addr: s.address, Handler: engine}
	return s, nil
}

// Handler exposes the routed engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx := context.Background()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
