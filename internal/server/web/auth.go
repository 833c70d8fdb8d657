package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/gin-gonic/gin"
)

func (s *Server) showRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register", gin.H{"ErrorMsg": ""})
}

func (s *Server) register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := s.users.Register(c.Request.Context(), username, email, password)
	switch {
	case err == nil:
		c.HTML(http.StatusOK, "message", gin.H{"Message": "Registration successful!"})
	case errors.Is(err, common.ErrorValidation):
		c.HTML(http.StatusOK, "register", gin.H{"ErrorMsg": "All fields are required"})
	case errors.Is(err, common.ErrorDuplicateKey):
		c.HTML(http.StatusOK, "register", gin.H{"ErrorMsg": "Username or email already in use"})
	default:
		s.logger.Error(c.Request.Context(), "registration failed", "error", err)
		c.HTML(http.StatusOK, "register", gin.H{"ErrorMsg": "Error registering user"})
	}
}

func (s *Server) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"ErrorMsg": ""})
}

func (s *Server) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	identity, err := s.users.Login(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, common.ErrorInvalidCredentials) {
			s.logger.Error(c.Request.Context(), "login failed", "error", err)
		}
		// One message for every failure mode: never reveal which check failed.
		c.HTML(http.StatusOK, "login", gin.H{"ErrorMsg": "Invalid username or password"})
		return
	}

	token, err := s.sessions.Issue(identity)
	if err != nil {
		s.logger.Error(c.Request.Context(), "session token generation failed", "error", err)
		c.HTML(http.StatusOK, "login", gin.H{"ErrorMsg": "Login error"})
		return
	}

	s.setSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) logout(c *gin.Context) {
	s.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (s *Server) dashboard(c *gin.Context) {
	identity, _ := currentIdentity(c)
	c.HTML(http.StatusOK, "dashboard", gin.H{"User": identity})
}
