package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes() {
	e := s.engine

	e.Use(requestID(), s.requestLogger(), s.resolveSession())

	e.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/register")
	})

	e.GET("/register", s.showRegister)
	e.POST("/register", s.register)
	e.GET("/login", s.showLogin)
	e.POST("/login", s.login)
	e.GET("/logout", s.logout)

	protected := e.Group("/", s.requireLogin())
	protected.GET("/dashboard", s.dashboard)
	protected.GET("/tasks", s.listTasks)
	protected.GET("/tasks/add", s.showAddTask)
	protected.POST("/tasks/add", s.addTask)
	protected.GET("/tasks/edit/:id", s.showEditTask)
	protected.POST("/tasks/edit/:id", s.editTask)
	protected.POST("/tasks/delete/:id", s.deleteTask)
	protected.POST("/tasks/status/:id", s.updateTaskStatus)

	e.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404", nil)
	})
}
