package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/gin-gonic/gin"
)

const dueDateLayout = "2006-01-02"

// parseDueDate maps the optional form field to a nullable date. Absent or
// unparsable input becomes nil.
func parseDueDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	d, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return nil
	}
	return &d
}

// taskID parses the :id route parameter. Malformed ids behave exactly like
// ids of tasks that do not exist.
func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) notFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404", nil)
}

func (s *Server) listTasks(c *gin.Context) {
	identity, _ := currentIdentity(c)

	list, err := s.tasks.List(c.Request.Context(), identity.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "task list failed", "error", err)
		c.HTML(http.StatusOK, "message", gin.H{"Message": "Error fetching tasks"})
		return
	}
	c.HTML(http.StatusOK, "tasks", gin.H{"Tasks": list, "User": identity})
}

func (s *Server) showAddTask(c *gin.Context) {
	c.HTML(http.StatusOK, "add_task", gin.H{"ErrorMsg": ""})
}

func (s *Server) addTask(c *gin.Context) {
	identity, _ := currentIdentity(c)

	title := c.PostForm("title")
	description := c.PostForm("description")
	dueDate := parseDueDate(c.PostForm("dueDate"))

	_, err := s.tasks.Create(c.Request.Context(), identity.ID, title, description, dueDate)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/tasks")
	case errors.Is(err, common.ErrorValidation):
		c.HTML(http.StatusOK, "add_task", gin.H{"ErrorMsg": "Title is required"})
	default:
		s.logger.Error(c.Request.Context(), "task creation failed", "error", err)
		c.HTML(http.StatusOK, "add_task", gin.H{"ErrorMsg": "Error creating task"})
	}
}

func (s *Server) showEditTask(c *gin.Context) {
	identity, _ := currentIdentity(c)

	id, ok := taskID(c)
	if !ok {
		s.notFoundPage(c)
		return
	}

	task, err := s.tasks.Get(c.Request.Context(), id, identity.ID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(c.Request.Context(), "task fetch failed", "error", err)
		}
		s.notFoundPage(c)
		return
	}
	c.HTML(http.StatusOK, "edit_task", gin.H{"Task": task})
}

func (s *Server) editTask(c *gin.Context) {
	identity, _ := currentIdentity(c)

	id, ok := taskID(c)
	if !ok {
		s.notFoundPage(c)
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	dueDate := parseDueDate(c.PostForm("dueDate"))
	status := c.PostForm("status")

	_, err := s.tasks.Update(c.Request.Context(), id, identity.ID, title, description, dueDate, status)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/tasks")
	case errors.Is(err, common.ErrorNotFound):
		s.notFoundPage(c)
	case errors.Is(err, common.ErrorValidation):
		task, getErr := s.tasks.Get(c.Request.Context(), id, identity.ID)
		if getErr != nil {
			s.notFoundPage(c)
			return
		}
		c.HTML(http.StatusOK, "edit_task", gin.H{"Task": task, "ErrorMsg": "Title is required"})
	default:
		s.logger.Error(c.Request.Context(), "task update failed", "error", err)
		c.HTML(http.StatusOK, "message", gin.H{"Message": "Error updating task"})
	}
}

func (s *Server) deleteTask(c *gin.Context) {
	identity, _ := currentIdentity(c)

	id, ok := taskID(c)
	if !ok {
		s.notFoundPage(c)
		return
	}

	err := s.tasks.Delete(c.Request.Context(), id, identity.ID)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/tasks")
	case errors.Is(err, common.ErrorNotFound):
		s.notFoundPage(c)
	default:
		s.logger.Error(c.Request.Context(), "task deletion failed", "error", err)
		c.HTML(http.StatusOK, "message", gin.H{"Message": "Error deleting task"})
	}
}

func (s *Server) updateTaskStatus(c *gin.Context) {
	identity, _ := currentIdentity(c)

	id, ok := taskID(c)
	if !ok {
		s.notFoundPage(c)
		return
	}

	_, err := s.tasks.UpdateStatus(c.Request.Context(), id, identity.ID, c.PostForm("status"))
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, "/tasks")
	case errors.Is(err, common.ErrorNotFound):
		s.notFoundPage(c)
	default:
		s.logger.Error(c.Request.Context(), "task status update failed", "error", err)
		c.HTML(http.StatusOK, "message", gin.H{"Message": "Error updating task"})
	}
}
