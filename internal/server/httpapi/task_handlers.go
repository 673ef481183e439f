package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
)

// taskRequest uses pointer fields so an absent field can be told apart from
// an explicit zero value (field-level merge on update).
type taskRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Priority       *models.Priority `json:"priority"`
	ExpirationDate *time.Time       `json:"expiration_date"`
}

// handleListTasks returns the authenticated user's tasks, newest first.
func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// handleCreateTask inserts a new task owned by the authenticated user.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	in := services.TaskCreate{ExpirationDate: req.ExpirationDate}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Priority != nil {
		in.Priority = *req.Priority
	}

	task, err := s.tasks.Create(c.Request.Context(), currentUser(c).ID, in)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// handleGetTask fetches one of the authenticated user's tasks.
func (s *Server) handleGetTask(c *gin.Context) {
	task, err := s.tasks.Get(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// handleUpdateTask applies a partial update; fields absent from the body
// keep their current values.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := services.TaskPatch{
		Title:          req.Title,
		Description:    req.Description,
		Priority:       req.Priority,
		ExpirationDate: req.ExpirationDate,
	}

	task, err := s.tasks.Update(c.Request.Context(), currentUser(c).ID, c.Param("id"), patch)
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// handleDeleteTask removes a task and returns the deleted snapshot.
func (s *Server) handleDeleteTask(c *gin.Context) {
	task, err := s.tasks.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id"))
	if err != nil {
		s.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}
