// Package httpapi exposes the HTTP/JSON surface of the server over gin:
// registration and login, and the ownership-scoped task CRUD behind the
// bearer-token middleware.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
)

// Server provides the HTTP handlers for the TaskKeeper backend.
type Server struct {
	engine    *gin.Engine
	logger    logging.Logger
	users     *services.UserService
	tasks     *services.TaskService
	jwtSecret []byte
}

// New constructs the HTTP server with routes and middleware configured.
func New(logger logging.Logger, users *services.UserService, tasks *services.TaskService, secretKey string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{
		engine:    router,
		logger:    logger.With("module", "httpapi"),
		users:     users,
		tasks:     tasks,
		jwtSecret: []byte(secretKey),
	}

	router.Use(srv.requestLogger())
	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires the public and protected handlers together. The
// original service answered both with and without the /api prefix, so both
// are kept.
func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	for _, prefix := range []string{"", "/api"} {
		g := s.engine.Group(prefix)

		authGroup := g.Group("/auth")
		{
			authGroup.POST("/register", s.handleRegister)
			authGroup.POST("/login", s.handleLogin)
		}

		protected := g.Group("")
		protected.Use(s.authRequired())
		{
			protected.GET("/users/me", s.handleMe)
			protected.GET("/tasks", s.handleListTasks)
			protected.POST("/tasks", s.handleCreateTask)
			protected.GET("/tasks/:id", s.handleGetTask)
			protected.PUT("/tasks/:id", s.handleUpdateTask)
			protected.DELETE("/tasks/:id", s.handleDeleteTask)
		}
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondMessage returns a structured error payload.
func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// respondServiceError maps service-layer sentinel errors onto HTTP status
// codes. Unexpected errors are logged and surfaced as a generic 500 so that
// internal detail never reaches the client.
func (s *Server) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		respondMessage(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		respondMessage(c, http.StatusConflict, "username already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		respondMessage(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrorNotFound):
		respondMessage(c, http.StatusNotFound, "task not found")
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"path", c.FullPath(), "error", err.Error())
		respondMessage(c, http.StatusInternalServerError, "internal server error")
	}
}
