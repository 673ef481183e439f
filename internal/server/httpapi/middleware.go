package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// userKey is the gin context key under which the authenticated account is
// stored for downstream handlers.
const userKey = "authenticatedUser"

// requestLogger logs one line per request with a generated request id.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// authRequired is the authentication gate for protected routes. It extracts
// the bearer token, verifies it, resolves the embedded account id against the
// store, and attaches the account to the request context. Every failure
// aborts the chain before any handler runs; the single store lookup is the
// gate's only side effect.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		// exactly two space-separated parts, scheme matched case-insensitively
		parts := strings.Split(header, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				abortUnauthorized(c, "token expired")
				return
			}
			abortUnauthorized(c, "invalid token")
			return
		}

		user, err := s.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				abortUnauthorized(c, "unknown account")
				return
			}
			s.logger.Error(c.Request.Context(), "account lookup failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
}

// currentUser returns the account attached by authRequired.
func currentUser(c *gin.Context) *models.User {
	v, _ := c.Get(userKey)
	user, _ := v.(*models.User)
	return user
}
