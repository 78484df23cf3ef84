package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/planner"
)

// statusFor maps planner failures onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, planner.ErrUnknownCity), errors.Is(err, planner.ErrUnknownAttraction):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrUnreachableDestination):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondWithPlanError reports a planning failure. Planner errors are
// user-facing; anything else is logged and hidden behind a generic message.
func (s *Server) respondWithPlanError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondWithClientError returns a client error (no logging needed for validation errors)
func respondWithClientError(c *gin.Context, statusCode int, userMessage string) {
	c.JSON(statusCode, gin.H{"error": userMessage})
}
