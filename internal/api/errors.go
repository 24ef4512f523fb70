package api

import (
	"errors"   // Matching service errors
	"net/http" // HTTP status codes
	"strconv"  // Path parameters

	"bet_assist/internal/middleware" // Authenticated user
	"bet_assist/internal/service"    // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// respondError maps a service error onto an HTTP status and JSON body
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, service.ErrInvalidGrouping):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrPremiumRequired):
		c.JSON(http.StatusForbidden, gin.H{"error": "Premium subscription required"})
	case errors.Is(err, service.ErrPlanNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
	case errors.Is(err, service.ErrStoreUnavailable):
		logError(c, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, try again"})
	default:
		logError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func logError(c *gin.Context, err error) {
	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString("requestID"),
		"path":       c.FullPath(),
		"error":      err.Error(),
	}).Error("Request failed")
}

// currentUser returns the authenticated user, answering 401 when there is none
func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}

// idParam parses the :id path parameter, answering 400 when it is not an id
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// warningText renders a soft warning for a response body, or nil
func warningText(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}
