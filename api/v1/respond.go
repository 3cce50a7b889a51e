package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/bugtrack-simple/models"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to their status code. Anything outside
// the taxonomy becomes a generic 500 so no internals leak.
func respondError(c *gin.Context, err error) {
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		c.JSON(domainErr.StatusCode(), gin.H{
			"status":  "error",
			"message": domainErr.Message,
		})
		return
	}

	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": "Internal server error",
	})
}

// actorFromContext rebuilds the acting user from the claims stored by the
// auth middleware.
func actorFromContext(c *gin.Context) (models.User, bool) {
	if _, exists := c.Get("userId"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "User not authenticated",
		})
		return models.User{}, false
	}

	return models.User{
		ID:       c.GetString("userId"),
		Username: c.GetString("username"),
		Role:     models.Role(c.GetString("role")),
	}, true
}
