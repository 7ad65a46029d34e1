package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/server/internal/apierr"
)

// handleError maps a service failure to a status and an {error} body.
// Anything outside the apierr taxonomy is a generic server error; the
// underlying cause is logged, never echoed to the client.
func handleError(c *gin.Context, err error) {
	var apiErr *apierr.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
