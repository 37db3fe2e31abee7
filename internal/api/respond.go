package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"bloglist/internal/service"    // Core services
	"bloglist/internal/validation" // Validation error kinds

	"github.com/gin-gonic/gin" // Gin web framework
)

// respondError maps a core error to its HTTP status and writes the
// JSON error body. Infrastructure errors are not exposed to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case validation.IsValidation(err):
		// Client input error with a field-attributable message
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		// Persistence or other infrastructure failure
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
