package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentforge/arc/pkg/services"
)

// respondServiceError maps kernel errors to HTTP error responses.
// Policy violations, disabled surfaces, and tenant mismatches are all
// authorization outcomes and map to 403.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"field":   validErr.Field,
			"message": validErr.Message,
		})
		return
	}

	var policyErr *services.PolicyError
	if errors.As(err, &policyErr) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "policy_error",
			"reason":  policyErr.Reason,
			"message": policyErr.Message,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrFeatureDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": "feature_disabled", "message": err.Error()})
	case errors.Is(err, services.ErrTenantMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": "tenant_mismatch", "message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "resource not found"})
	case errors.Is(err, services.ErrTerminalStatus):
		c.JSON(http.StatusConflict, gin.H{"error": "terminal_status", "message": err.Error()})
	case errors.Is(err, services.ErrStoreConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "store_conflict", "message": err.Error()})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal server error"})
	}
}
