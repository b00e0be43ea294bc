package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentforge/arc/pkg/graph"
)

// validateGraphRequest is the body of graph validation.
type validateGraphRequest struct {
	OrchestratorAgentID string      `json:"orchestrator_agent_id" binding:"required"`
	Graph               *graph.Spec `json:"graph" binding:"required"`
}

// ValidateGraph handles POST /api/v1/graphs/validate: static validation
// of an agent graph against the orchestrator's policy.
func (s *Server) ValidateGraph(c *gin.Context) {
	var req validateGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	caller := callerFrom(c)
	if caller.TenantID == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "tenant_mismatch", "message": "caller tenant is required"})
		return
	}

	issues, err := s.validator.Validate(c.Request.Context(), caller.TenantID, req.OrchestratorAgentID, req.Graph)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  len(issues) == 0,
		"issues": issues,
	})
}
