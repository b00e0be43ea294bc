package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentforge/arc/ent"
	"github.com/agentforge/arc/pkg/models"
)

// CreateRun handles POST /api/v1/runs: creation of a root run.
func (s *Server) CreateRun(c *gin.Context) {
	var req models.CreateRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	caller := callerFrom(c)
	if req.TenantID == "" {
		req.TenantID = caller.TenantID
	}
	if req.InitiatorUserID == "" {
		req.InitiatorUserID = caller.UserID
	}
	if caller.TenantID != "" && req.TenantID != caller.TenantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "tenant_mismatch", "message": "request tenant does not match caller tenant"})
		return
	}

	created, err := s.runs.CreateRootRun(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, runResponse(created))
}

// GetRun handles GET /api/v1/runs/:id.
func (s *Server) GetRun(c *gin.Context) {
	r, err := s.runs.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	caller := callerFrom(c)
	if caller.TenantID != "" && caller.TenantID != r.TenantID {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "resource not found"})
		return
	}

	c.JSON(http.StatusOK, runResponse(r))
}

// QueryTree handles GET /api/v1/runs/:id/tree.
func (s *Server) QueryTree(c *gin.Context) {
	tree, err := s.runs.QueryTree(c.Request.Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

// runResponse shapes a run row for API responses.
func runResponse(r *ent.Run) gin.H {
	resp := gin.H{
		"run_id":      r.ID,
		"tenant_id":   r.TenantID,
		"agent_id":    r.AgentID,
		"status":      r.Status,
		"root_run_id": r.RootRunID,
		"depth":       r.Depth,
		"created_at":  r.CreatedAt,
	}
	if r.ParentRunID != nil {
		resp["parent_run_id"] = *r.ParentRunID
	}
	if r.OrchestrationGroupID != nil {
		resp["orchestration_group_id"] = *r.OrchestrationGroupID
	}
	if r.StatusReason != nil {
		resp["status_reason"] = *r.StatusReason
	}
	if r.Output != nil {
		resp["output"] = r.Output
	}
	return resp
}
