package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentforge/arc/pkg/models"
)

// SpawnRun handles POST /api/v1/orchestration/spawn_run.
func (s *Server) SpawnRun(c *gin.Context) {
	var req models.SpawnRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	result, err := s.spawns.SpawnRun(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SpawnGroup handles POST /api/v1/orchestration/spawn_group.
func (s *Server) SpawnGroup(c *gin.Context) {
	var req models.SpawnGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	result, err := s.spawns.SpawnGroup(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Join handles POST /api/v1/orchestration/join.
func (s *Server) Join(c *gin.Context) {
	var req models.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	result, err := s.joins.Join(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelSubtree handles POST /api/v1/orchestration/cancel_subtree.
func (s *Server) CancelSubtree(c *gin.Context) {
	var req models.CancelSubtreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	result, err := s.cancels.CancelSubtree(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	// Interrupt any member executing on this replica; other replicas
	// observe the persisted status at their next cancellation poll.
	if s.pool != nil {
		s.pool.CancelRun(req.RunID)
	}

	c.JSON(http.StatusOK, result)
}

// evaluateAndReplanRequest is the body of evaluate_and_replan.
type evaluateAndReplanRequest struct {
	CallerRunID string `json:"caller_run_id"`
	RunID       string `json:"run_id" binding:"required"`
}

// EvaluateAndReplan handles POST /api/v1/orchestration/evaluate_and_replan.
func (s *Server) EvaluateAndReplan(c *gin.Context) {
	var req evaluateAndReplanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body", "message": err.Error()})
		return
	}

	summary, err := s.cancels.EvaluateAndReplan(c.Request.Context(), callerFrom(c), req.RunID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
