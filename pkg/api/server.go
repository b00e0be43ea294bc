package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentforge/arc/pkg/database"
	"github.com/agentforge/arc/pkg/graph"
	"github.com/agentforge/arc/pkg/queue"
	"github.com/agentforge/arc/pkg/services"
	"github.com/agentforge/arc/pkg/version"
)

// Server binds the kernel's public operations to HTTP. It holds no state
// of its own; every request resolves the caller, delegates to the
// services layer, and maps errors.
type Server struct {
	db        *database.Client
	runs      *services.RunService
	spawns    *services.SpawnService
	joins     *services.JoinService
	cancels   *services.CancelService
	validator *graph.Validator
	pool      *queue.WorkerPool
}

// NewServer creates a new API server. pool may be nil when this replica
// runs without workers.
func NewServer(
	db *database.Client,
	runs *services.RunService,
	spawns *services.SpawnService,
	joins *services.JoinService,
	cancels *services.CancelService,
	validator *graph.Validator,
	pool *queue.WorkerPool,
) *Server {
	return &Server{
		db:        db,
		runs:      runs,
		spawns:    spawns,
		joins:     joins,
		cancels:   cancels,
		validator: validator,
		pool:      pool,
	}
}

// RegisterRoutes wires the server's handlers onto a gin engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.Health)

	v1 := r.Group("/api/v1", securityHeaders(), callerMiddleware())

	v1.POST("/runs", s.CreateRun)
	v1.GET("/runs/:id", s.GetRun)
	v1.GET("/runs/:id/tree", s.QueryTree)

	v1.POST("/graphs/validate", s.ValidateGraph)

	orch := v1.Group("/orchestration", requireExecuteScope())
	orch.POST("/spawn_run", s.SpawnRun)
	orch.POST("/spawn_group", s.SpawnGroup)
	orch.POST("/join", s.Join)
	orch.POST("/cancel_subtree", s.CancelSubtree)
	orch.POST("/evaluate_and_replan", s.EvaluateAndReplan)
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// Health returns the health status of the store and, when present, the
// worker pool.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	payload := gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	}
	if s.pool != nil {
		poolHealth := s.pool.Health()
		payload["queue"] = poolHealth
		if !poolHealth.IsHealthy {
			payload["status"] = "degraded"
		}
	}

	c.JSON(http.StatusOK, payload)
}
