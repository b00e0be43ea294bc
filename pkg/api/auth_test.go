package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentforge/arc/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func callerForHeaders(headers map[string]string) models.Caller {
	gin.SetMode(gin.TestMode)
	var caller models.Caller
	router := gin.New()
	router.Use(callerMiddleware())
	router.GET("/probe", func(c *gin.Context) {
		caller = callerFrom(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(httptest.NewRecorder(), req)
	return caller
}

func TestExtractCaller(t *testing.T) {
	t.Run("prefers X-Forwarded-User", func(t *testing.T) {
		caller := callerForHeaders(map[string]string{
			"X-Forwarded-User":  "alice",
			"X-Forwarded-Email": "alice@example.com",
			"X-Remote-User":     "system:alice",
			"X-Tenant-ID":       "tenant-a",
		})
		assert.Equal(t, "alice", caller.UserID)
		assert.Equal(t, "tenant-a", caller.TenantID)
	})

	t.Run("falls back to email then remote user", func(t *testing.T) {
		caller := callerForHeaders(map[string]string{"X-Forwarded-Email": "bob@example.com"})
		assert.Equal(t, "bob@example.com", caller.UserID)

		caller = callerForHeaders(map[string]string{"X-Remote-User": "system:carol"})
		assert.Equal(t, "system:carol", caller.UserID)
	})

	t.Run("defaults to api-client", func(t *testing.T) {
		caller := callerForHeaders(nil)
		assert.Equal(t, "api-client", caller.UserID)
		assert.Empty(t, caller.TenantID)
		assert.Empty(t, caller.Scopes)
	})
}

func TestParseScopes(t *testing.T) {
	assert.Equal(t, []string{"agents.execute", "docs.read"}, parseScopes("agents.execute docs.read"))
	assert.Equal(t, []string{"agents.execute", "docs.read"}, parseScopes("agents.execute,docs.read"))
	assert.Equal(t, []string{"a", "b"}, parseScopes(" a,  b "))
	assert.Empty(t, parseScopes(""))
}

func TestRequireExecuteScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(callerMiddleware())
	group := router.Group("/orchestration", requireExecuteScope())
	group.POST("/spawn_run", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allows callers with agents.execute", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orchestration/spawn_run", nil)
		req.Header.Set("X-Forwarded-Scopes", "docs.read agents.execute")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects callers without it", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orchestration/spawn_run", nil)
		req.Header.Set("X-Forwarded-Scopes", "docs.read")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "missing_scope")
	})
}
