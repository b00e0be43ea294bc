package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agentforge/arc/pkg/models"
)

// ScopeAgentsExecute is the scope every orchestration call must carry.
const ScopeAgentsExecute = "agents.execute"

const callerContextKey = "arc.caller"

// extractCaller resolves the caller identity from proxy headers.
// Priority for the user: X-Forwarded-User (oauth2-proxy) >
// X-Forwarded-Email (oauth2-proxy) > X-Remote-User (kube-rbac-proxy) >
// "api-client". Tenant and scopes come from the auth proxy's
// X-Tenant-ID and X-Forwarded-Scopes headers.
func extractCaller(c *gin.Context) models.Caller {
	user := "api-client"
	if v := c.GetHeader("X-Forwarded-User"); v != "" {
		user = v
	} else if v := c.GetHeader("X-Forwarded-Email"); v != "" {
		user = v
	} else if v := c.GetHeader("X-Remote-User"); v != "" {
		user = v
	}

	return models.Caller{
		TenantID: c.GetHeader("X-Tenant-ID"),
		UserID:   user,
		Scopes:   parseScopes(c.GetHeader("X-Forwarded-Scopes")),
	}
}

// parseScopes splits a scope header on spaces and commas.
func parseScopes(header string) []string {
	fields := strings.FieldsFunc(header, func(r rune) bool {
		return r == ' ' || r == ','
	})
	scopes := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			scopes = append(scopes, f)
		}
	}
	return scopes
}

// callerMiddleware resolves the caller once per request and stores it on
// the gin context.
func callerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(callerContextKey, extractCaller(c))
		c.Next()
	}
}

// requireExecuteScope rejects callers whose scopes do not include
// agents.execute. Orchestration primitives are never reachable without it.
func requireExecuteScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := callerFrom(c)
		for _, s := range caller.Scopes {
			if s == ScopeAgentsExecute {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":   "missing_scope",
			"message": "caller scopes must include " + ScopeAgentsExecute,
		})
	}
}

// callerFrom returns the caller stored by callerMiddleware.
func callerFrom(c *gin.Context) models.Caller {
	if v, ok := c.Get(callerContextKey); ok {
		if caller, ok := v.(models.Caller); ok {
			return caller
		}
	}
	return models.Caller{}
}
