package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentforge/arc/pkg/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", services.NewValidationError("idempotency_key", "required"), http.StatusBadRequest, "idempotency_key"},
		{"policy", services.NewPolicyError(services.ReasonMaxFanoutExceeded, "max_fanout exceeded"), http.StatusForbidden, "max_fanout_exceeded"},
		{"feature disabled", services.ErrFeatureDisabled, http.StatusForbidden, "feature_disabled"},
		{"tenant mismatch", services.ErrTenantMismatch, http.StatusForbidden, "tenant_mismatch"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "not_found"},
		{"terminal status", services.ErrTerminalStatus, http.StatusConflict, "terminal_status"},
		{"store conflict", services.ErrStoreConflict, http.StatusConflict, "store_conflict"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respond(tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}

	t.Run("wrapped errors still map", func(t *testing.T) {
		w := respond(errors.Join(errors.New("context"), services.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
