package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/mgmacri/pool-maintenance-app/internal/api/http"
	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPolicyRouter(t *testing.T, cfg commitlint.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h, err := httpapi.NewPolicyHandler(cfg)
	require.NoError(t, err)

	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestPolicyHandler(t *testing.T) {
	router := newPolicyRouter(t, commitlint.Default())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/commit-policy", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		OK        bool                              `json:"ok"`
		Policy    commitlint.Config                 `json:"policy"`
		Effective map[string]commitlint.RuleSetting `json:"effective"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.True(t, body.OK)
	assert.Equal(t, commitlint.Default(), body.Policy)
	assert.Equal(t, commitlint.Rule(commitlint.Off, commitlint.Always), body.Effective[commitlint.RuleScopeEmpty])
	assert.Contains(t, body.Effective, "type-enum")
	assert.Contains(t, rr.Body.String(), `"scope-empty":[0,"always"]`)
}

func TestPolicyHandler_Rule(t *testing.T) {
	router := newPolicyRouter(t, commitlint.StrictScope())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/commit-policy/rules/scope-empty", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "error", body["severity"])
	assert.Equal(t, []any{2.0, "never"}, body["setting"])

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/commit-policy/rules/signed-off-by", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewPolicyHandler_RejectsInvalid(t *testing.T) {
	_, err := httpapi.NewPolicyHandler(commitlint.Config{
		Rules: map[string]commitlint.RuleSetting{"scope-empty": {Level: 5, When: commitlint.Always}},
	})
	assert.ErrorIs(t, err, commitlint.ErrInvalidSeverity)
}
