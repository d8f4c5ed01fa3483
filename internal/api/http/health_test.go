package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "github.com/mgmacri/pool-maintenance-app/internal/api/http"
	"github.com/mgmacri/pool-maintenance-app/internal/version"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testBuild = version.BuildInfo{Version: "1.0.0", Commit: "abc1234", BuildDate: "2025-08-25T12:34:56Z"}

func newHealthRouter(h *httpapi.HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	h.RegisterRoutes(router)
	return router
}

func doGet(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, httpapi.HealthResponse) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var resp httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return rr, resp
}

func TestHealthCheck(t *testing.T) {
	router := newHealthRouter(httpapi.NewHealthHandler("test-service", testBuild, nil))

	for _, path := range []string{"/health", "/healthz", "/health/live"} {
		t.Run(path, func(t *testing.T) {
			rr, resp := doGet(t, router, path)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "ok", resp.Status)
			assert.Equal(t, "test-service", resp.Service)
			assert.Equal(t, "1.0.0", resp.Version)
			assert.Equal(t, "abc1234", resp.Commit)
			assert.Equal(t, "2025-08-25T12:34:56Z", resp.BuildDate)
			assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
			assert.False(t, resp.Timestamp.IsZero())
			assert.Nil(t, resp.Checks)
		})
	}
}

func TestHealthCheckLogsAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router := newHealthRouter(httpapi.NewHealthHandler("test-service", testBuild, zap.New(core)))

	rr, _ := doGet(t, router, "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	entries := logs.FilterMessage("health check endpoint called").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/health", entries[0].ContextMap()["path"])
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	router := newHealthRouter(httpapi.NewHealthHandler("test-service", testBuild, nil))

	req, err := http.NewRequest(http.MethodPost, "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestReady(t *testing.T) {
	up := httpapi.PingerFunc(func(context.Context) error { return nil })
	down := httpapi.PingerFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("no dependencies", func(t *testing.T) {
		router := newHealthRouter(httpapi.NewHealthHandler("svc", testBuild, nil))

		rr, resp := doGet(t, router, "/health/ready")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("all up", func(t *testing.T) {
		h := httpapi.NewHealthHandler("svc", testBuild, nil)
		h.AddDependency("postgres", up)
		h.AddDependency("redis", up)

		rr, resp := doGet(t, newHealthRouter(h), "/health/ready")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]string{"postgres": "up", "redis": "up"}, resp.Checks)
	})

	t.Run("one down", func(t *testing.T) {
		h := httpapi.NewHealthHandler("svc", testBuild, nil)
		h.AddDependency("postgres", up)
		h.AddDependency("redis", down)

		rr, resp := doGet(t, newHealthRouter(h), "/health/ready")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "down", resp.Checks["redis"])
		assert.Equal(t, "up", resp.Checks["postgres"])
	})

	t.Run("ping gets a deadline", func(t *testing.T) {
		h := httpapi.NewHealthHandler("svc", testBuild, nil)
		h.AddDependency("slow", httpapi.PingerFunc(func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		}))

		rr, _ := doGet(t, newHealthRouter(h), "/health/ready")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("nil dependency ignored", func(t *testing.T) {
		h := httpapi.NewHealthHandler("svc", testBuild, nil)
		h.AddDependency("postgres", nil)

		rr, resp := doGet(t, newHealthRouter(h), "/health/ready")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, resp.Checks)
	})
}
