package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mgmacri/pool-maintenance-app/internal/version"
	"go.uber.org/zap"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	checkUp        = "up"
	checkDown      = "down"

	pingTimeout = 1 * time.Second
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthResponse is the body of every health route.
//
// Example:
//
//	{
//	  "status": "ok",
//	  "service": "pool-maintenance-app",
//	  "version": "1.0.0",
//	  "commit": "abc1234",
//	  "build_date": "2025-08-25T12:34:56Z",
//	  "uptime_seconds": 123.45,
//	  "timestamp": "2025-08-25T12:36:59Z"
//	}
type HealthResponse struct {
	Status        string            `json:"status"`
	Service       string            `json:"service"`
	Version       string            `json:"version"`
	Commit        string            `json:"commit"`
	BuildDate     string            `json:"build_date"`
	UptimeSeconds float64           `json:"uptime_seconds"`
	Timestamp     time.Time         `json:"timestamp"`
	Checks        map[string]string `json:"checks,omitempty"`
}

type HealthHandler struct {
	serviceName string
	build       version.BuildInfo
	logger      *zap.Logger
	startTime   time.Time
	deps        map[string]Pinger
}

func NewHealthHandler(serviceName string, build version.BuildInfo, logger *zap.Logger) *HealthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{
		serviceName: serviceName,
		build:       build,
		logger:      logger,
		startTime:   time.Now(),
		deps:        make(map[string]Pinger),
	}
}

// AddDependency registers a readiness check. A nil pinger is ignored.
func (h *HealthHandler) AddDependency(name string, p Pinger) {
	if p == nil {
		return
	}
	h.deps[name] = p
}

func (h *HealthHandler) base(status string) HealthResponse {
	return HealthResponse{
		Status:        status,
		Service:       h.serviceName,
		Version:       h.build.Version,
		Commit:        h.build.Commit,
		BuildDate:     h.build.BuildDate,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Timestamp:     time.Now().UTC(),
	}
}

// HealthCheck reports liveness and build metadata. It never touches
// dependencies.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := h.base(statusOK)
	h.logger.Info("health check endpoint called",
		zap.String("path", c.FullPath()),
		zap.Float64("uptime_seconds", resp.UptimeSeconds),
	)
	c.JSON(http.StatusOK, resp)
}

// Ready pings every registered dependency and answers 503 if any is down.
func (h *HealthHandler) Ready(c *gin.Context) {
	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
		err := h.deps[name].Ping(pingCtx)
		cancel()

		if err != nil {
			healthy = false
			checks[name] = checkDown
			h.logger.Warn("readiness check failed", zap.String("dependency", name), zap.Error(err))
			continue
		}
		checks[name] = checkUp
	}

	resp := h.base(statusOK)
	resp.Checks = checks
	code := http.StatusOK
	if !healthy {
		resp.Status = statusDegraded
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
	r.GET("/health/live", h.HealthCheck)
	r.GET("/health/ready", h.Ready)
}
