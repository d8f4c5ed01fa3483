package routes

import (
	"fmt"

	httpapi "github.com/mgmacri/pool-maintenance-app/internal/api/http"
	"github.com/mgmacri/pool-maintenance-app/internal/api/http/middleware"
	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"

	"github.com/gin-gonic/gin"
)

type V1Deps struct {
	Policy         commitlint.Config
	RateLimitRPS   float64
	RateLimitBurst int
}

func RegisterV1(r *gin.Engine, dep V1Deps) error {
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	policyHandler, err := httpapi.NewPolicyHandler(dep.Policy)
	if err != nil {
		return fmt.Errorf("commit policy: %w", err)
	}
	policyHandler.RegisterRoutes(api)

	return nil
}
