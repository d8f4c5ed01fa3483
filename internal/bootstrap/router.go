package bootstrap

import (
	"time"

	httpapi "github.com/mgmacri/pool-maintenance-app/internal/api/http"
	"github.com/mgmacri/pool-maintenance-app/internal/api/http/middleware"
	"github.com/mgmacri/pool-maintenance-app/internal/api/http/routes"
	"github.com/mgmacri/pool-maintenance-app/internal/commitlint"
	"github.com/mgmacri/pool-maintenance-app/internal/version"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName string
	Build       version.BuildInfo
	Logger      *zap.Logger
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Policy      commitlint.Config

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	if dep.Logger == nil {
		dep.Logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.ZapLogger(dep.Logger),
		cors.New(corsConfig(dep.CORSAllowedOrigins)),
	)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Build, dep.Logger)
	if dep.DB != nil {
		healthHandler.AddDependency("postgres", dep.DB)
	}
	if dep.Redis != nil {
		healthHandler.AddDependency("redis", RedisPinger{Client: dep.Redis})
	}
	healthHandler.RegisterRoutes(r)

	err := routes.RegisterV1(r, routes.V1Deps{
		Policy:         dep.Policy,
		RateLimitRPS:   dep.RateLimitRPS,
		RateLimitBurst: dep.RateLimitBurst,
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader, middleware.TraceParentHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
