package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/webprojects/webprojects/internal/api/http"
	"github.com/webprojects/webprojects/internal/api/http/middleware"
	projectshttp "github.com/webprojects/webprojects/internal/projects/http"
	"github.com/webprojects/webprojects/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Logger         *zap.Logger
	Projects       *service.ProjectService
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(corsConfig()))
	r.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Projects)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	projectsGroup := api.Group("/projects")
	projectshttp.New(dep.Projects).Register(projectsGroup)

	return r
}

// corsConfig allows every origin.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}
