package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ProjectCounter reports how many projects the store currently holds.
type ProjectCounter interface {
	Count(ctx context.Context) int
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Projects  *int      `json:"projects,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	projects    ProjectCounter
}

func NewHealthHandler(serviceName, version string, projects ProjectCounter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		projects:    projects,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	}
	if h.projects != nil {
		n := h.projects.Count(c.Request.Context())
		resp.Projects = &n
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
