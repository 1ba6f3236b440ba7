package http

import "github.com/webprojects/webprojects/internal/projects/service"

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

const (
	msgNotFound     = "Project not found"
	msgInvalidBody  = "Invalid request body"
	msgBodyTooLarge = "Request body too large"
	msgInternal     = "Internal server error"
)
