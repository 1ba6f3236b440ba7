package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/webprojects/webprojects/internal/logging"
	"github.com/webprojects/webprojects/internal/projects/domain"
)

// Store is the project collection the service operates on.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int) error
	Len(ctx context.Context) int
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store Store
	log   *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(store Store, log *zap.Logger) *ProjectService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectService{
		store: store,
		log:   log.Named("projects"),
	}
}

// List returns all projects in insertion order
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return items, nil
}

// Create stores a new project and returns it with its assigned id
func (s *ProjectService) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	p, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	s.log.Info("project created", append(logging.ContextFields(ctx), zap.Int("project_id", p.ID))...)
	return p, nil
}

// Update replaces the fields of an existing project
func (s *ProjectService) Update(ctx context.Context, id int, in domain.ProjectInput) (*domain.Project, error) {
	p, err := s.store.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	s.log.Info("project updated", append(logging.ContextFields(ctx), zap.Int("project_id", id))...)
	return p, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	s.log.Info("project deleted", append(logging.ContextFields(ctx), zap.Int("project_id", id))...)
	return nil
}

// Count returns the number of stored projects
func (s *ProjectService) Count(ctx context.Context) int {
	return s.store.Len(ctx)
}
