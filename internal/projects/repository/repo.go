package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/webprojects/webprojects/internal/projects/domain"
)

// ProjectRepository owns the in-memory project collection.
// Writers hold the lock exclusively, so concurrent creates never share an id.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []domain.Project
	nextID   int
}

// NewProjectRepository creates a repository holding a copy of seed.
// Ids assigned later start one past the highest seeded id.
func NewProjectRepository(seed []domain.Project) *ProjectRepository {
	r := &ProjectRepository{
		projects: slices.Clone(seed),
		nextID:   1,
	}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

// List returns every project in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

// Create appends a project with the next free id.
func (r *ProjectRepository) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.Project{
		ID:          r.nextID,
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
	}
	r.nextID++
	r.projects = append(r.projects, p)
	return &p, nil
}

// Update overwrites title, description and url of the project with the
// given id. Members missing from in become null.
func (r *ProjectRepository) Update(ctx context.Context, id int, in domain.ProjectInput) (*domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	p := &r.projects[i]
	p.Title = in.Title
	p.Description = in.Description
	p.URL = in.URL

	out := *p
	return &out, nil
}

// Delete removes the project with the given id, keeping the order of the rest.
func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	r.projects = slices.Delete(r.projects, i, i+1)
	return nil
}

// Len returns the number of stored projects.
func (r *ProjectRepository) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects)
}

// indexOf must be called with r.mu held.
func (r *ProjectRepository) indexOf(id int) int {
	return slices.IndexFunc(r.projects, func(p domain.Project) bool { return p.ID == id })
}
