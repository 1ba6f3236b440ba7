package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/webprojects/webprojects/internal/projects/domain"
)

// API is the subset of console.Client the UI drives.
type API interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int) error
}

// Message types
type projectsLoadedMsg []domain.Project
type projectCreatedMsg domain.Project
type projectUpdatedMsg domain.Project
type projectDeletedMsg int

type requestFailedMsg struct {
	action string
	id     int
	err    error
}

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func fetchProjects(api API, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		items, err := api.List(ctx)
		if err != nil {
			return requestFailedMsg{action: "fetch projects", err: err}
		}
		return projectsLoadedMsg(items)
	}
}

func createProject(api API, timeout time.Duration, in domain.ProjectInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		p, err := api.Create(ctx, in)
		if err != nil {
			return requestFailedMsg{action: "add project", err: err}
		}
		return projectCreatedMsg(*p)
	}
}

func updateProject(api API, timeout time.Duration, id int, in domain.ProjectInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		p, err := api.Update(ctx, id, in)
		if err != nil {
			return requestFailedMsg{action: "update project", id: id, err: err}
		}
		return projectUpdatedMsg(*p)
	}
}

func deleteProject(api API, timeout time.Duration, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()

		if err := api.Delete(ctx, id); err != nil {
			return requestFailedMsg{action: "delete project", id: id, err: err}
		}
		return projectDeletedMsg(id)
	}
}
