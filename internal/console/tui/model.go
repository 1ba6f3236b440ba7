// Package tui is the interactive terminal front end of the console
// client.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/webprojects/webprojects/internal/console"
	"github.com/webprojects/webprojects/internal/projects/domain"
)

type mode int

const (
	modeList mode = iota
	modeEdit
	modeAdd
)

// Model is the bubbletea model of the console.
type Model struct {
	api      API
	log      *zap.Logger
	timeout  time.Duration
	state    console.State
	cursor   int
	mode     mode
	form     form
	quitting bool
}

// NewModel creates a console model. Request failures are reported to log
// only.
func NewModel(api API, log *zap.Logger, timeout time.Duration) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		api:     api,
		log:     log.Named("tui"),
		timeout: timeout,
	}
}

// State returns the current mirror state.
func (m Model) State() console.State {
	return m.state
}

// Init fetches the project list.
func (m Model) Init() tea.Cmd {
	return fetchProjects(m.api, m.timeout)
}

// Update handles messages and user input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modeList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)

	case projectsLoadedMsg:
		m.state = m.state.Load(msg)
		if m.mode == modeEdit && m.state.Edit == nil {
			m.mode = modeList
		}
		m.clampCursor()
		return m, nil

	case projectCreatedMsg:
		m.state = m.state.Created(domain.Project(msg))
		var cmd tea.Cmd
		if m.mode == modeAdd {
			m.form, cmd = newForm(m.state.NewDraft)
		}
		return m, cmd

	case projectUpdatedMsg:
		m.state = m.state.Updated(domain.Project(msg))
		if m.mode == modeEdit && m.state.Edit == nil {
			m.mode = modeList
		}
		return m, nil

	case projectDeletedMsg:
		m.state = m.state.Deleted(int(msg))
		if m.mode == modeEdit && m.state.Edit == nil {
			m.mode = modeList
		}
		m.clampCursor()
		return m, nil

	case requestFailedMsg:
		fields := []zap.Field{zap.String("action", msg.action), zap.Error(msg.err)}
		if msg.id != 0 {
			fields = append(fields, zap.Int("project_id", msg.id))
		}
		m.log.Error("request failed", fields...)
		return m, nil
	}

	if m.mode != modeList {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.state.Projects)-1 {
			m.cursor++
		}

	case "r":
		return m, fetchProjects(m.api, m.timeout)

	case "a":
		var cmd tea.Cmd
		m.mode = modeAdd
		m.form, cmd = newForm(m.state.NewDraft)
		return m, cmd

	case "e":
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		m.state = m.state.OpenEdit(p)
		m.mode = modeEdit
		m.form, cmd = newForm(m.state.Edit.Draft)
		return m, cmd

	case "d":
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, deleteProject(m.api, m.timeout, p.ID)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "esc":
		if m.mode == modeEdit {
			m.state = m.state.CancelEdit()
		}
		m.mode = modeList
		return m, nil

	case "tab":
		m.form, cmd = m.form.next()
		return m, cmd

	case "shift+tab":
		m.form, cmd = m.form.prev()
		return m, cmd

	case "ctrl+s":
		if m.mode == modeEdit && m.state.Edit != nil {
			edit := m.state.Edit
			return m, updateProject(m.api, m.timeout, edit.ProjectID, edit.Input())
		}
		return m, createProject(m.api, m.timeout, m.state.NewDraft.Input())
	}

	m.form, cmd = m.form.update(msg)
	m.syncDraft()
	return m, cmd
}

// syncDraft copies the form's inputs into the draft bound to the current
// mode.
func (m *Model) syncDraft() {
	d := m.form.draft()
	for _, f := range console.Fields {
		if m.mode == modeEdit {
			m.state = m.state.SetEdit(f, d.Get(f))
		} else {
			m.state = m.state.SetDraft(f, d.Get(f))
		}
	}
}

func (m Model) selected() (domain.Project, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Projects) {
		return domain.Project{}, false
	}
	return m.state.Projects[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Projects) {
		m.cursor = len(m.state.Projects) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
