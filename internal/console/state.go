package console

import (
	"slices"

	"github.com/webprojects/webprojects/internal/projects/domain"
)

// DraftField names one editable member of a project draft.
type DraftField int

const (
	FieldTitle DraftField = iota
	FieldDescription
	FieldURL
)

// Fields lists the draft fields in form order.
var Fields = []DraftField{FieldTitle, FieldDescription, FieldURL}

func (f DraftField) String() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldDescription:
		return "Description"
	case FieldURL:
		return "URL"
	}
	return "Unknown"
}

// Draft holds the text typed into a project form.
type Draft struct {
	Title       string
	Description string
	URL         string
}

// DraftOf copies the current values of p into a draft.
func DraftOf(p domain.Project) Draft {
	return Draft{
		Title:       p.Title.String(),
		Description: p.Description.String(),
		URL:         p.URL.String(),
	}
}

// Get returns the value of field f.
func (d Draft) Get(f DraftField) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	case FieldURL:
		return d.URL
	}
	return ""
}

// With returns d with field f set to value.
func (d Draft) With(f DraftField, value string) Draft {
	switch f {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldURL:
		d.URL = value
	}
	return d
}

// Input converts the draft to a request body. Every member is sent as a
// JSON string, empty ones included.
func (d Draft) Input() domain.ProjectInput {
	return domain.ProjectInput{
		Title:       domain.Text(d.Title),
		Description: domain.Text(d.Description),
		URL:         domain.Text(d.URL),
	}
}

// Set returns in with member f replaced by the JSON string value.
func (f DraftField) Set(in domain.ProjectInput, value string) domain.ProjectInput {
	switch f {
	case FieldTitle:
		in.Title = domain.Text(value)
	case FieldDescription:
		in.Description = domain.Text(value)
	case FieldURL:
		in.URL = domain.Text(value)
	}
	return in
}

// Edit is the single edit slot: the id of the targeted project, the
// values being edited and the record's values when the slot was opened.
type Edit struct {
	ProjectID int
	Draft     Draft
	Original  domain.ProjectInput
}

// Input builds the update body. Members whose text was not changed keep
// their original JSON value, so numbers and nulls survive a save.
func (e Edit) Input() domain.ProjectInput {
	in := e.Original
	before := DraftOf(domain.Project{Title: in.Title, Description: in.Description, URL: in.URL})
	for _, f := range Fields {
		if v := e.Draft.Get(f); v != before.Get(f) {
			in = f.Set(in, v)
		}
	}
	return in
}

// State is the client's mirror of the project list plus its pending
// drafts. Methods return a new State and never mutate the receiver's
// project slice.
type State struct {
	Projects []domain.Project
	NewDraft Draft
	// Edit is nil while the edit popup is closed.
	Edit *Edit
}

// Load replaces the mirror with items.
func (s State) Load(items []domain.Project) State {
	s.Projects = slices.Clone(items)
	if s.Edit != nil && s.index(s.Edit.ProjectID) < 0 {
		s.Edit = nil
	}
	return s
}

// Created appends the record returned by the service and clears the
// create draft.
func (s State) Created(p domain.Project) State {
	s.Projects = append(slices.Clone(s.Projects), p)
	s.NewDraft = Draft{}
	return s
}

// Updated replaces the mirrored record with the service's copy and
// closes the edit slot if it targets that record.
func (s State) Updated(p domain.Project) State {
	if i := s.index(p.ID); i >= 0 {
		s.Projects = slices.Clone(s.Projects)
		s.Projects[i] = p
	}
	if s.Edit != nil && s.Edit.ProjectID == p.ID {
		s.Edit = nil
	}
	return s
}

// Deleted drops the record with the given id.
func (s State) Deleted(id int) State {
	s.Projects = slices.DeleteFunc(slices.Clone(s.Projects), func(p domain.Project) bool { return p.ID == id })
	if s.Edit != nil && s.Edit.ProjectID == id {
		s.Edit = nil
	}
	return s
}

// SetDraft changes one field of the create draft.
func (s State) SetDraft(f DraftField, value string) State {
	s.NewDraft = s.NewDraft.With(f, value)
	return s
}

// OpenEdit points the edit slot at p, seeded with its current values.
// Any draft for a previously targeted record is discarded.
func (s State) OpenEdit(p domain.Project) State {
	s.Edit = &Edit{ProjectID: p.ID, Draft: DraftOf(p), Original: p.Input()}
	return s
}

// SetEdit changes one field of the open edit draft. It is a no-op when
// the popup is closed.
func (s State) SetEdit(f DraftField, value string) State {
	if s.Edit == nil {
		return s
	}
	edit := *s.Edit
	edit.Draft = edit.Draft.With(f, value)
	s.Edit = &edit
	return s
}

// CancelEdit closes the edit popup without saving.
func (s State) CancelEdit() State {
	s.Edit = nil
	return s
}

// Find returns the mirrored record with the given id.
func (s State) Find(id int) (domain.Project, bool) {
	if i := s.index(id); i >= 0 {
		return s.Projects[i], true
	}
	return domain.Project{}, false
}

func (s State) index(id int) int {
	return slices.IndexFunc(s.Projects, func(p domain.Project) bool { return p.ID == id })
}
