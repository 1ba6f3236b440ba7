package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webprojects/webprojects/internal/projects/domain"
)

func project(id int, title string) domain.Project {
	return domain.Project{
		ID:          id,
		Title:       domain.Text(title),
		Description: domain.Text(title + " description"),
		URL:         domain.Text("https://example.com/" + title),
	}
}

func TestState_Load(t *testing.T) {
	items := []domain.Project{project(1, "a"), project(2, "b")}
	s := State{}.Load(items)

	require.Len(t, s.Projects, 2)
	items[0].ID = 99
	assert.Equal(t, 1, s.Projects[0].ID)
}

func TestState_CreatedAppendsAndResetsDraft(t *testing.T) {
	s := State{}.Load([]domain.Project{project(1, "a")})
	s = s.SetDraft(FieldTitle, "new").SetDraft(FieldURL, "u")
	assert.Equal(t, Draft{Title: "new", URL: "u"}, s.NewDraft)

	s = s.Created(project(2, "new"))
	require.Len(t, s.Projects, 2)
	assert.Equal(t, 2, s.Projects[1].ID)
	assert.Equal(t, Draft{}, s.NewDraft)
}

func TestState_EditFlow(t *testing.T) {
	s := State{}.Load([]domain.Project{project(1, "a"), project(2, "b")})

	s = s.OpenEdit(s.Projects[0])
	require.NotNil(t, s.Edit)
	assert.Equal(t, 1, s.Edit.ProjectID)
	assert.Equal(t, "a", s.Edit.Draft.Title)

	s = s.SetEdit(FieldTitle, "edited")
	assert.Equal(t, "edited", s.Edit.Draft.Title)

	saved := project(1, "from-server")
	s = s.Updated(saved)
	assert.Nil(t, s.Edit)
	assert.Equal(t, saved, s.Projects[0])
	assert.Equal(t, "b", s.Projects[1].Title.String())
}

func TestState_OpenEditOnSecondRecordDiscardsDraft(t *testing.T) {
	s := State{}.Load([]domain.Project{project(1, "a"), project(2, "b")})

	s = s.OpenEdit(s.Projects[0]).SetEdit(FieldTitle, "unsaved")
	s = s.OpenEdit(s.Projects[1])

	require.NotNil(t, s.Edit)
	assert.Equal(t, 2, s.Edit.ProjectID)
	assert.Equal(t, "b", s.Edit.Draft.Title)
	assert.Equal(t, "a", s.Projects[0].Title.String())
}

func TestState_CancelEdit(t *testing.T) {
	s := State{}.Load([]domain.Project{project(1, "a")})
	s = s.OpenEdit(s.Projects[0]).SetEdit(FieldTitle, "x").CancelEdit()

	assert.Nil(t, s.Edit)
	assert.Equal(t, "a", s.Projects[0].Title.String())

	s = s.SetEdit(FieldTitle, "ignored")
	assert.Nil(t, s.Edit)
}

func TestState_UpdatedForOtherRecordKeepsEditOpen(t *testing.T) {
	s := State{}.Load([]domain.Project{project(1, "a"), project(2, "b")})
	s = s.OpenEdit(s.Projects[1])

	s = s.Updated(project(1, "z"))
	require.NotNil(t, s.Edit)
	assert.Equal(t, 2, s.Edit.ProjectID)
}

func TestState_Deleted(t *testing.T) {
	s := State{}.Load([]domain.Project{project(1, "a"), project(2, "b"), project(3, "c")})
	s = s.OpenEdit(s.Projects[1])

	s = s.Deleted(2)
	require.Len(t, s.Projects, 2)
	assert.Equal(t, 1, s.Projects[0].ID)
	assert.Equal(t, 3, s.Projects[1].ID)
	assert.Nil(t, s.Edit)

	s = s.Deleted(42)
	assert.Len(t, s.Projects, 2)
}

func TestState_DoesNotShareBackingArray(t *testing.T) {
	base := State{}.Load([]domain.Project{project(1, "a"), project(2, "b")})

	_ = base.Deleted(1)
	_ = base.Updated(project(2, "z"))

	assert.Equal(t, 1, base.Projects[0].ID)
	assert.Equal(t, "b", base.Projects[1].Title.String())
}

func TestState_Find(t *testing.T) {
	s := State{}.Load([]domain.Project{project(4, "d")})

	p, ok := s.Find(4)
	assert.True(t, ok)
	assert.Equal(t, 4, p.ID)

	_, ok = s.Find(5)
	assert.False(t, ok)
}

func TestDraft(t *testing.T) {
	d := Draft{}.With(FieldTitle, "t").With(FieldDescription, "d").With(FieldURL, "u")
	for _, f := range Fields {
		assert.NotEmpty(t, d.Get(f))
	}
	assert.Equal(t, "Description", FieldDescription.String())

	in := d.Input()
	assert.Equal(t, `"t"`, string(in.Title))

	empty := Draft{}.Input()
	assert.Equal(t, `""`, string(empty.URL))
}

func TestEdit_InputKeepsUntouchedValues(t *testing.T) {
	p := domain.Project{ID: 1, Title: domain.Field("5"), Description: domain.Field("null"), URL: domain.Text("u")}
	s := State{}.Load([]domain.Project{p}).OpenEdit(p)

	in := s.Edit.Input()
	assert.Equal(t, "5", string(in.Title))
	assert.Equal(t, "null", string(in.Description))
	assert.Equal(t, `"u"`, string(in.URL))

	in = s.SetEdit(FieldTitle, "6").SetEdit(FieldDescription, "now set").Edit.Input()
	assert.Equal(t, `"6"`, string(in.Title))
	assert.Equal(t, `"now set"`, string(in.Description))
	assert.Equal(t, `"u"`, string(in.URL))
}

func TestDraftField_Set(t *testing.T) {
	in := domain.ProjectInput{Title: domain.Field("5")}
	in = FieldURL.Set(in, "u")

	assert.Equal(t, "5", string(in.Title))
	assert.Nil(t, in.Description)
	assert.Equal(t, `"u"`, string(in.URL))
}
