package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/webprojects/webprojects/internal/console"
)

const formWidth = 50

// form edits the three fields of a project draft.
type form struct {
	title       textinput.Model
	description textarea.Model
	url         textinput.Model
	focus       console.DraftField
}

// newForm returns a form seeded with d and focused on the title. The
// command starts the cursor blink.
func newForm(d console.Draft) (form, tea.Cmd) {
	title := textinput.New()
	title.Prompt = ""
	title.CharLimit = 256
	title.Width = formWidth
	title.SetValue(d.Title)
	title.CursorEnd()

	description := textarea.New()
	description.ShowLineNumbers = false
	description.CharLimit = 2000
	description.SetWidth(formWidth)
	description.SetHeight(3)
	description.SetValue(d.Description)

	url := textinput.New()
	url.Prompt = ""
	url.CharLimit = 2048
	url.Width = formWidth
	url.SetValue(d.URL)
	url.CursorEnd()

	f := form{title: title, description: description, url: url}
	cmd := f.title.Focus()
	return f, cmd
}

func (f form) draft() console.Draft {
	return console.Draft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		URL:         f.url.Value(),
	}
}

// focusOn moves keyboard focus to field target.
func (f form) focusOn(target console.DraftField) (form, tea.Cmd) {
	f.title.Blur()
	f.description.Blur()
	f.url.Blur()
	f.focus = target

	switch target {
	case console.FieldDescription:
		return f, f.description.Focus()
	case console.FieldURL:
		return f, f.url.Focus()
	default:
		return f, f.title.Focus()
	}
}

func (f form) next() (form, tea.Cmd) {
	return f.focusOn((f.focus + 1) % console.DraftField(len(console.Fields)))
}

func (f form) prev() (form, tea.Cmd) {
	n := console.DraftField(len(console.Fields))
	return f.focusOn((f.focus + n - 1) % n)
}

// update routes msg to the focused input.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case console.FieldDescription:
		f.description, cmd = f.description.Update(msg)
	case console.FieldURL:
		f.url, cmd = f.url.Update(msg)
	default:
		f.title, cmd = f.title.Update(msg)
	}
	return f, cmd
}

func (f form) view() string {
	var b strings.Builder
	for _, field := range console.Fields {
		label := labelStyle
		if field == f.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(field.String()+":") + "\n")
		switch field {
		case console.FieldTitle:
			b.WriteString(f.title.View())
		case console.FieldDescription:
			b.WriteString(f.description.View())
		case console.FieldURL:
			b.WriteString(f.url.View())
		}
		b.WriteString("\n")
	}
	return b.String()
}
