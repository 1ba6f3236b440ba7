package tui

import (
	"fmt"
	"strings"

	"github.com/webprojects/webprojects/internal/console"
	"github.com/webprojects/webprojects/internal/projects/domain"
)

const (
	defaultTitle       = "Default title"
	defaultDescription = "No Description"
	linkText           = "View Project"
)

// View renders the project list and any open form.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Web Projects") + "\n\n")

	if len(m.state.Projects) == 0 {
		b.WriteString(dimStyle.Render("No projects.") + "\n")
	}
	for i, p := range m.state.Projects {
		b.WriteString(renderProject(p, i == m.cursor))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeEdit:
		b.WriteString(popupStyle.Render(sectionStyle.Render("Edit Project") + "\n" + m.form.view()))
		b.WriteString("\n")
		b.WriteString(footer("tab", "next field", "ctrl+s", "save", "esc", "cancel"))
	case modeAdd:
		b.WriteString(popupStyle.Render(sectionStyle.Render("Add New Project") + "\n" + m.form.view()))
		b.WriteString("\n")
		b.WriteString(footer("tab", "next field", "ctrl+s", "add", "esc", "back"))
	default:
		b.WriteString(footer("↑/↓", "select", "e", "edit", "d", "delete", "a", "add", "r", "refresh", "q", "quit"))
	}
	return b.String()
}

func renderProject(p domain.Project, selected bool) string {
	title := textOr(p.Title, defaultTitle)
	description := textOr(p.Description, defaultDescription)

	cursor := "  "
	style := titleStyle
	if selected {
		cursor = "> "
		style = selectedTitleStyle
	}

	return fmt.Sprintf("%s%s\n  %s\n  %s\n",
		cursor,
		style.Render(title),
		descriptionStyle.Render(description),
		hyperlink(console.LinkTarget(p.URL), linkStyle.Render(linkText)),
	)
}

// textOr returns the display text of f, or fallback when f is blank.
func textOr(f domain.Field, fallback string) string {
	if f.IsBlank() {
		return fallback
	}
	if s := console.DisplayText(f); s != "" {
		return s
	}
	return fallback
}

// hyperlink wraps text in an OSC 8 escape so terminals that support it
// open url on click. url must not contain control bytes.
func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

func footer(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, footerKeyStyle.Render(pairs[i])+" "+pairs[i+1])
	}
	return footerStyle.Render(strings.Join(parts, "  ")) + "\n"
}
