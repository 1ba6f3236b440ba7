package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/webprojects/webprojects/internal/console"
	"github.com/webprojects/webprojects/internal/projects/domain"
)

var (
	outputJSON  bool
	title       string
	description string
	projectURL  string
)

func init() {
	listCmd.Flags().BoolVar(&outputJSON, "json", false, "Output projects as JSON")

	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVar(&title, "title", "", "Project title")
		c.Flags().StringVar(&description, "description", "", "Project description")
		c.Flags().StringVar(&projectURL, "url", "", "Project link")
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listProjects(cmd.Context(), newClient(), cmd.OutOrStdout(), outputJSON)
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Long: `Add a project. Fields left out are sent as empty strings.

Examples:
  console add --title "Tetris" --description "Blocks" --url https://github.com/me/tetris`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		d := console.Draft{Title: title, Description: description, URL: projectURL}
		return addProject(cmd.Context(), newClient(), cmd.OutOrStdout(), d)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a project",
	Long: `Edit a project. Only the given flags change; the other fields keep
their current values.

Examples:
  console edit 2 --title "Spotify clone"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		changes := map[console.DraftField]string{}
		if cmd.Flags().Changed("title") {
			changes[console.FieldTitle] = title
		}
		if cmd.Flags().Changed("description") {
			changes[console.FieldDescription] = description
		}
		if cmd.Flags().Changed("url") {
			changes[console.FieldURL] = projectURL
		}
		return editProject(cmd.Context(), newClient(), cmd.OutOrStdout(), id, changes)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return deleteProject(cmd.Context(), newClient(), cmd.OutOrStdout(), id)
	},
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", s)
	}
	return id, nil
}

func listProjects(ctx context.Context, c *console.Client, w io.Writer, asJSON bool) error {
	items, err := c.List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No projects.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "DESCRIPTION", "URL")
	for _, p := range items {
		t.Row(strconv.Itoa(p.ID), console.DisplayText(p.Title), console.DisplayText(p.Description), console.DisplayText(p.URL))
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}

func addProject(ctx context.Context, c *console.Client, w io.Writer, d console.Draft) error {
	p, err := c.Create(ctx, d.Input())
	if err != nil {
		return fmt.Errorf("add project: %w", err)
	}
	_, err = fmt.Fprintf(w, "Created project %d\n", p.ID)
	return err
}

// editProject applies changes on top of the project's current values.
func editProject(ctx context.Context, c *console.Client, w io.Writer, id int, changes map[console.DraftField]string) error {
	items, err := c.List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	current, ok := console.State{}.Load(items).Find(id)
	if !ok {
		return fmt.Errorf("edit project %d: %w", id, domain.ErrNotFound)
	}

	in := current.Input()
	for f, v := range changes {
		in = f.Set(in, v)
	}

	p, err := c.Update(ctx, id, in)
	if err != nil {
		return fmt.Errorf("edit project %d: %w", id, err)
	}
	_, err = fmt.Fprintf(w, "Updated project %d\n", p.ID)
	return err
}

func deleteProject(ctx context.Context, c *console.Client, w io.Writer, id int) error {
	if err := c.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("project %d not found", id)
		}
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	_, err := fmt.Fprintf(w, "Deleted project %d\n", id)
	return err
}
