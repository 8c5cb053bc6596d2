package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/worklane/worklane-cli/pkg/api"
)

func (c *Cli) runProjects(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: worklane projects <list|view|create> [args]")
	}

	switch args[0] {
	case "list":
		return c.runProjectsList(ctx, args[1:])
	case "view":
		return c.runProjectsView(ctx, args[1:])
	case "create":
		return c.runProjectsCreate(ctx)
	default:
		return fmt.Errorf("unknown projects subcommand: %s", args[0])
	}
}

func (c *Cli) runProjectsList(ctx context.Context, args []string) error {
	if !c.gate("") {
		return nil
	}

	fs := pflag.NewFlagSet("projects list", pflag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	search := fs.String("search", "", "search term")
	status := fs.String("status", "", "filter by status (OPEN, IN_PROGRESS, COMPLETED, CANCELLED)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := c.api.ListProjects(ctx, api.ProjectFilter{
		Page:   *page,
		Search: *search,
		Status: api.ProjectStatus(*status),
	})
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	c.title("Projects")
	c.field("Total", result.Count)
	c.io.Println()
	for _, p := range result.Results {
		c.io.Printf("  #%-5d %-40s %10.2f  %s\n", p.ID, truncate(p.Title, 40), p.Budget, p.Status)
	}
	if result.Next != nil {
		c.io.Println()
		c.io.Printf("More results: --page %d\n", *page+1)
	}
	return nil
}

func (c *Cli) runProjectsView(ctx context.Context, args []string) error {
	if !c.gate("") {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: worklane projects view <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id: %s", args[0])
	}

	project, err := c.api.Project(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}

	c.title(project.Title)
	c.field("Status", string(project.Status))
	c.field("Budget", fmt.Sprintf("%.2f", project.Budget))
	c.field("Posted", project.CreatedAt.Format("2006-01-02"))
	if len(project.Skills) > 0 {
		c.field("Skills", project.Skills)
	}
	c.io.Println()
	c.io.Println(project.Description)
	return nil
}

func (c *Cli) runProjectsCreate(ctx context.Context) error {
	// Posting a project is a client-side area of the app.
	if !c.gate(api.RoleClient) {
		return nil
	}

	c.title("Post a project")

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	description, err := c.io.ReadInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	budgetRaw, err := c.io.ReadInput("Budget: ")
	if err != nil {
		return fmt.Errorf("failed to read budget: %w", err)
	}
	budget, err := strconv.ParseFloat(budgetRaw, 64)
	if err != nil {
		return fmt.Errorf("invalid budget: %s", budgetRaw)
	}

	project, err := c.api.CreateProject(ctx, api.CreateProjectRequest{
		Title:       title,
		Description: description,
		Budget:      budget,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.ok("Project #%d posted!", project.ID)
	return nil
}
