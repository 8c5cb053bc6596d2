package cli

import (
	"context"
	"fmt"

	"github.com/worklane/worklane-cli/pkg/api"
)

func (c *Cli) runDashboard(ctx context.Context) error {
	if !c.gate("") {
		return nil
	}

	user := c.session.User()
	if user.Role == api.RoleClient {
		return c.clientDashboard(ctx)
	}
	return c.freelanceDashboard(ctx)
}

func (c *Cli) clientDashboard(ctx context.Context) error {
	c.title("Client dashboard")

	page, err := c.api.ListProjects(ctx, api.ProjectFilter{})
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	c.field("Open projects", page.Count)
	c.io.Println()
	for _, p := range page.Results {
		c.io.Printf("  #%d  %-40s  %s\n", p.ID, truncate(p.Title, 40), p.Status)
	}
	return nil
}

func (c *Cli) freelanceDashboard(ctx context.Context) error {
	c.title("Freelancer dashboard")

	page, err := c.api.ListProposals(ctx, api.ProposalFilter{})
	if err != nil {
		return fmt.Errorf("failed to load proposals: %w", err)
	}

	c.field("Proposals", page.Count)
	c.io.Println()
	for _, p := range page.Results {
		c.io.Printf("  #%d  project %-6d  %8.2f  %s\n", p.ID, p.ProjectID, p.Amount, p.Status)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
