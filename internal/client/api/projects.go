package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/worklane/worklane-cli/pkg/api"
)

// ListProjects fetches a page of project postings. Zero-valued filter fields
// are left out of the query string entirely.
func (c *Client) ListProjects(ctx context.Context, filter api.ProjectFilter) (*api.Paginated[api.Project], error) {
	query := map[string]string{
		"search": filter.Search,
		"status": string(filter.Status),
	}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}

	var page api.Paginated[api.Project]
	if err := c.get(ctx, "/projects/", query, &page); err != nil {
		return nil, fmt.Errorf("list projects request failed: %w", err)
	}
	return &page, nil
}

// Project fetches a single project posting.
func (c *Client) Project(ctx context.Context, id int64) (*api.Project, error) {
	var project api.Project
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/", id), nil, &project); err != nil {
		return nil, fmt.Errorf("project request failed: %w", err)
	}
	return &project, nil
}

// CreateProject posts a new project (CLIENT role).
func (c *Client) CreateProject(ctx context.Context, req api.CreateProjectRequest) (*api.Project, error) {
	var project api.Project
	if err := c.post(ctx, "/projects/", req, &project); err != nil {
		return nil, fmt.Errorf("create project request failed: %w", err)
	}
	return &project, nil
}
