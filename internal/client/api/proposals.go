package api

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/worklane/worklane-cli/pkg/api"
)

// ListProposals fetches a page of the current user's proposals.
func (c *Client) ListProposals(ctx context.Context, filter api.ProposalFilter) (*api.Paginated[api.Proposal], error) {
	query := map[string]string{
		"status": string(filter.Status),
	}
	if filter.Page > 0 {
		query["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Project > 0 {
		query["project"] = strconv.FormatInt(filter.Project, 10)
	}

	var page api.Paginated[api.Proposal]
	if err := c.get(ctx, "/proposals/", query, &page); err != nil {
		return nil, fmt.Errorf("list proposals request failed: %w", err)
	}
	return &page, nil
}

// SubmitProposal bids on a project.
func (c *Client) SubmitProposal(ctx context.Context, req api.SubmitProposalRequest) (*api.Proposal, error) {
	var proposal api.Proposal
	if err := c.post(ctx, "/proposals/", req, &proposal); err != nil {
		return nil, fmt.Errorf("submit proposal request failed: %w", err)
	}
	return &proposal, nil
}

// AttachProposalDocument uploads a supporting document for a proposal.
func (c *Client) AttachProposalDocument(ctx context.Context, proposalID int64, filename string, content io.Reader) (*api.Proposal, error) {
	files := []FileField{{Field: "document", Name: filename, Content: content}}

	var proposal api.Proposal
	path := fmt.Sprintf("/proposals/%d/document/", proposalID)
	if err := c.postForm(ctx, path, nil, files, &proposal); err != nil {
		return nil, fmt.Errorf("attach proposal document failed: %w", err)
	}
	return &proposal, nil
}
