package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/worklane/worklane-cli/pkg/api"
)

func (c *Cli) runProposals(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: worklane proposals <list|send|attach> [args]")
	}

	switch args[0] {
	case "list":
		return c.runProposalsList(ctx, args[1:])
	case "send":
		return c.runProposalsSend(ctx, args[1:])
	case "attach":
		return c.runProposalsAttach(ctx, args[1:])
	default:
		return fmt.Errorf("unknown proposals subcommand: %s", args[0])
	}
}

func (c *Cli) runProposalsList(ctx context.Context, args []string) error {
	// Proposals belong to the provider side of the app.
	if !c.gate(api.RoleProvider) {
		return nil
	}

	fs := pflag.NewFlagSet("proposals list", pflag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	status := fs.String("status", "", "filter by status (PENDING, ACCEPTED, REJECTED, WITHDRAWN)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := c.api.ListProposals(ctx, api.ProposalFilter{
		Page:   *page,
		Status: api.ProposalStatus(*status),
	})
	if err != nil {
		return fmt.Errorf("failed to list proposals: %w", err)
	}

	c.title("Proposals")
	c.field("Total", result.Count)
	c.io.Println()
	for _, p := range result.Results {
		c.io.Printf("  #%-5d project %-6d %10.2f  %s\n", p.ID, p.ProjectID, p.Amount, p.Status)
	}
	return nil
}

func (c *Cli) runProposalsSend(ctx context.Context, args []string) error {
	if !c.gate(api.RoleProvider) {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: worklane proposals send <project-id>")
	}
	projectID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id: %s", args[0])
	}

	c.title("Submit a proposal")

	coverLetter, err := c.io.ReadInput("Cover letter: ")
	if err != nil {
		return fmt.Errorf("failed to read cover letter: %w", err)
	}
	amountRaw, err := c.io.ReadInput("Amount: ")
	if err != nil {
		return fmt.Errorf("failed to read amount: %w", err)
	}
	amount, err := strconv.ParseFloat(amountRaw, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", amountRaw)
	}

	proposal, err := c.api.SubmitProposal(ctx, api.SubmitProposalRequest{
		ProjectID:   projectID,
		CoverLetter: coverLetter,
		Amount:      amount,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.ok("Proposal #%d submitted!", proposal.ID)
	return nil
}

func (c *Cli) runProposalsAttach(ctx context.Context, args []string) error {
	if !c.gate(api.RoleProvider) {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: worklane proposals attach <proposal-id> <file>")
	}
	proposalID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid proposal id: %s", args[0])
	}

	file, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	proposal, err := c.api.AttachProposalDocument(ctx, proposalID, filepath.Base(args[1]), file)
	if err != nil {
		return err
	}

	c.ok("Document attached to proposal #%d.", proposal.ID)
	return nil
}
