package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/worklane/worklane-cli/internal/client/guard"
	"github.com/worklane/worklane-cli/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	if decision := guard.Public(c.session.Snapshot()); decision.Action == guard.ActionRedirect {
		c.io.Printf("Already logged in. Your dashboard: %s\n", decision.Target)
		return nil
	}

	c.title("Create an account")

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	role, kind, err := c.readAccountType()
	if err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering...")

	resp, err := c.session.Register(ctx, api.RegisterRequest{
		Email:        email,
		Username:     username,
		Password:     password,
		Role:         role,
		ProviderKind: kind,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.ok("Account created!")
	if resp.Detail != "" {
		c.io.Println(resp.Detail)
	}
	if resp.ActivationRequired {
		c.io.Println()
		c.io.Println("Check your inbox for the activation email, then run:")
		c.io.Println("  worklane activate <token>")
	}

	return nil
}

func (c *Cli) readAccountType() (api.Role, api.ProviderKind, error) {
	answer, err := c.io.ReadInput("Account type (client/freelance/agency): ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read account type: %w", err)
	}

	switch strings.ToLower(answer) {
	case "client":
		return api.RoleClient, "", nil
	case "freelance", "freelancer":
		return api.RoleProvider, api.KindFreelance, nil
	case "agency":
		return api.RoleProvider, api.KindAgency, nil
	default:
		return "", "", fmt.Errorf("unknown account type: %s", answer)
	}
}
