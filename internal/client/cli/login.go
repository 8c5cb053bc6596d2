package cli

import (
	"context"
	"fmt"

	"github.com/worklane/worklane-cli/internal/client/guard"
	"github.com/worklane/worklane-cli/internal/client/session"
	"github.com/worklane/worklane-cli/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	// Public guard: an authenticated user never sees the login form.
	if decision := guard.Public(c.session.Snapshot()); decision.Action == guard.ActionRedirect {
		user := c.session.User()
		c.io.Printf("Already logged in as %s. Your dashboard: %s\n", user.Email, decision.Target)
		return nil
	}

	c.title("Login")

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, api.LoginRequest{Email: email, Password: password}); err != nil {
		return err
	}

	user := c.session.User()
	c.io.Println()
	c.ok("Login successful!")
	c.field("Email", user.Email)
	c.field("Username", user.Username)
	c.field("Dashboard", guard.DashboardPath(user.Role))

	if c.session.Profile() == session.ProfilePending {
		c.io.Println()
		c.warn("Your freelance profile is not set up yet. Run 'worklane profile setup'.")
	}

	return nil
}
