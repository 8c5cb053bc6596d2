package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if !c.session.IsAuthenticated() {
		c.io.Println("Not logged in.")
		return nil
	}

	confirmed, err := c.io.Confirm("Log out and clear the local session?")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !confirmed {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.ok("Logged out. Your local session has been cleared.")
	return nil
}
