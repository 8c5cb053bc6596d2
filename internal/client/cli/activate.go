package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runActivate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: worklane activate <token>")
	}

	if err := c.session.Activate(ctx, args[0]); err != nil {
		return err
	}

	c.ok("Account activated! You can now run 'worklane login'.")
	return nil
}
