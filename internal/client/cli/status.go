package cli

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/worklane/worklane-cli/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.title("Session status")

	user := c.session.User()
	if user == nil {
		c.io.Println("Status: not authenticated")
		c.io.Println()
		c.io.Println("Run 'worklane login' to authenticate.")
		return nil
	}

	c.field("Status", okStyle.Render("authenticated"))
	c.field("Email", user.Email)
	c.field("Username", user.Username)
	c.field("Role", string(user.Role))
	if user.ProviderKind != "" {
		c.field("Kind", string(user.ProviderKind))
	}
	c.field("Profile", c.session.Profile().String())
	c.field("Joined", user.DateJoined.Format("2006-01-02"))

	c.printTokenExpiry(ctx)
	return nil
}

// printTokenExpiry decodes the stored access token without verifying it —
// the client has no signing key, and only the expiry claim is of interest.
func (c *Cli) printTokenExpiry(ctx context.Context) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCredentialsNotFound) {
			c.log.Debug().Err(err).Msg("failed to read access token")
		}
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	c.field("Token expires", exp.Format(time.RFC3339))
	if remaining := time.Until(exp.Time); remaining > 0 {
		c.field("Remaining", remaining.Round(time.Second))
	} else {
		c.warn("Access token has expired; it will be refreshed on the next request.")
	}
}
