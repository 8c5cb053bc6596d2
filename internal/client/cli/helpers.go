package cli

import (
	"github.com/worklane/worklane-cli/internal/client/guard"
	"github.com/worklane/worklane-cli/pkg/api"
)

// gate evaluates the protected guard for the current session and reports
// whether the command may proceed. When it may not, the CLI equivalent of
// the redirect is printed instead.
func (c *Cli) gate(required api.Role) bool {
	decision := guard.Protected(c.session.Snapshot(), required)
	switch decision.Action {
	case guard.ActionRender:
		return true
	case guard.ActionWait:
		c.warn("Session is still being checked, try again in a moment.")
		return false
	default:
		switch decision.Target {
		case guard.LoginPath:
			c.warn("You are not logged in. Run 'worklane login' first.")
		case guard.OnboardingPath:
			c.warn("Your freelance profile is not set up yet. Run 'worklane profile setup'.")
		default:
			c.warn("This area is for another role. Your dashboard: %s", decision.Target)
		}
		return false
	}
}
