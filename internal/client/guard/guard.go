// Package guard holds the route-access decision logic. Both guards are pure
// functions of a session snapshot: they keep no state of their own and can be
// re-evaluated at any time.
package guard

import (
	"github.com/worklane/worklane-cli/internal/client/session"
	"github.com/worklane/worklane-cli/pkg/api"
)

// Known navigation targets.
const (
	LoginPath              = "/login"
	OnboardingPath         = "/onboarding"
	ClientDashboardPath    = "/client/dashboard"
	FreelanceDashboardPath = "/freelance/dashboard"
)

// Action is what the caller should do with the guarded content.
type Action int

const (
	// ActionWait means the session is still resolving: show a placeholder,
	// do not redirect.
	ActionWait Action = iota

	// ActionRender means the guarded content may be shown.
	ActionRender

	// ActionRedirect means navigate to Decision.Target instead.
	ActionRedirect
)

// Decision is the outcome of evaluating a guard.
type Decision struct {
	Action Action
	Target string // redirect target, set only for ActionRedirect
}

func wait() Decision { return Decision{Action: ActionWait} }

func render() Decision { return Decision{Action: ActionRender} }

func redirect(to string) Decision { return Decision{Action: ActionRedirect, Target: to} }

// DashboardPath returns the home dashboard for a role.
func DashboardPath(role api.Role) string {
	if role == api.RoleClient {
		return ClientDashboardPath
	}
	return FreelanceDashboardPath
}

// Public guards pages that only make sense signed out (home, login, signup).
// Authenticated users are sent to their dashboard; the guarded content never
// renders for them.
func Public(st session.Snapshot) Decision {
	if st.Loading {
		return wait()
	}
	if st.User != nil {
		return redirect(DashboardPath(st.User.Role))
	}
	return render()
}

// Protected guards authenticated pages. requiredRole may be empty to accept
// any authenticated user. A user of the wrong role is bounced sideways to
// their own dashboard, never to login — they are authenticated, just in the
// wrong place.
func Protected(st session.Snapshot, requiredRole api.Role) Decision {
	if st.Loading {
		return wait()
	}
	if st.User == nil {
		return redirect(LoginPath)
	}
	if requiredRole != "" && st.User.Role != requiredRole {
		return redirect(DashboardPath(st.User.Role))
	}

	// Freelancers whose onboarding check has not resolved yet wait rather
	// than flash a redirect that the check may immediately invalidate.
	if st.User.IsFreelance() && st.Profile == session.ProfileUnknown {
		return wait()
	}
	if st.Profile == session.ProfilePending {
		return redirect(OnboardingPath)
	}

	return render()
}
