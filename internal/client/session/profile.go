package session

// ProfileState is the onboarding state of the current user's freelance
// profile. Three variants keep "not yet checked" distinct from "checked and
// incomplete" at the type level.
type ProfileState int

const (
	// ProfileUnknown means the check has not run yet, or no user is signed in.
	ProfileUnknown ProfileState = iota

	// ProfilePending means the user is authenticated but the required
	// onboarding profile does not exist server-side.
	ProfilePending

	// ProfileComplete means no onboarding step is required: either the
	// profile exists, or the user's role never needs one.
	ProfileComplete
)

func (p ProfileState) String() string {
	switch p {
	case ProfilePending:
		return "pending"
	case ProfileComplete:
		return "complete"
	default:
		return "unknown"
	}
}
