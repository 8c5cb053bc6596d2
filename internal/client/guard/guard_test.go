package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worklane/worklane-cli/internal/client/session"
	"github.com/worklane/worklane-cli/pkg/api"
)

func client() *api.User {
	return &api.User{ID: 1, Role: api.RoleClient}
}

func freelancer() *api.User {
	return &api.User{ID: 2, Role: api.RoleProvider, ProviderKind: api.KindFreelance}
}

func agency() *api.User {
	return &api.User{ID: 3, Role: api.RoleProvider, ProviderKind: api.KindAgency}
}

func TestPublic(t *testing.T) {
	tests := []struct {
		name string
		st   session.Snapshot
		want Decision
	}{
		{
			name: "loading waits",
			st:   session.Snapshot{Loading: true},
			want: Decision{Action: ActionWait},
		},
		{
			name: "anonymous renders",
			st:   session.Snapshot{},
			want: Decision{Action: ActionRender},
		},
		{
			name: "client is sent to client dashboard",
			st:   session.Snapshot{User: client(), Profile: session.ProfileComplete},
			want: Decision{Action: ActionRedirect, Target: ClientDashboardPath},
		},
		{
			name: "freelancer is sent to freelance dashboard",
			st:   session.Snapshot{User: freelancer(), Profile: session.ProfileComplete},
			want: Decision{Action: ActionRedirect, Target: FreelanceDashboardPath},
		},
		{
			name: "onboarding state does not matter on public pages",
			st:   session.Snapshot{User: freelancer(), Profile: session.ProfilePending},
			want: Decision{Action: ActionRedirect, Target: FreelanceDashboardPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Public(tt.st))
		})
	}
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name string
		st   session.Snapshot
		role api.Role
		want Decision
	}{
		{
			name: "loading waits",
			st:   session.Snapshot{Loading: true},
			want: Decision{Action: ActionWait},
		},
		{
			name: "anonymous is sent to login",
			st:   session.Snapshot{},
			want: Decision{Action: ActionRedirect, Target: LoginPath},
		},
		{
			name: "authenticated client renders",
			st:   session.Snapshot{User: client(), Profile: session.ProfileComplete},
			want: Decision{Action: ActionRender},
		},
		{
			name: "role match renders",
			st:   session.Snapshot{User: client(), Profile: session.ProfileComplete},
			role: api.RoleClient,
			want: Decision{Action: ActionRender},
		},
		{
			name: "client in provider area bounces to own dashboard",
			st:   session.Snapshot{User: client(), Profile: session.ProfileComplete},
			role: api.RoleProvider,
			want: Decision{Action: ActionRedirect, Target: ClientDashboardPath},
		},
		{
			name: "provider in client area bounces to own dashboard",
			st:   session.Snapshot{User: freelancer(), Profile: session.ProfileComplete},
			role: api.RoleClient,
			want: Decision{Action: ActionRedirect, Target: FreelanceDashboardPath},
		},
		{
			name: "freelancer with unresolved onboarding waits",
			st:   session.Snapshot{User: freelancer(), Profile: session.ProfileUnknown},
			want: Decision{Action: ActionWait},
		},
		{
			name: "freelancer with pending onboarding is sent to onboarding",
			st:   session.Snapshot{User: freelancer(), Profile: session.ProfilePending},
			want: Decision{Action: ActionRedirect, Target: OnboardingPath},
		},
		{
			name: "freelancer with complete onboarding renders",
			st:   session.Snapshot{User: freelancer(), Profile: session.ProfileComplete},
			role: api.RoleProvider,
			want: Decision{Action: ActionRender},
		},
		{
			name: "agency never waits on onboarding",
			st:   session.Snapshot{User: agency(), Profile: session.ProfileComplete},
			want: Decision{Action: ActionRender},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Protected(tt.st, tt.role))
		})
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, ClientDashboardPath, DashboardPath(api.RoleClient))
	assert.Equal(t, FreelanceDashboardPath, DashboardPath(api.RoleProvider))
}
