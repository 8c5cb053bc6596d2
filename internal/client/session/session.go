package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/worklane/worklane-cli/internal/client/api"
	"github.com/worklane/worklane-cli/internal/client/storage"
	"github.com/worklane/worklane-cli/internal/validation"
	pkgapi "github.com/worklane/worklane-cli/pkg/api"
)

// Session owns the in-memory authentication state of the application: the
// current user, the startup loading flag, and the derived onboarding state.
// It is constructed once at the composition root and passed to everything
// that needs it; the route guards read it through Snapshot.
type Session struct {
	api   *api.Client
	creds storage.CredentialStore
	log   zerolog.Logger

	mu      sync.RWMutex
	user    *pkgapi.User
	loading bool
	profile ProfileState
}

// Snapshot is a point-in-time view of the session state, the sole input of
// the route-access guards.
type Snapshot struct {
	Loading bool
	User    *pkgapi.User
	Profile ProfileState
}

// New creates a session in the loading state. Call Resolve to establish it.
func New(apiClient *api.Client, creds storage.CredentialStore, log zerolog.Logger) *Session {
	return &Session{
		api:     apiClient,
		creds:   creds,
		log:     log,
		loading: true,
		profile: ProfileUnknown,
	}
}

// Resolve establishes the session at startup. When both an access token and
// a cached user snapshot exist they are trusted without a network call: an
// eager /users/me/ that fails on a transient refresh-cookie hiccup would log
// out a user whose session is perfectly valid. When either is missing, one
// RefreshUser attempt covers the valid-cookie-but-empty-storage case; its
// failure simply leaves the session unauthenticated.
func (s *Session) Resolve(ctx context.Context) {
	defer s.finishLoading()

	token, tokenErr := s.creds.Token(ctx)
	cached, userErr := s.creds.User(ctx)
	if tokenErr == nil && token != "" && userErr == nil {
		s.setUser(cached)
		s.evaluateProfile(ctx)
		return
	}

	if err := s.RefreshUser(ctx); err != nil {
		s.log.Debug().Err(err).Msg("no session established at startup")
	}
}

// Login authenticates against the server, persists the returned token and
// user snapshot, and updates the in-memory state.
func (s *Session) Login(ctx context.Context, req pkgapi.LoginRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return err
	}

	if err := s.creds.SaveSession(ctx, resp.Access, &resp.User); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.setUser(&resp.User)
	s.evaluateProfile(ctx)
	return nil
}

// Register creates an account. The caller stays unauthenticated: the server
// requires the emailed activation token to be redeemed first.
func (s *Session) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	return s.api.Register(ctx, req)
}

// Activate redeems an emailed activation token.
func (s *Session) Activate(ctx context.Context, token string) error {
	req := pkgapi.ActivateRequest{Token: token}
	if err := validation.Struct(req); err != nil {
		return err
	}
	return s.api.Activate(ctx, req)
}

// Logout ends the session. The server call is best effort — logout must
// succeed client-side even when the server is unreachable — but the
// credential store and the in-memory state are always cleared.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to logout on server")
	}

	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	s.mu.Lock()
	s.user = nil
	s.profile = ProfileUnknown
	s.mu.Unlock()

	return nil
}

// RefreshUser re-fetches the authoritative identity from /users/me/ and
// updates the cached snapshot. On failure the session is left untouched: the
// pipeline has already done its own refresh-and-retry, so an error reaching
// this layer is treated as environmental, not as proof the session is dead.
func (s *Session) RefreshUser(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh user: %w", err)
	}

	if err := s.creds.SaveUser(ctx, user); err != nil {
		s.log.Warn().Err(err).Msg("failed to cache user snapshot")
	}

	s.setUser(user)
	s.evaluateProfile(ctx)
	return nil
}

// User returns the authenticated user, or nil.
func (s *Session) User() *pkgapi.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// Loading reports whether the initial session restoration is still running.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Profile returns the onboarding state of the current user.
func (s *Session) Profile() ProfileState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Snapshot returns the current state for guard evaluation.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Loading: s.loading,
		User:    s.user,
		Profile: s.profile,
	}
}

// evaluateProfile derives the onboarding state for the current user. Only
// independent freelancers are subject to the check; for them, only a
// confirmed-absent profile (404) blocks access. Any other failure counts as
// complete, so an ambiguous error never locks a user out.
func (s *Session) evaluateProfile(ctx context.Context) {
	user := s.User()

	state := ProfileComplete
	switch {
	case user == nil:
		state = ProfileUnknown
	case !user.IsFreelance():
		state = ProfileComplete
	default:
		if _, err := s.api.FreelanceProfile(ctx); err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
				state = ProfilePending
			} else {
				s.log.Debug().Err(err).Msg("profile check failed, assuming complete")
			}
		}
	}

	s.mu.Lock()
	s.profile = state
	s.mu.Unlock()
}

func (s *Session) setUser(user *pkgapi.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

func (s *Session) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
