package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/worklane-cli/internal/client/api"
	"github.com/worklane/worklane-cli/internal/client/storage"
	pkgapi "github.com/worklane/worklane-cli/pkg/api"
)

type memoryStore struct {
	mu    sync.Mutex
	token string
	user  *pkgapi.User
}

func (m *memoryStore) SaveToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memoryStore) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" {
		return "", storage.ErrCredentialsNotFound
	}
	return m.token, nil
}

func (m *memoryStore) SaveSession(ctx context.Context, token string, user *pkgapi.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = user
	return nil
}

func (m *memoryStore) SaveUser(ctx context.Context, user *pkgapi.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	return nil
}

func (m *memoryStore) User(ctx context.Context) (*pkgapi.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, storage.ErrCredentialsNotFound
	}
	return m.user, nil
}

func (m *memoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}

func (m *memoryStore) state() (string, *pkgapi.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.user
}

func clientUser() pkgapi.User {
	return pkgapi.User{
		ID:       1,
		Email:    "client@example.com",
		Username: "acme",
		Role:     pkgapi.RoleClient,
		IsActive: true,
	}
}

func freelanceUser() pkgapi.User {
	return pkgapi.User{
		ID:           2,
		Email:        "dev@example.com",
		Username:     "dev",
		Role:         pkgapi.RoleProvider,
		ProviderKind: pkgapi.KindFreelance,
		IsActive:     true,
	}
}

func newTestSession(serverURL string, creds storage.CredentialStore) *Session {
	apiClient := api.NewClient(serverURL, 0, creds, zerolog.Nop())
	return New(apiClient, creds, zerolog.Nop())
}

func TestSession_LoginSuccess(t *testing.T) {
	user := clientUser()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login/", func(w http.ResponseWriter, r *http.Request) {
		var req pkgapi.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "client@example.com", req.Email)

		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "rt", HttpOnly: true})
		_ = json.NewEncoder(w).Encode(pkgapi.LoginResponse{Access: "access-1", User: user})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	creds := &memoryStore{}
	sess := newTestSession(server.URL, creds)

	err := sess.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "client@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, ProfileComplete, sess.Profile())

	token, stored := creds.state()
	assert.Equal(t, "access-1", token)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)
}

func TestSession_LoginFreelancePendingProfile(t *testing.T) {
	user := freelanceUser()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.LoginResponse{Access: "access-1", User: user})
	})
	mux.HandleFunc("/users/freelance/profile/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	sess := newTestSession(server.URL, &memoryStore{})

	err := sess.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "dev@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, ProfilePending, sess.Profile())
}

func TestSession_LoginInvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	creds := &memoryStore{}
	sess := newTestSession(server.URL, creds)

	err := sess.Login(context.Background(), pkgapi.LoginRequest{
		Email:    "client@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	assert.False(t, sess.IsAuthenticated())
	token, _ := creds.state()
	assert.Empty(t, token)
}

func TestSession_LoginValidation(t *testing.T) {
	// Validation failures never reach the network.
	sess := newTestSession("http://127.0.0.1:0", &memoryStore{})

	err := sess.Login(context.Background(), pkgapi.LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
	assert.False(t, sess.IsAuthenticated())
}

func TestSession_ResolveTrustsCachedSession(t *testing.T) {
	var meCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		meCalls++
		user := clientUser()
		_ = json.NewEncoder(w).Encode(user)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	user := clientUser()
	creds := &memoryStore{token: "cached", user: &user}
	sess := newTestSession(server.URL, creds)

	assert.True(t, sess.Loading())
	sess.Resolve(context.Background())

	// Cached token plus snapshot are trusted without a network round trip.
	assert.Zero(t, meCalls)
	assert.False(t, sess.Loading())
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, ProfileComplete, sess.Profile())
}

func TestSession_ResolveCachedFreelanceChecksProfile(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantProfile ProfileState
	}{
		{
			name: "profile exists",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(pkgapi.FreelanceProfile{Headline: "Go developer"})
			},
			wantProfile: ProfileComplete,
		},
		{
			name: "profile missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "not found"})
			},
			wantProfile: ProfilePending,
		},
		{
			name: "server error fails open",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantProfile: ProfileComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/users/freelance/profile/", tt.handler)
			server := httptest.NewServer(mux)
			defer server.Close()

			user := freelanceUser()
			creds := &memoryStore{token: "cached", user: &user}
			sess := newTestSession(server.URL, creds)

			sess.Resolve(context.Background())

			assert.True(t, sess.IsAuthenticated())
			assert.Equal(t, tt.wantProfile, sess.Profile())
		})
	}
}

func TestSession_ResolveEmptyStorageWithValidCookie(t *testing.T) {
	// Storage was wiped but the refresh cookie is still valid: the pipeline
	// recovers the session transparently during the /users/me/ call.
	user := clientUser()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.RefreshResponse{Access: "recovered"})
	})
	mux.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer recovered" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(user)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	creds := &memoryStore{}
	sess := newTestSession(server.URL, creds)

	sess.Resolve(context.Background())

	assert.True(t, sess.IsAuthenticated())
	token, stored := creds.state()
	assert.Equal(t, "recovered", token)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)
}

func TestSession_ResolveExpiredSession(t *testing.T) {
	// No valid token, no valid cookie: resolution ends unauthenticated
	// without an error surfacing anywhere.
	mux := http.NewServeMux()
	mux.HandleFunc("/users/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	user := clientUser()
	creds := &memoryStore{user: &user} // snapshot without a token
	sess := newTestSession(server.URL, creds)

	sess.Resolve(context.Background())

	assert.False(t, sess.Loading())
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, ProfileUnknown, sess.Profile())

	token, stored := creds.state()
	assert.Empty(t, token)
	assert.Nil(t, stored)
}

func TestSession_RefreshUserFailureKeepsSession(t *testing.T) {
	var fail bool
	user := clientUser()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pkgapi.RefreshResponse{Access: "cached"})
	})
	mux.HandleFunc("/users/me/", func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(user)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	creds := &memoryStore{token: "cached", user: &user}
	sess := newTestSession(server.URL, creds)
	sess.Resolve(context.Background())
	require.True(t, sess.IsAuthenticated())

	fail = true
	err := sess.RefreshUser(context.Background())
	require.Error(t, err)

	// A transient failure must not log the user out.
	assert.True(t, sess.IsAuthenticated())
	token, stored := creds.state()
	assert.Equal(t, "cached", token)
	assert.NotNil(t, stored)
}

func TestSession_RegisterDoesNotAuthenticate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/register/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(pkgapi.RegisterResponse{
			Detail:             "check your inbox",
			ActivationRequired: true,
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	creds := &memoryStore{}
	sess := newTestSession(server.URL, creds)

	resp, err := sess.Register(context.Background(), pkgapi.RegisterRequest{
		Email:    "new@example.com",
		Username: "newbie",
		Password: "secret123",
		Role:     pkgapi.RoleClient,
	})
	require.NoError(t, err)
	assert.True(t, resp.ActivationRequired)

	assert.False(t, sess.IsAuthenticated())
	token, _ := creds.state()
	assert.Empty(t, token)
}

func TestSession_LogoutAlwaysClears(t *testing.T) {
	tests := []struct {
		name         string
		serverStatus int
	}{
		{name: "server acknowledges", serverStatus: http.StatusNoContent},
		{name: "server fails", serverStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/users/logout/", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.serverStatus)
			})
			server := httptest.NewServer(mux)
			defer server.Close()

			user := clientUser()
			creds := &memoryStore{token: "tok", user: &user}
			sess := newTestSession(server.URL, creds)
			sess.Resolve(context.Background())
			require.True(t, sess.IsAuthenticated())

			err := sess.Logout(context.Background())
			require.NoError(t, err)

			assert.False(t, sess.IsAuthenticated())
			assert.Equal(t, ProfileUnknown, sess.Profile())
			token, stored := creds.state()
			assert.Empty(t, token)
			assert.Nil(t, stored)
		})
	}
}
