package api

import (
	"context"
	"fmt"
	"io"

	"github.com/worklane/worklane-cli/pkg/api"
)

// Login authenticates the user. The server answers with the access token and
// a user snapshot, and sets the refresh cookie on the response.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.postPublic(ctx, "/users/login/", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register creates a new account. It does not authenticate the caller: the
// account must first be activated through the emailed token.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.postPublic(ctx, "/users/register/", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Activate redeems an emailed activation token.
func (c *Client) Activate(ctx context.Context, req api.ActivateRequest) error {
	if err := c.postPublic(ctx, "/users/activate/", req, nil); err != nil {
		return fmt.Errorf("activate request failed: %w", err)
	}
	return nil
}

// Logout notifies the server that the session ends.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.post(ctx, "/users/logout/", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Me fetches the authoritative identity of the current user.
func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var user api.User
	if err := c.get(ctx, "/users/me/", nil, &user); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &user, nil
}

// FreelanceProfile fetches the freelancer onboarding profile.
// The server answers 404 while the profile has not been created yet.
func (c *Client) FreelanceProfile(ctx context.Context) (*api.FreelanceProfile, error) {
	var profile api.FreelanceProfile
	if err := c.get(ctx, "/users/freelance/profile/", nil, &profile); err != nil {
		return nil, fmt.Errorf("freelance profile request failed: %w", err)
	}
	return &profile, nil
}

// CreateFreelanceProfile completes the freelancer onboarding step.
func (c *Client) CreateFreelanceProfile(ctx context.Context, req api.CreateFreelanceProfileRequest) (*api.FreelanceProfile, error) {
	var profile api.FreelanceProfile
	if err := c.post(ctx, "/users/freelance/profile/", req, &profile); err != nil {
		return nil, fmt.Errorf("create freelance profile request failed: %w", err)
	}
	return &profile, nil
}

// UploadFreelanceAvatar replaces the profile avatar via a multipart PATCH.
func (c *Client) UploadFreelanceAvatar(ctx context.Context, filename string, content io.Reader) (*api.FreelanceProfile, error) {
	return c.patchProfileFile(ctx, "avatar", filename, content)
}

// UploadFreelanceResume replaces the profile resume via a multipart PATCH.
func (c *Client) UploadFreelanceResume(ctx context.Context, filename string, content io.Reader) (*api.FreelanceProfile, error) {
	return c.patchProfileFile(ctx, "resume", filename, content)
}

func (c *Client) patchProfileFile(ctx context.Context, field, filename string, content io.Reader) (*api.FreelanceProfile, error) {
	files := []FileField{{Field: field, Name: filename, Content: content}}

	var profile api.FreelanceProfile
	if err := c.patchForm(ctx, "/users/freelance/profile/", nil, files, &profile); err != nil {
		return nil, fmt.Errorf("%s upload failed: %w", field, err)
	}
	return &profile, nil
}
