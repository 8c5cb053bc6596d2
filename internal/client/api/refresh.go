package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/worklane/worklane-cli/pkg/api"
)

const refreshPath = "/users/token/refresh/"

// tryRefresh exchanges the refresh cookie for a new access token and reports
// whether a new token was obtained and persisted.
//
// Concurrent callers share one in-flight refresh: when several requests hit a
// 401 at the same time (a dashboard firing many widgets at once), only a
// single refresh call reaches the server and every waiter observes its
// outcome. Each completed flight is forgotten, so the next 401 wave starts a
// fresh attempt.
func (c *Client) tryRefresh(ctx context.Context) bool {
	v, _, _ := c.refresh.Do("refresh", func() (any, error) {
		return c.doRefresh(ctx), nil
	})
	ok, _ := v.(bool)
	return ok
}

// doRefresh performs the actual refresh call. It never returns an error:
// any failure (transport, non-2xx, missing token field) reads as false.
func (c *Client) doRefresh(ctx context.Context) bool {
	// No Authorization header: the refresh endpoint authenticates by the
	// HTTP-only cookie the jar carries.
	status, raw, err := c.sendOnce(ctx, pendingRequest{
		method:      http.MethodPost,
		path:        refreshPath,
		contentType: contentTypeJSON,
	})
	if err != nil {
		c.log.Debug().Err(err).Msg("token refresh failed")
		return false
	}
	if status < 200 || status >= 300 {
		c.log.Debug().Int("status", status).Msg("token refresh rejected")
		return false
	}

	var resp api.RefreshResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Access == "" {
		c.log.Debug().Msg("token refresh returned no access token")
		return false
	}

	if err := c.creds.SaveToken(ctx, resp.Access); err != nil {
		c.log.Error().Err(err).Msg("failed to persist refreshed token")
		return false
	}
	return true
}
