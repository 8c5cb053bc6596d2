package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/worklane/worklane-cli/internal/client/storage"
)

const contentTypeJSON = "application/json"

// Client is the HTTP pipeline between the application and the Worklane REST
// API. It attaches the stored bearer token to authenticated requests, carries
// cookies on every request (the refresh credential is an HTTP-only cookie the
// server manages), and on a 401 performs one refresh-and-retry cycle before
// giving up and clearing the credential store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      storage.CredentialStore
	log        zerolog.Logger
	refresh    singleflight.Group
}

// NewClient creates a new API client.
// baseURL is the API root, e.g. "https://api.worklane.io/api".
// A non-positive timeout falls back to 30 seconds.
func NewClient(baseURL string, timeout time.Duration, creds storage.CredentialStore, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		log:     log,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}
}

// pendingRequest describes one logical request through the pipeline.
// retry controls whether a 401 may trigger a single refresh-and-retry cycle;
// auth controls whether the stored bearer token is attached at all.
type pendingRequest struct {
	method      string
	path        string
	query       map[string]string
	body        []byte
	contentType string
	auth        bool
	retry       bool
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	return c.do(ctx, pendingRequest{
		method: http.MethodGet,
		path:   path,
		query:  query,
		auth:   true,
		retry:  true,
	}, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, true, out)
}

// postPublic sends an unauthenticated POST. No bearer token is ever attached
// (a stale token on login/register would shadow the submitted credentials)
// and a 401 is surfaced as-is instead of triggering a refresh.
func (c *Client) postPublic(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, false, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, true, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, true, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, pendingRequest{
		method: http.MethodDelete,
		path:   path,
		auth:   true,
		retry:  true,
	}, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var encoded []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		encoded = data
	}

	return c.do(ctx, pendingRequest{
		method:      method,
		path:        path,
		body:        encoded,
		contentType: contentTypeJSON,
		auth:        auth,
		retry:       auth,
	}, out)
}

// FileField is one file part of a multipart request.
type FileField struct {
	Field   string // form field name
	Name    string // file name sent to the server
	Content io.Reader
}

func (c *Client) postForm(ctx context.Context, path string, fields map[string]string, files []FileField, out any) error {
	return c.doForm(ctx, http.MethodPost, path, fields, files, out)
}

func (c *Client) patchForm(ctx context.Context, path string, fields map[string]string, files []FileField, out any) error {
	return c.doForm(ctx, http.MethodPatch, path, fields, files, out)
}

// doForm sends a multipart request. Multipart requests have no public use
// case, so the token is always attached.
func (c *Client) doForm(ctx context.Context, method, path string, fields map[string]string, files []FileField, out any) error {
	body, contentType, err := encodeMultipart(fields, files)
	if err != nil {
		return err
	}

	return c.do(ctx, pendingRequest{
		method:      method,
		path:        path,
		body:        body,
		contentType: contentType,
		auth:        true,
		retry:       true,
	}, out)
}

// encodeMultipart builds the full multipart body up front so the request can
// be re-issued unchanged after a token refresh.
func encodeMultipart(fields map[string]string, files []FileField) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", k, err)
		}
	}

	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", fmt.Errorf("failed to read file %q: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

// do routes a request through the retrying or the single-shot path.
func (c *Client) do(ctx context.Context, pr pendingRequest, out any) error {
	if pr.retry {
		return c.sendWithRefresh(ctx, pr, out)
	}

	status, raw, err := c.sendOnce(ctx, pr)
	if err != nil {
		return err
	}
	return decodeResponse(status, raw, out)
}

// sendWithRefresh issues the request, and on a 401 refreshes the access token
// and re-issues it exactly once. The second attempt goes through sendOnce
// directly, so a second 401 can never trigger another refresh. Exhausting the
// cycle clears the credential store and fails with ErrSessionExpired.
func (c *Client) sendWithRefresh(ctx context.Context, pr pendingRequest, out any) error {
	status, raw, err := c.sendOnce(ctx, pr)
	if err != nil {
		return err
	}
	if status != http.StatusUnauthorized {
		return decodeResponse(status, raw, out)
	}

	if c.tryRefresh(ctx) {
		status, raw, err = c.sendOnce(ctx, pr)
		if err != nil {
			return err
		}
		if status != http.StatusUnauthorized {
			return decodeResponse(status, raw, out)
		}
	}

	if err := c.creds.Clear(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to clear credentials after unrecoverable 401")
	}
	return ErrSessionExpired
}

// sendOnce performs a single HTTP round trip and returns the status code and
// the raw response body. It never retries and never interprets the status.
func (c *Client) sendOnce(ctx context.Context, pr pendingRequest) (int, []byte, error) {
	var bodyReader io.Reader
	if pr.body != nil {
		bodyReader = bytes.NewReader(pr.body)
	}

	req, err := http.NewRequestWithContext(ctx, pr.method, c.buildURL(pr.path, pr.query), bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if pr.contentType != "" {
		req.Header.Set("Content-Type", pr.contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	if pr.auth {
		if token, err := c.creds.Token(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Debug().
		Str("method", pr.method).
		Str("path", pr.path).
		Int("status", resp.StatusCode).
		Msg("api request")

	return resp.StatusCode, raw, nil
}

// buildURL joins the base URL, path and query string. Parameters with an
// empty value are omitted entirely rather than sent as "key=".
func (c *Client) buildURL(path string, query map[string]string) string {
	target := c.baseURL + path
	if len(query) == 0 {
		return target
	}

	values := url.Values{}
	for k, v := range query {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}

	if encoded := values.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

// decodeResponse turns a completed round trip into a typed result. Any 2xx
// response other than 204 must carry valid JSON, even when the caller does
// not need the body.
func decodeResponse(status int, raw []byte, out any) error {
	if status < 200 || status >= 300 {
		return newAPIError(status, raw)
	}
	if status == http.StatusNoContent {
		return nil
	}
	if out == nil {
		var sink json.RawMessage
		out = &sink
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Status: status, Message: "invalid server response"}
	}
	return nil
}
