package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is the structured error for every non-2xx response: the HTTP
// status, a human-readable message suitable for display, and the parsed
// response body when the server sent one.
type APIError struct {
	Status  int
	Message string
	Body    map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// ErrSessionExpired is returned once the refresh-and-retry cycle has been
// exhausted. The credential store is always cleared before it is returned.
var ErrSessionExpired = &APIError{
	Status:  http.StatusUnauthorized,
	Message: "Session expirée",
}

// newAPIError derives a display message from an error response body.
// Preference order: a top-level "detail" field, then the flattened
// field-level error arrays, then a status-based fallback.
func newAPIError(status int, raw []byte) *APIError {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return &APIError{
			Status:  status,
			Message: fmt.Sprintf("request failed with status %d", status),
		}
	}

	return &APIError{
		Status:  status,
		Message: errorMessage(status, body),
		Body:    body,
	}
}

func errorMessage(status int, body map[string]any) string {
	if detail, ok := body["detail"].(string); ok && detail != "" {
		return detail
	}

	// Field errors arrive as {"field": ["msg", ...], ...}. Keys are sorted so
	// the joined message is stable.
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		items, ok := body[k].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	return fmt.Sprintf("request failed with status %d", status)
}
