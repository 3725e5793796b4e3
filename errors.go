package accountkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ConfigError reports an invalid or missing construction parameter. It is
// only ever returned by [New], before any request is attempted.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("accountkit: invalid configuration: %s %s", e.Field, e.Reason)
}

// NetworkError reports a request that never produced a response: DNS or
// connection failure, timeout, or context cancellation. It carries no HTTP
// status. The underlying transport error is available via [errors.Unwrap].
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("accountkit: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError reports a completed request whose status is outside the 2xx
// range. Status, headers, and the remote body are carried verbatim; the
// error shape of the remote service is opaque to this layer.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("accountkit: %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message())
}

// Message extracts a human-readable message from the response body. A JSON
// body with a non-empty "error" field yields that field; any other non-empty
// body is returned as-is.
func (e *HTTPError) Message() string {
	body := bytes.TrimSpace(e.Body)
	if len(body) == 0 {
		return "(empty error body)"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	return strings.TrimSpace(string(body))
}
