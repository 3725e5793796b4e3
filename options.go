package accountkit

import (
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	baseURL        string
	timeout        time.Duration
	debug          bool
	requestLogger  RequestLogger
	requestHeaders map[string]string
}

func newClientOptions() *Options {
	return &Options{
		timeout:       defaultTimeout,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithBaseURL overrides the host derived from the environment. The override
// is used verbatim, regardless of the environment passed to [New].
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)

		if baseURL == "" {
			return
		}

		o.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithDebug toggles trace logging of every request and response through the
// configured [RequestLogger]. Logged header values are redacted; see the
// package documentation.
func WithDebug(enabled bool) Option {
	return func(o *Options) {
		o.debug = enabled
	}
}

// WithRequestHeader adds a header to every request sent by both versioned
// clients. Content-Type and Accept are fixed to application/json and cannot
// be replaced.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}
